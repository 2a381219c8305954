// Copyright 2025 The Helix Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"strconv"
	"strings"
)

// acceptSpec is one parsed Accept header member with its quality value.
type acceptSpec struct {
	value   string
	quality float64
}

// Accepts returns the best of the given content-type offers according to the
// request's Accept header, or "" when none is acceptable. Quality values and
// wildcard specificity follow RFC 9110; the parse is cached per request.
//
// Offers may be full MIME types ("application/json") or short names ("json").
//
//	// Accept: text/html, application/json;q=0.8
//	c.Accepts("json", "html") // "html"
func (c *Context) Accepts(offers ...string) string {
	if len(offers) == 0 {
		return ""
	}

	accept := c.Request.Header.Get("Accept")
	if accept == "" {
		return offers[0]
	}

	var specs []acceptSpec
	if c.cachedAcceptHeader == accept && c.cachedAcceptSpecs != nil {
		specs = c.cachedAcceptSpecs
	} else {
		specs = parseAccept(accept)
		c.cachedAcceptHeader = accept
		c.cachedAcceptSpecs = specs
	}
	if len(specs) == 0 {
		return offers[0]
	}

	normalized := make([]string, len(offers))
	for i, offer := range offers {
		normalized[i] = normalizeMediaType(offer)
	}

	bestMatch := ""
	bestQuality := -1.0
	bestSpecificity := -1
	for _, offer := range normalized {
		for _, spec := range specs {
			quality, specificity := matchMediaType(offer, spec)
			if quality <= 0 {
				continue
			}
			if quality > bestQuality || (quality == bestQuality && specificity > bestSpecificity) {
				bestMatch = offer
				bestQuality = quality
				bestSpecificity = specificity
			}
		}
	}

	if bestMatch != "" {
		for i, n := range normalized {
			if n == bestMatch {
				return offers[i]
			}
		}
	}
	return ""
}

// AcceptsEncodings returns the best of the given content encodings per the
// request's Accept-Encoding header, or "" when none is acceptable.
func (c *Context) AcceptsEncodings(offers ...string) string {
	return acceptValueMatch(parseAccept(c.Request.Header.Get("Accept-Encoding")), offers)
}

// AcceptsLanguages returns the best of the given languages per the request's
// Accept-Language header, or "" when none is acceptable. A bare language tag
// matches its regional variants ("en" matches "en-US").
func (c *Context) AcceptsLanguages(offers ...string) string {
	return acceptValueMatch(parseAccept(c.Request.Header.Get("Accept-Language")), offers)
}

// parseAccept parses an Accept-style header into quality-annotated specs.
func parseAccept(header string) []acceptSpec {
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	specs := make([]acceptSpec, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		spec := acceptSpec{quality: 1.0}
		value, rest, hasParams := strings.Cut(part, ";")
		spec.value = strings.TrimSpace(value)
		if spec.value == "" {
			continue
		}
		if hasParams {
			for _, param := range strings.Split(rest, ";") {
				key, val, ok := strings.Cut(param, "=")
				if !ok {
					continue
				}
				if strings.TrimSpace(key) == "q" {
					val = strings.Trim(strings.TrimSpace(val), `"`)
					if q, err := strconv.ParseFloat(val, 64); err == nil && q >= 0 && q <= 1 {
						spec.quality = q
					}
				}
			}
		}
		specs = append(specs, spec)
	}
	return specs
}

// matchMediaType scores an offer against one Accept member.
// Specificity: 3 exact, 2 subtype wildcard, 1 full wildcard, 0 no match.
// Non-q media type parameters are ignored so "application/json;version=1"
// in the header still matches a plain "application/json" offer.
func matchMediaType(offer string, spec acceptSpec) (quality float64, specificity int) {
	offerType, offerSubtype := splitMediaType(offer)
	specType, specSubtype := splitMediaType(spec.value)

	switch {
	case specType == "*" && specSubtype == "*":
		return spec.quality, 1
	case specType == offerType && specSubtype == "*":
		return spec.quality, 2
	case specType == offerType && specSubtype == offerSubtype:
		return spec.quality, 3
	}
	return 0, 0
}

func splitMediaType(mediaType string) (string, string) {
	if i := strings.IndexByte(mediaType, ';'); i != -1 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if t, sub, ok := strings.Cut(mediaType, "/"); ok {
		return t, sub
	}
	return mediaType, "*"
}

var shortMediaTypes = map[string]string{
	"html":    "text/html",
	"json":    "application/json",
	"xml":     "application/xml",
	"yaml":    "application/yaml",
	"msgpack": "application/msgpack",
	"text":    "text/plain",
	"txt":     "text/plain",
	"form":    "application/x-www-form-urlencoded",
}

// normalizeMediaType expands short names to full MIME types.
func normalizeMediaType(mediaType string) string {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mime, ok := shortMediaTypes[mediaType]; ok {
		return mime
	}
	return mediaType
}

// acceptValueMatch is the quality-based matcher for non-media-type Accept-*
// headers (encoding, language).
func acceptValueMatch(specs []acceptSpec, offers []string) string {
	if len(offers) == 0 {
		return ""
	}
	if len(specs) == 0 {
		return offers[0]
	}

	bestMatch := ""
	bestQuality := -1.0
	for _, offer := range offers {
		offerLower := strings.ToLower(strings.TrimSpace(offer))
		for _, spec := range specs {
			specValue := strings.ToLower(spec.value)
			match := specValue == offerLower || specValue == "*" ||
				strings.HasPrefix(specValue, offerLower+"-") ||
				strings.HasPrefix(offerLower, specValue+"-")
			if match && spec.quality > bestQuality {
				bestMatch = offer
				bestQuality = spec.quality
			}
		}
	}
	return bestMatch
}
