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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func contextWithAccept(accept string) *Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return NewContext(httptest.NewRecorder(), req)
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		offers []string
		want   string
	}{
		{name: "no header returns first offer", accept: "", offers: []string{"json", "html"}, want: "json"},
		{name: "exact match", accept: "application/json", offers: []string{"json", "html"}, want: "json"},
		{name: "quality preference", accept: "text/html, application/json;q=0.8", offers: []string{"json", "html"}, want: "html"},
		{name: "full wildcard", accept: "*/*", offers: []string{"json", "xml"}, want: "json"},
		{name: "subtype wildcard", accept: "text/*", offers: []string{"json", "html"}, want: "html"},
		{name: "no acceptable offer", accept: "image/png", offers: []string{"json", "html"}, want: ""},
		{name: "specificity beats wildcard", accept: "*/*;q=1, application/json;q=1", offers: []string{"html", "json"}, want: "json"},
		{name: "zero quality excludes", accept: "application/json;q=0, text/html", offers: []string{"json", "html"}, want: "html"},
		{name: "full mime offers", accept: "application/msgpack", offers: []string{"application/json", "application/msgpack"}, want: "application/msgpack"},
		{name: "parameters ignored for match", accept: "application/json;version=2", offers: []string{"json"}, want: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := contextWithAccept(tt.accept)
			assert.Equal(t, tt.want, c.Accepts(tt.offers...))
		})
	}
}

func TestAcceptsCachesPerRequest(t *testing.T) {
	c := contextWithAccept("application/json")
	assert.Equal(t, "json", c.Accepts("json"))
	// Same header, cached specs path.
	assert.Equal(t, "json", c.Accepts("json", "html"))
	assert.Equal(t, "application/json", c.cachedAcceptHeader)
}

func TestAcceptsEncodings(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, br;q=1.0, deflate;q=0.5")
	c := NewContext(httptest.NewRecorder(), req)

	assert.Equal(t, "gzip", c.AcceptsEncodings("gzip", "deflate"))
	assert.Equal(t, "", c.AcceptsEncodings("zstd"))
}

func TestAcceptsLanguages(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US, en;q=0.9, fr;q=0.8")
	c := NewContext(httptest.NewRecorder(), req)

	// "en" matches the regional variant "en-US".
	assert.Equal(t, "en", c.AcceptsLanguages("en", "fr", "de"))
}
