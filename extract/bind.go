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

package extract

import (
	"reflect"
	"strings"

	"github.com/helixweb/helix/httperr"
)

// valueSource abstracts where raw string values come from: path parameters,
// query string, headers, or form fields.
type valueSource interface {
	// sourceName is the human-readable source for error messages.
	sourceName() string
	// lookup returns all values for the key and whether the key is present.
	lookup(key string) ([]string, bool)
}

// bindStruct populates dst's fields from the source using the given struct
// tag key. Unknown source keys are ignored; a tagged field absent from the
// source is an error only when the tag carries the ",required" option (path
// parameters are always required). Unexported and untagged fields are
// skipped.
func bindStruct(dst reflect.Value, src valueSource, tagKey string, alwaysRequired bool) error {
	t := dst.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			// Untagged embedded structs are flattened.
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				if err := bindStruct(dst.Field(i), src, tagKey, alwaysRequired); err != nil {
					return err
				}
			}
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		required := alwaysRequired || hasTagOption(opts, "required")

		values, ok := src.lookup(name)
		if !ok || len(values) == 0 {
			if required {
				return httperr.Extraction(name, "missing required %s parameter %q", src.sourceName(), name)
			}
			continue
		}

		if err := setValues(dst.Field(i), values); err != nil {
			return httperr.Extraction(name, "invalid %s parameter %q: %v", src.sourceName(), name, err)
		}
	}
	return nil
}

func hasTagOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}
