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
	"fmt"
	"net/http"
	"reflect"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// Header binds request headers to a struct T via `header` tags. Header name
// lookup is canonicalized, so `header:"x-api-key"` matches "X-Api-Key".
//
//	type auth struct {
//	    APIKey string `header:"X-API-Key,required"`
//	    Trace  string `header:"X-Trace-ID"`
//	}
type Header[T any] struct {
	Value T
}

func (h *Header[T]) FromRequest(c *router.Context) error {
	rv := reflect.ValueOf(&h.Value).Elem()
	if rv.Kind() != reflect.Struct {
		return httperr.Internal(errTypeMustBeStruct("Header", rv.Type()))
	}
	if err := bindStruct(rv, headerSource(c.Request.Header), "header", false); err != nil {
		return err
	}
	return checkStruct(h.Value)
}

type headerSource http.Header

func (headerSource) sourceName() string { return "header" }

func (s headerSource) lookup(key string) ([]string, bool) {
	v, ok := http.Header(s)[http.CanonicalHeaderKey(key)]
	return v, ok
}

func errTypeMustBeStruct(extractor string, t reflect.Type) error {
	return fmt.Errorf("extract.%s requires a struct type parameter, got %s", extractor, t)
}
