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
	"net/url"
	"reflect"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// Query binds query string parameters to a struct T via `query` tags.
// Unknown query keys are ignored; tagged fields are optional unless the tag
// carries ",required". Slice fields collect repeated keys.
//
//	type listParams struct {
//	    Page int      `query:"page"`
//	    Tags []string `query:"tag"`
//	    Sort string   `query:"sort,required"`
//	}
type Query[T any] struct {
	Value T
}

func (q *Query[T]) FromRequest(c *router.Context) error {
	rv := reflect.ValueOf(&q.Value).Elem()
	if rv.Kind() != reflect.Struct {
		return httperr.Internal(errTypeMustBeStruct("Query", rv.Type()))
	}

	values, err := url.ParseQuery(c.Request.URL.RawQuery)
	if err != nil {
		return httperr.Malformed(err)
	}
	if err := bindStruct(rv, querySource(values), "query", false); err != nil {
		return err
	}
	return checkStruct(q.Value)
}

type querySource url.Values

func (querySource) sourceName() string { return "query" }

func (s querySource) lookup(key string) ([]string, bool) {
	v, ok := s[key]
	return v, ok
}
