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

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// Path binds path parameters.
//
// A scalar T binds the route's single declared parameter:
//
//	r.GET("/users/{id}", handler.H1(func(c *router.Context, id extract.Path[int]) ...))
//
// A struct T binds multiple parameters by `path` tags:
//
//	type key struct {
//	    Org  string `path:"org"`
//	    Repo string `path:"repo"`
//	}
//
// Path parameters are always required; a missing name or failed conversion
// is an extraction rejection naming the parameter.
type Path[T any] struct {
	Value T
}

func (p *Path[T]) FromRequest(c *router.Context) error {
	rv := reflect.ValueOf(&p.Value).Elem()

	if rv.Kind() == reflect.Struct && rv.Type() != timeType {
		if err := bindStruct(rv, pathSource{c}, "path", true); err != nil {
			return err
		}
		return checkStruct(p.Value)
	}

	if c.ParamCount() != 1 {
		return httperr.Extraction("path", "scalar path extractor requires exactly one declared parameter, route has %d", c.ParamCount())
	}
	name, raw := c.ParamAt(0)
	if err := setValue(rv, raw); err != nil {
		return httperr.Extraction(name, "invalid path parameter %q: %v", name, err)
	}
	return nil
}

type pathSource struct{ c *router.Context }

func (s pathSource) sourceName() string { return "path" }

func (s pathSource) lookup(key string) ([]string, bool) {
	v, ok := s.c.LookupParam(key)
	if !ok {
		return nil, false
	}
	return []string{v}, true
}
