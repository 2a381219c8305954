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

package handler

import (
	"fmt"

	"github.com/helixweb/helix/extract"
	"github.com/helixweb/helix/respond"
	"github.com/helixweb/helix/router"
)

// Param constrains a handler parameter to a type whose pointer implements
// the extraction capability. The pointer-receiver shape lets the adapter
// declare a zero value on the stack and populate it in place.
type Param[T any] interface {
	*T
	extract.FromRequester
}

// Typed is the erased form of a typed handler: the invocation closure the
// router runs, plus the introspection spec captured before erasure.
type Typed struct {
	fn   router.HandlerFunc
	spec router.HandlerSpec
}

// HandlerFunc returns the type-erased invocation closure.
func (t *Typed) HandlerFunc() router.HandlerFunc { return t.fn }

// HandlerSpec returns the declared extractor and responder type names.
func (t *Typed) HandlerSpec() router.HandlerSpec { return t.spec }

// param carries one declared parameter's introspection data.
type param struct {
	name string
	body bool
}

// paramOf captures a parameter type's display name and whether it consumes
// the request body.
func paramOf[P any, PP Param[P]]() param {
	var zero P
	_, body := any(PP(&zero)).(extract.BodyConsumer)
	return param{name: fmt.Sprintf("%T", zero), body: body}
}

func responderName[R respond.Responder]() string {
	var zero R
	return fmt.Sprintf("%T", zero)
}

// buildSpec assembles the introspection spec and enforces the body ordering
// rule: at most one body-consuming parameter, and only in final position.
// Violations panic because they are programmer errors surfaced during route
// registration, before the server takes traffic.
func buildSpec(params []param, responder string) router.HandlerSpec {
	spec := router.HandlerSpec{Responder: responder}
	for i, p := range params {
		spec.Extractors = append(spec.Extractors, p.name)
		if !p.body {
			continue
		}
		if spec.BodyExtractor != "" {
			panic(fmt.Sprintf(
				"handler: parameters %s and %s both consume the request body; the body is read-once, declare a single body extractor",
				spec.BodyExtractor, p.name))
		}
		if i != len(params)-1 {
			panic(fmt.Sprintf(
				"handler: body-consuming parameter %s must be the final parameter (position %d of %d); metadata extractors cannot run after the body is consumed",
				p.name, i+1, len(params)))
		}
		spec.BodyExtractor = p.name
	}
	return spec
}

// run executes one extractor, converting failure into a rendered rejection.
func run(c *router.Context, e extract.FromRequester) bool {
	if err := e.FromRequest(c); err != nil {
		c.Problem(err)
		return false
	}
	return true
}

// finish routes the handler's return through the response pipeline or error
// unification.
func finish[R respond.Responder](c *router.Context, r R, err error) {
	if err != nil {
		c.Problem(err)
		return
	}
	if c.IsAborted() {
		return
	}
	if rerr := r.Respond(c); rerr != nil {
		c.Problem(rerr)
	}
}
