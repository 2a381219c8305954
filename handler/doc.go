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

// Package handler is the dispatch boundary between the untyped router and
// typed application handlers.
//
// A typed handler is a plain function taking the request context plus zero
// to sixteen extractor parameters and returning a responder:
//
//	func getUser(c *router.Context, id extract.Path[int]) (respond.JSON[User], error) {
//	    ...
//	}
//
//	r.GET("/users/{id}", handler.H1(getUser))
//
// The Hn adapter erases the parameter and return types into a uniform
// router.HandlerFunc while capturing their names for route introspection.
// Extractors run in declared order; the first failure short-circuits with a
// classified rejection and the handler body never runs.
//
// At most one parameter may consume the request body, and it must be the
// final parameter. Violations panic at adapter construction time, during
// route registration, with a diagnostic naming the offending parameter. A
// misdeclared handler never reaches production traffic.
package handler
