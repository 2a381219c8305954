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

// Package router is the core of the Helix dispatch engine: it maps an inbound
// HTTP request to a registered route, runs the composed middleware chain, and
// hands a pooled per-request Context to the route's handler chain.
//
// Routes are matched by a compressed radix tree keyed by path segment, one
// tree per HTTP method, so lookup cost grows with path length rather than
// with the number of registered routes. Patterns are built from literal
// segments, {name} parameter segments, and a trailing * wildcard segment:
//
//	r := router.New()
//	r.GET("/users/{id}", getUser)
//	r.GET("/static/*filepath", serveFile)
//
// Matching precedence is literal > parameter > wildcard at every position,
// regardless of registration order. Two patterns that would match the same
// concrete path at equal precedence are a registration-time *ConflictError,
// never a silent shadow at match time.
//
// The router is assembled single-threaded at startup: register routes, add
// middleware, install shared state, then Freeze (called implicitly on the
// first request). After freeze the route table and middleware chain are
// immutable and shared across all request goroutines without locking.
//
// Middleware composes as an onion via Context.Next: the first layer added is
// the outermost wrapper. Layers added with UseObservational are skipped on
// routes marked FastPath; layers added with Use always run.
package router
