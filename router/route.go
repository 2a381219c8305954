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

import "slices"

// HandlerSpec describes a typed handler's declared extractors and responder.
// It is populated by the handler package's arity adapters and exposed through
// Routes() so external tooling (e.g. a documentation generator) can inspect a
// route without re-parsing the handler.
type HandlerSpec struct {
	// Extractors lists the declared parameter types in order, e.g.
	// ["extract.Path[int]", "extract.JSON[CreateUser]"].
	Extractors []string

	// BodyExtractor names the body-consuming extractor, if any.
	BodyExtractor string

	// Responder names the declared return type, e.g. "respond.JSON[User]".
	Responder string
}

// TypedHandler is the registration form produced by the handler package's
// arity adapters: a type-erased invocation closure plus the introspection
// spec captured before erasure.
type TypedHandler interface {
	HandlerFunc() HandlerFunc
	HandlerSpec() HandlerSpec
}

// Route is the immutable record of one registered route. It is created at
// registration, optionally annotated through the fluent methods before
// Freeze, and never mutated afterwards. The router's route table owns it.
type Route struct {
	router     *Router
	method     string
	pattern    string
	paramNames []string
	handlers   []HandlerFunc // route-level middleware + final handler
	spec       HandlerSpec
	fastPath   bool

	name        string
	description string
	tags        []string

	// chain is the fully composed handler chain (global middleware + route
	// handlers), built once at Freeze.
	chain []HandlerFunc
}

// Method returns the route's HTTP method.
func (rt *Route) Method() string { return rt.method }

// Pattern returns the registered path pattern.
func (rt *Route) Pattern() string { return rt.pattern }

// ParamNames returns the declared path parameter names in order.
func (rt *Route) ParamNames() []string { return slices.Clone(rt.paramNames) }

// FastPath marks the route latency-critical: observational middleware
// (added via UseObservational) is skipped for it, while correctness
// middleware (added via Use) always runs.
//
// A route is fast-path eligible only when it has no authentication,
// audit-logging, or validation dependency implemented in observational
// middleware; the router cannot verify that, so the marker is an explicit
// opt-in.
func (rt *Route) FastPath() *Route {
	rt.fastPath = true
	return rt
}

// Name sets a human-readable route name for introspection.
func (rt *Route) Name(name string) *Route {
	rt.name = name
	return rt
}

// Describe sets an optional description for documentation tooling.
func (rt *Route) Describe(desc string) *Route {
	rt.description = desc
	return rt
}

// Tags attaches categorization tags for documentation tooling.
func (rt *Route) Tags(tags ...string) *Route {
	rt.tags = append(rt.tags, tags...)
	return rt
}

// compose builds the final handler chain from the router's global middleware
// and the route's own handlers. Called once per route at Freeze.
func (rt *Route) compose(global []middlewareEntry) {
	chain := make([]HandlerFunc, 0, len(global)+len(rt.handlers))
	for _, m := range global {
		if rt.fastPath && m.observational {
			continue
		}
		chain = append(chain, m.fn)
	}
	chain = append(chain, rt.handlers...)
	rt.chain = chain
}

// RouteInfo is the read-only introspection view of a registered route,
// pulled by external collaborators via Routes().
type RouteInfo struct {
	Method      string
	Pattern     string
	ParamNames  []string
	Extractors  []string
	Responder   string
	FastPath    bool
	Name        string
	Description string
	Tags        []string
}

func (rt *Route) info() RouteInfo {
	return RouteInfo{
		Method:      rt.method,
		Pattern:     rt.pattern,
		ParamNames:  slices.Clone(rt.paramNames),
		Extractors:  slices.Clone(rt.spec.Extractors),
		Responder:   rt.spec.Responder,
		FastPath:    rt.fastPath,
		Name:        rt.name,
		Description: rt.description,
		Tags:        slices.Clone(rt.tags),
	}
}
