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
	"strings"
)

// Group organizes related routes under a shared path prefix and shared
// route-level middleware.
//
//	api := r.Group("/api/v1", authLayer)
//	api.GET("/users", listUsers)
//	admin := api.Group("/admin", adminOnly)
//	admin.DELETE("/users/{id}", deleteUser)
type Group struct {
	router     *Router
	prefix     string
	middleware []HandlerFunc
}

// Group creates a route group with the given prefix. Group middleware runs
// after the global chain and before each route's own middleware.
func (r *Router) Group(prefix string, mw ...HandlerFunc) *Group {
	return &Group{
		router:     r,
		prefix:     normalizePrefix(prefix),
		middleware: mw,
	}
}

// Group creates a nested group. The child inherits the parent's prefix and
// middleware.
func (g *Group) Group(prefix string, mw ...HandlerFunc) *Group {
	combined := make([]HandlerFunc, 0, len(g.middleware)+len(mw))
	combined = append(combined, g.middleware...)
	combined = append(combined, mw...)
	return &Group{
		router:     g.router,
		prefix:     g.prefix + normalizePrefix(prefix),
		middleware: combined,
	}
}

// Use appends middleware applied to routes registered after the call.
func (g *Group) Use(mw ...HandlerFunc) {
	g.middleware = append(g.middleware, mw...)
}

// Handle registers a route under the group's prefix.
func (g *Group) Handle(method, pattern string, handler any, mw ...HandlerFunc) (*Route, error) {
	combined := make([]HandlerFunc, 0, len(g.middleware)+len(mw))
	combined = append(combined, g.middleware...)
	combined = append(combined, mw...)
	return g.router.Handle(method, g.join(pattern), handler, combined...)
}

func (g *Group) mustHandle(method, pattern string, handler any, mw ...HandlerFunc) *Route {
	rt, err := g.Handle(method, pattern, handler, mw...)
	if err != nil {
		panic("router: " + err.Error())
	}
	return rt
}

// GET registers a GET route under the group's prefix, panicking on
// registration error.
func (g *Group) GET(pattern string, handler any, mw ...HandlerFunc) *Route {
	return g.mustHandle(http.MethodGet, pattern, handler, mw...)
}

// POST registers a POST route under the group's prefix, panicking on
// registration error.
func (g *Group) POST(pattern string, handler any, mw ...HandlerFunc) *Route {
	return g.mustHandle(http.MethodPost, pattern, handler, mw...)
}

// PUT registers a PUT route under the group's prefix, panicking on
// registration error.
func (g *Group) PUT(pattern string, handler any, mw ...HandlerFunc) *Route {
	return g.mustHandle(http.MethodPut, pattern, handler, mw...)
}

// PATCH registers a PATCH route under the group's prefix, panicking on
// registration error.
func (g *Group) PATCH(pattern string, handler any, mw ...HandlerFunc) *Route {
	return g.mustHandle(http.MethodPatch, pattern, handler, mw...)
}

// DELETE registers a DELETE route under the group's prefix, panicking on
// registration error.
func (g *Group) DELETE(pattern string, handler any, mw ...HandlerFunc) *Route {
	return g.mustHandle(http.MethodDelete, pattern, handler, mw...)
}

// join combines the group prefix with a route pattern.
func (g *Group) join(pattern string) string {
	if pattern == "" || pattern == "/" {
		if g.prefix == "" {
			return "/"
		}
		return g.prefix
	}
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}
	return g.prefix + pattern
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
