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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/helixweb/helix/httperr"
)

// middlewareEntry is one global middleware layer plus the classification
// that decides whether fast-path routes may skip it.
type middlewareEntry struct {
	fn            HandlerFunc
	observational bool
}

// Router is the dispatch engine. It has two phases: a single-threaded
// assembly phase (register routes, add middleware, install state) and a
// frozen serving phase in which the route table is immutable and read
// lock-free by all request goroutines.
//
// Freeze happens explicitly via Freeze or implicitly on the first request.
type Router struct {
	trees  map[string]*node
	routes []*Route

	middleware []middlewareEntry
	states     map[reflect.Type]any
	noRoute    HandlerFunc

	logger            *slog.Logger
	mode              httperr.Mode
	observer          ObservabilityRecorder
	maxBodyBytes      int64
	checkCancellation bool

	redirectTrailingSlash bool

	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration
	h2c          bool

	mu     sync.Mutex
	frozen atomic.Bool
	server *http.Server
}

// New creates a router in its assembly phase.
func New(opts ...Option) *Router {
	r := &Router{
		trees:             make(map[string]*node, 9),
		states:            make(map[reflect.Type]any),
		logger:            noopLogger,
		checkCancellation: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers a route. The handler may be a HandlerFunc, a bare
// func(*Context), or a TypedHandler produced by the handler package's
// adapters. Optional route-level middleware runs after the global chain and
// before the handler.
//
// Registration fails with a *ConflictError when the pattern would match the
// same concrete paths as an already registered pattern at equal precedence,
// and with ErrFrozen after the router has frozen.
func (r *Router) Handle(method, pattern string, handler any, mw ...HandlerFunc) (*Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return nil, ErrFrozen
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNilHandler, method, pattern)
	}

	var fn HandlerFunc
	var spec HandlerSpec
	switch h := handler.(type) {
	case HandlerFunc:
		fn = h
	case func(*Context):
		fn = h
	case TypedHandler:
		fn = h.HandlerFunc()
		spec = h.HandlerSpec()
	default:
		return nil, fmt.Errorf("%w: %T for %s %s", ErrUnsupportedHandler, handler, method, pattern)
	}

	segs, params, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	rt := &Route{
		router:     r,
		method:     method,
		pattern:    pattern,
		paramNames: params,
		handlers:   append(append(make([]HandlerFunc, 0, len(mw)+1), mw...), fn),
		spec:       spec,
	}

	root := r.trees[method]
	if root == nil {
		root = &node{}
		r.trees[method] = root
	}

	if len(segs) > 0 && isLiteralPattern(segs) {
		err = root.insertStatic(rt)
	} else {
		err = root.insert(rt, segs)
	}
	if err != nil {
		return nil, err
	}

	r.routes = append(r.routes, rt)
	return rt, nil
}

// mustHandle backs the verb helpers. Registration errors are programmer
// errors caught at startup, so they panic rather than propagate.
func (r *Router) mustHandle(method, pattern string, handler any, mw ...HandlerFunc) *Route {
	rt, err := r.Handle(method, pattern, handler, mw...)
	if err != nil {
		panic(fmt.Sprintf("router: %v", err))
	}
	return rt
}

// GET registers a GET route, panicking on registration error.
func (r *Router) GET(pattern string, handler any, mw ...HandlerFunc) *Route {
	return r.mustHandle(http.MethodGet, pattern, handler, mw...)
}

// POST registers a POST route, panicking on registration error.
func (r *Router) POST(pattern string, handler any, mw ...HandlerFunc) *Route {
	return r.mustHandle(http.MethodPost, pattern, handler, mw...)
}

// PUT registers a PUT route, panicking on registration error.
func (r *Router) PUT(pattern string, handler any, mw ...HandlerFunc) *Route {
	return r.mustHandle(http.MethodPut, pattern, handler, mw...)
}

// PATCH registers a PATCH route, panicking on registration error.
func (r *Router) PATCH(pattern string, handler any, mw ...HandlerFunc) *Route {
	return r.mustHandle(http.MethodPatch, pattern, handler, mw...)
}

// DELETE registers a DELETE route, panicking on registration error.
func (r *Router) DELETE(pattern string, handler any, mw ...HandlerFunc) *Route {
	return r.mustHandle(http.MethodDelete, pattern, handler, mw...)
}

// HEAD registers a HEAD route, panicking on registration error.
func (r *Router) HEAD(pattern string, handler any, mw ...HandlerFunc) *Route {
	return r.mustHandle(http.MethodHead, pattern, handler, mw...)
}

// OPTIONS registers an OPTIONS route, panicking on registration error.
func (r *Router) OPTIONS(pattern string, handler any, mw ...HandlerFunc) *Route {
	return r.mustHandle(http.MethodOptions, pattern, handler, mw...)
}

// Use appends a correctness middleware layer to the global chain. Layers run
// in registration order, outermost first, on every route including those
// marked FastPath.
func (r *Router) Use(mw ...HandlerFunc) {
	r.addMiddleware(false, mw)
}

// UseObservational appends an observational middleware layer: logging,
// metrics, tracing. Routes marked FastPath skip these layers.
func (r *Router) UseObservational(mw ...HandlerFunc) {
	r.addMiddleware(true, mw)
}

func (r *Router) addMiddleware(observational bool, mw []HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		panic("router: middleware added after freeze")
	}
	for _, fn := range mw {
		if fn == nil {
			continue
		}
		r.middleware = append(r.middleware, middlewareEntry{fn: fn, observational: observational})
	}
}

// SetState installs a shared application state value, retrievable in
// handlers by its concrete type. Installing a second value of the same type
// replaces the first; call during assembly only.
func (r *Router) SetState(value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		panic("router: state installed after freeze")
	}
	r.states[reflect.TypeOf(value)] = value
}

// NoRoute installs a custom handler for unmatched paths, replacing the
// default problem+json 404.
func (r *Router) NoRoute(fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noRoute = fn
}

// MarkFastPath marks an already registered route latency-critical by method
// and pattern. Equivalent to calling FastPath on the returned *Route.
func (r *Router) MarkFastPath(method, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		return ErrFrozen
	}
	for _, rt := range r.routes {
		if rt.method == method && rt.pattern == pattern {
			rt.fastPath = true
			return nil
		}
	}
	return fmt.Errorf("no route registered for %s %s", method, pattern)
}

// Freeze ends the assembly phase: every route's chain is composed and the
// table becomes immutable. Idempotent; the first request triggers it
// implicitly if the caller never does.
func (r *Router) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		return
	}
	for _, rt := range r.routes {
		rt.compose(r.middleware)
	}
	r.frozen.Store(true)
}

// Routes returns a read-only snapshot of the registered routes for
// documentation and diagnostics tooling.
func (r *Router) Routes() []RouteInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	infos := make([]RouteInfo, len(r.routes))
	for i, rt := range r.routes {
		infos[i] = rt.info()
	}
	return infos
}

// ServeHTTP dispatches one request: match, compose, run, unify errors.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if !r.frozen.Load() {
		r.Freeze()
	}

	rw := acquireWriter(w)
	c := acquireContext()
	c.initForRequest(rw, req, r)
	c.logger = r.logger
	defer func() {
		releaseContext(c)
		releaseWriter(rw)
	}()

	start := time.Now()
	if r.observer != nil {
		r.observer.RequestStart(c)
	}

	defer func() {
		if v := recover(); v != nil {
			r.recoverPanic(c, rw, v)
		}
		if r.observer != nil {
			status := rw.StatusCode()
			if status == 0 {
				status = http.StatusOK
			}
			r.observer.RequestEnd(c, status, time.Since(start))
		}
	}()

	path := req.URL.Path
	var route *Route
	if root := r.trees[req.Method]; root != nil {
		route = root.match(path, c)
	}

	if route == nil {
		r.handleUnmatched(c, req, path)
		return
	}

	c.handlers = route.chain
	c.routePattern = route.pattern
	c.Next()

	// A handler that returns without writing still owes the client a
	// response.
	if !rw.Written() {
		rw.WriteHeader(http.StatusOK)
	}
}

// recoverPanic is the outermost isolation boundary: a panicking handler
// becomes a 500 for its own request and nothing else.
func (r *Router) recoverPanic(c *Context, rw *responseWriter, v any) {
	r.logger.Error("panic recovered",
		"panic", fmt.Sprint(v),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"stack", string(debug.Stack()),
	)
	if r.observer != nil {
		r.observer.PanicRecovered(c, v)
	}
	if !rw.Written() {
		err := httperr.Internal(fmt.Errorf("panic: %v", v))
		err.CorrelationID = c.RequestID()
		_ = httperr.Write(rw, c.Request, r.mode, err)
	}
}

// handleUnmatched renders 404 or, when the path exists under other methods,
// 405 with the Allow set.
func (r *Router) handleUnmatched(c *Context, req *http.Request, path string) {
	if r.redirectTrailingSlash && path != "/" {
		alt := path + "/"
		if n := len(path); path[n-1] == '/' {
			alt = path[:n-1]
		}
		if root := r.trees[req.Method]; root != nil {
			scratch := acquireContext()
			matched := root.match(alt, scratch)
			releaseContext(scratch)
			if matched != nil {
				c.Redirect(http.StatusPermanentRedirect, alt)
				return
			}
		}
	}

	if allowed := r.allowedMethods(req.Method, path); len(allowed) > 0 {
		c.routePattern = "_method_not_allowed"
		c.Problem(httperr.MethodNotAllowed(req.Method, allowed))
		return
	}

	c.routePattern = "_not_found"
	if r.noRoute != nil {
		c.handlers = []HandlerFunc{r.noRoute}
		c.Next()
		if !c.Written() {
			c.Status(http.StatusNotFound)
		}
		return
	}
	c.Problem(httperr.NotFound(path))
}

// allowedMethods probes the other method trees for the path. A scratch
// context absorbs the probe's parameter captures.
func (r *Router) allowedMethods(method, path string) []string {
	var allowed []string
	scratch := acquireContext()
	for m, root := range r.trees {
		if m == method {
			continue
		}
		if root.match(path, scratch) != nil {
			allowed = append(allowed, m)
		}
		scratch.paramCount = 0
		scratch.Params = nil
	}
	releaseContext(scratch)
	return allowed
}

// Serve freezes the router and serves HTTP on addr until the server stops.
// With WithH2C the listener also accepts cleartext HTTP/2.
func (r *Router) Serve(addr string) error {
	r.Freeze()

	var handler http.Handler = r
	if r.h2c {
		handler = h2c.NewHandler(r, &http2.Server{})
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  r.readTimeout,
		WriteTimeout: r.writeTimeout,
		IdleTimeout:  r.idleTimeout,
	}

	r.mu.Lock()
	r.server = srv
	r.mu.Unlock()

	r.logger.Info("listening", "addr", addr, "h2c", r.h2c)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// ServeTLS freezes the router and serves HTTPS on addr. HTTP/2 is negotiated
// via ALPN by net/http.
func (r *Router) ServeTLS(addr, certFile, keyFile string) error {
	r.Freeze()

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  r.readTimeout,
		WriteTimeout: r.writeTimeout,
		IdleTimeout:  r.idleTimeout,
	}

	r.mu.Lock()
	r.server = srv
	r.mu.Unlock()

	r.logger.Info("listening", "addr", addr, "tls", true)
	err := srv.ListenAndServeTLS(certFile, keyFile)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops a server started by Serve or ServeTLS.
func (r *Router) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	srv := r.server
	r.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
