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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/helixweb/helix/httperr"
)

// HandlerFunc is the uniform invocation shape every handler and middleware
// layer is erased to. Middleware calls c.Next() to delegate inward; the code
// before Next runs on the way in, the code after runs on the way out.
//
//	func Logger() router.HandlerFunc {
//	    return func(c *router.Context) {
//	        start := time.Now()
//	        c.Next()
//	        c.Logger().Info("served", "elapsed", time.Since(start))
//	    }
//	}
type HandlerFunc func(*Context)

// bodyState tracks the request body capability. Exactly one consumption is
// permitted; the capability moves to the first consumer.
type bodyState int32

const (
	bodyUnread bodyState = iota
	bodyBuffered
	bodyStreaming
)

// Context carries the live state of one in-flight request: request/response
// objects, matched path parameters, the handler chain cursor, the body
// capability, and the request-scoped logger.
//
// Contexts are pooled and reused across requests. Do not retain a Context
// beyond the handler's return and do not share one across goroutines; copy
// any needed values out first.
//
// Parameters are stored in fixed arrays for the common case (up to 8) with a
// map overflow for unusually parameter-heavy routes.
type Context struct {
	Request  *http.Request
	Response http.ResponseWriter

	handlers []HandlerFunc
	router   *Router

	index      int32
	paramCount int32

	paramKeys   [8]string
	paramValues [8]string

	// Params holds overflow parameters beyond the fixed arrays. Nil for
	// nearly all routes.
	Params map[string]string

	routePattern  string
	logger        *slog.Logger
	aborted       bool
	body          bodyState
	pendingStatus int
	maxBodyBytes  int64 // per-request override of the router ceiling

	// Accept header parse cache, valid for the lifetime of the request.
	cachedAcceptHeader string
	cachedAcceptSpecs  []acceptSpec

	errs []error
}

// NewContext creates an unpooled context. Primarily useful in tests; the
// router obtains contexts from the pool during normal operation.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{Request: r, Response: w, index: -1, logger: noopLogger}
}

// initForRequest prepares a pooled context for a new request.
func (c *Context) initForRequest(w http.ResponseWriter, r *http.Request, rt *Router) {
	c.Request = r
	c.Response = w
	c.router = rt
	c.index = -1
	c.logger = noopLogger
}

// reset clears request-scoped state before the context returns to the pool.
func (c *Context) reset() {
	c.Request = nil
	c.Response = nil
	c.handlers = nil
	c.router = nil
	c.index = -1
	c.paramCount = 0
	c.Params = nil
	c.routePattern = ""
	c.logger = nil
	c.aborted = false
	c.body = bodyUnread
	c.pendingStatus = 0
	c.maxBodyBytes = 0
	c.cachedAcceptHeader = ""
	c.cachedAcceptSpecs = nil
	c.errs = nil
	for i := range c.paramKeys {
		c.paramKeys[i] = ""
		c.paramValues[i] = ""
	}
}

// Next executes the next handler in the chain. Middleware must call it to
// delegate inward; not calling it short-circuits the remaining layers.
//
// Between layers, Next checks for request cancellation (unless disabled via
// WithoutCancellationCheck) so a dropped connection stops the chain at the
// next boundary.
func (c *Context) Next() {
	c.index++
	n := int32(len(c.handlers))

	if c.router == nil || c.router.checkCancellation {
		for c.index < n {
			if c.aborted {
				return
			}
			if c.Request != nil {
				if err := c.Request.Context().Err(); err != nil {
					return
				}
			}
			c.handlers[c.index](c)
			c.index++
		}
		return
	}

	for c.index < n {
		if c.aborted {
			return
		}
		c.handlers[c.index](c)
		c.index++
	}
}

// Abort stops the chain: handlers later in the chain will not run.
// Layers already on the stack still execute their post-Next code.
func (c *Context) Abort() { c.aborted = true }

// IsAborted reports whether Abort has been called.
func (c *Context) IsAborted() bool { return c.aborted }

// addParam records a matched path parameter, overflowing to the map past the
// fixed arrays.
func (c *Context) addParam(key, value string) {
	if c.paramCount < int32(len(c.paramKeys)) {
		c.paramKeys[c.paramCount] = key
		c.paramValues[c.paramCount] = value
		c.paramCount++
		return
	}
	if c.Params == nil {
		c.Params = make(map[string]string, 2)
	}
	c.Params[key] = value
}

// Param returns the matched value for a named path parameter, or "".
func (c *Context) Param(key string) string {
	v, _ := c.LookupParam(key)
	return v
}

// LookupParam returns the matched value for a named path parameter and
// whether the name was matched at all, distinguishing "absent" from "empty".
func (c *Context) LookupParam(key string) (string, bool) {
	for i := int32(0); i < c.paramCount; i++ {
		if c.paramKeys[i] == key {
			return c.paramValues[i], true
		}
	}
	if c.Params != nil {
		v, ok := c.Params[key]
		return v, ok
	}
	return "", false
}

// ParamCount returns the number of matched path parameters.
func (c *Context) ParamCount() int {
	return int(c.paramCount) + len(c.Params)
}

// ParamAt returns the i-th matched parameter in match order. Only the fixed
// array portion is ordered; callers needing order should keep routes at or
// below eight parameters.
func (c *Context) ParamAt(i int) (key, value string) {
	if i >= 0 && int32(i) < c.paramCount {
		return c.paramKeys[i], c.paramValues[i]
	}
	return "", ""
}

// RoutePattern returns the matched route pattern (e.g. "/users/{id}"), or a
// sentinel such as "_not_found" when no route matched.
func (c *Context) RoutePattern() string { return c.routePattern }

// Logger returns the request-scoped logger. It is never nil; without
// observability configured it is a no-op logger.
func (c *Context) Logger() *slog.Logger {
	if c.logger == nil {
		return noopLogger
	}
	return c.logger
}

// Error records a non-fatal error against the request for later inspection
// (e.g. by an access-log layer).
func (c *Context) Error(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Errors returns the errors recorded during this request.
func (c *Context) Errors() []error { return c.errs }

// State returns the shared application state value of the given type,
// installed once at assembly time via Router.SetState.
func (c *Context) State(t reflect.Type) (any, bool) {
	if c.router == nil {
		return nil, false
	}
	v, ok := c.router.states[t]
	return v, ok
}

// BodyReader moves the body capability to the caller. The second and later
// calls fail with ErrBodyConsumed: the body is read-once by construction.
//
// When the router has a body-size ceiling configured, the returned reader
// enforces it incrementally and fails with ErrBodyTooLarge mid-read, before
// the oversized body is fully buffered.
func (c *Context) BodyReader() (io.ReadCloser, error) {
	if c.body != bodyUnread {
		return nil, ErrBodyConsumed
	}
	c.body = bodyBuffered

	body := c.Request.Body
	if body == nil {
		return http.NoBody, nil
	}
	if limit := c.MaxBodyBytes(); limit > 0 {
		return &limitedReader{reader: body, limit: limit}, nil
	}
	return body, nil
}

// StreamBody moves the body capability to the caller as a streaming reader.
// Identical to BodyReader except the consumption state is recorded as
// streaming, which introspection and diagnostics can distinguish.
func (c *Context) StreamBody() (io.ReadCloser, error) {
	rc, err := c.BodyReader()
	if err == nil {
		c.body = bodyStreaming
	}
	return rc, err
}

// MaxBodyBytes returns the effective request body ceiling, or 0 when
// unlimited. A per-request override (bodylimit middleware) takes precedence
// over the router-wide setting.
func (c *Context) MaxBodyBytes() int64 {
	if c.maxBodyBytes > 0 {
		return c.maxBodyBytes
	}
	if c.router == nil {
		return 0
	}
	return c.router.maxBodyBytes
}

// SetMaxBodyBytes overrides the body ceiling for this request only. Must be
// called before the body is consumed.
func (c *Context) SetMaxBodyBytes(n int64) { c.maxBodyBytes = n }

// BodyConsumed reports whether the body capability has moved.
func (c *Context) BodyConsumed() bool { return c.body != bodyUnread }

// SetStatus records a pending status override consumed by the next header
// write. Composite responders use it to layer a status code over an inner
// body without writing headers out of order.
func (c *Context) SetStatus(code int) { c.pendingStatus = code }

// writeHeader writes the response status once, honoring a pending override.
func (c *Context) writeHeader(code int) {
	if c.pendingStatus != 0 {
		code = c.pendingStatus
		c.pendingStatus = 0
	}
	if rw, ok := c.Response.(*responseWriter); ok {
		if !rw.Written() {
			rw.WriteHeader(code)
		}
		return
	}
	c.Response.WriteHeader(code)
}

// Written reports whether response headers have been sent.
func (c *Context) Written() bool {
	if rw, ok := c.Response.(*responseWriter); ok {
		return rw.Written()
	}
	return false
}

// StatusCode returns the response status written so far, or 0 if headers
// have not been sent yet.
func (c *Context) StatusCode() int {
	if rw, ok := c.Response.(*responseWriter); ok && rw.Written() {
		return rw.StatusCode()
	}
	return 0
}

// BytesWritten returns the number of response body bytes sent so far.
func (c *Context) BytesWritten() int64 {
	if rw, ok := c.Response.(*responseWriter); ok {
		return rw.BytesWritten()
	}
	return 0
}

// Status writes the status code immediately with no body.
func (c *Context) Status(code int) {
	c.writeHeader(code)
}

// SetHeader sets a response header, replacing any existing values.
func (c *Context) SetHeader(key, value string) {
	c.Response.Header().Set(key, value)
}

// AddHeader appends a response header value, preserving duplicates
// (e.g. Set-Cookie).
func (c *Context) AddHeader(key, value string) {
	c.Response.Header().Add(key, value)
}

// JSON sends a JSON response. The value is encoded to a buffer first so an
// encoding failure never leaves a half-written response.
func (c *Context) JSON(code int, obj any) error {
	buf, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("json encoding failed for %T: %w", obj, err)
	}
	c.Response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.writeHeader(code)
	_, err = c.Response.Write(buf)
	return err
}

// String sends a plain-text response.
func (c *Context) String(code int, format string, args ...any) error {
	c.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.writeHeader(code)
	_, err := fmt.Fprintf(c.Response, format, args...)
	return err
}

// Data sends raw bytes with the given content type.
func (c *Context) Data(code int, contentType string, data []byte) error {
	if contentType != "" {
		c.Response.Header().Set("Content-Type", contentType)
	}
	c.writeHeader(code)
	_, err := c.Response.Write(data)
	return err
}

// NoContent sends an empty 204 response.
func (c *Context) NoContent() {
	c.writeHeader(http.StatusNoContent)
}

// Redirect sends an HTTP redirect to the given location.
func (c *Context) Redirect(code int, location string) {
	c.Response.Header().Set("Location", location)
	c.writeHeader(code)
}

// RequestID returns the request's correlation identifier, if a request-id
// layer installed one, preferring the response header (set for new ids).
func (c *Context) RequestID() string {
	if id := c.Response.Header().Get("X-Request-ID"); id != "" {
		return id
	}
	if c.Request != nil {
		return c.Request.Header.Get("X-Request-ID")
	}
	return ""
}

// Problem is the single choke point of error unification: it converts any
// error into the unified capability, renders it per the router's mode, logs
// the full detail for operators, and aborts the chain.
//
// If the response has already started, the error can no longer be rendered;
// it is logged and recorded instead.
func (c *Context) Problem(err error) {
	e := httperr.From(err)

	if e.CorrelationID == "" {
		if id := c.RequestID(); id != "" {
			e.CorrelationID = id
		}
	}

	log := c.Logger()
	attrs := []any{
		"kind", string(e.Kind),
		"status", e.Status,
		"correlation_id", e.CorrelationID,
		"detail", e.Detail,
	}
	if cause := e.Unwrap(); cause != nil {
		attrs = append(attrs, "cause", cause.Error())
	}
	if e.Status >= http.StatusInternalServerError {
		log.Error(e.Message, attrs...)
	} else {
		log.Debug(e.Message, attrs...)
	}

	if c.Written() {
		log.Error("error raised after response started; response left as written", "kind", string(e.Kind))
		c.Error(e)
		c.Abort()
		return
	}

	mode := httperr.ModeProduction
	if c.router != nil {
		mode = c.router.mode
	}
	if werr := httperr.Write(c.Response, c.Request, mode, e); werr != nil {
		log.Error("failed to write problem response", "error", werr)
	}
	c.Error(e)
	c.Abort()
}

// limitedReader enforces the body byte ceiling while the body streams
// through, so oversized payloads fail before they are fully buffered. Based
// on io.LimitReader, but it distinguishes "exactly at the limit" from
// "limit exceeded" by probing one byte past the ceiling.
type limitedReader struct {
	reader io.ReadCloser
	limit  int64
	read   int64
}

func (lr *limitedReader) Read(p []byte) (int, error) {
	if lr.read >= lr.limit {
		// Already at the ceiling: any further data is an overflow.
		var probe [1]byte
		n, err := lr.reader.Read(probe[:])
		if n > 0 {
			return 0, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, lr.limit)
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := lr.reader.Read(p)
	lr.read += int64(n)

	if lr.read >= lr.limit && err == nil {
		var probe [1]byte
		extra, probeErr := lr.reader.Read(probe[:])
		if extra > 0 {
			return n, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, lr.limit)
		}
		if probeErr == io.EOF {
			err = io.EOF
		}
	}

	return n, err
}

func (lr *limitedReader) Close() error { return lr.reader.Close() }
