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

package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Kind classifies an error by the dispatch stage that produced it.
// The classification is stable and appears verbatim in response bodies,
// so clients may switch on it.
type Kind string

const (
	// KindRouting covers "no route matched" and "method not allowed".
	KindRouting Kind = "routing"

	// KindExtraction covers missing or invalid parameters and malformed,
	// oversized, or mismatched request bodies.
	KindExtraction Kind = "extraction"

	// KindHandler covers application-level errors explicitly returned by a
	// handler.
	KindHandler Kind = "handler"

	// KindMiddleware covers short-circuit rejections from middleware layers,
	// e.g. a rate limit or auth failure.
	KindMiddleware Kind = "middleware"

	// KindInfrastructure covers timeouts, cancellation, and recovered panics.
	KindInfrastructure Kind = "infrastructure"
)

// FieldError describes a single invalid field in a request.
// Extraction failures carry one FieldError per offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the unified, response-convertible error for the dispatch engine.
//
// Message is safe for any client. Detail is internal diagnostic text and is
// only rendered in development mode; in production it is logged and replaced
// by a correlation identifier.
type Error struct {
	Kind          Kind
	Status        int
	Message       string
	Detail        string
	Fields        []FieldError
	CorrelationID string

	err error // wrapped cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.err }

// WithDetail attaches internal diagnostic detail and returns the error.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithFields attaches per-field errors and returns the error.
func (e *Error) WithFields(fields ...FieldError) *Error {
	e.Fields = append(e.Fields, fields...)
	return e
}

// New creates an Error with the given classification, status, and message.
func New(kind Kind, status int, format string, args ...any) *Error {
	return &Error{Kind: kind, Status: status, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error wrapping err as its cause. The cause text is internal
// detail; it is never shown to clients in production mode.
func Wrap(err error, kind Kind, status int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Status:  status,
		Message: fmt.Sprintf(format, args...),
		err:     err,
	}
}

// From converts an arbitrary error into an *Error.
//
// An *Error passes through unchanged. Anything else is treated as an
// application-level handler error: 500 with the original text kept as
// internal detail.
func From(err error) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}
	return &Error{
		Kind:    KindHandler,
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		Detail:  err.Error(),
		err:     err,
	}
}

// NotFound reports that no route matched the request path.
func NotFound(path string) *Error {
	return New(KindRouting, http.StatusNotFound, "no route for path %q", path)
}

// MethodNotAllowed reports that the path exists under other HTTP methods.
// The allowed set is carried in Detail so the renderer can emit the Allow
// header.
func MethodNotAllowed(method string, allowed []string) *Error {
	e := New(KindRouting, http.StatusMethodNotAllowed, "method %s not allowed", method)
	e.Detail = "allowed: " + strings.Join(allowed, ", ")
	return e
}

// Extraction reports a failed extractor with the offending field name.
func Extraction(field, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	e := New(KindExtraction, http.StatusBadRequest, "invalid request: %s", msg)
	if field != "" {
		e.Fields = []FieldError{{Field: field, Message: msg}}
	}
	return e
}

// Malformed reports a syntactically invalid request body.
func Malformed(err error) *Error {
	return Wrap(err, KindExtraction, http.StatusBadRequest, "malformed request body")
}

// Mismatch reports a syntactically valid body that does not fit the target
// schema (wrong types, failed validation rules).
func Mismatch(err error) *Error {
	return Wrap(err, KindExtraction, http.StatusUnprocessableEntity, "request body does not match expected schema")
}

// PayloadTooLarge reports a body that exceeded the configured byte ceiling.
// Distinct from Malformed so clients can tell the two apart.
func PayloadTooLarge(limit int64) *Error {
	return New(KindExtraction, http.StatusRequestEntityTooLarge, "request body exceeds limit of %d bytes", limit)
}

// Timeout reports that the handler lost the race against the request timer.
func Timeout(d time.Duration) *Error {
	return New(KindInfrastructure, http.StatusGatewayTimeout, "request timed out after %s", d)
}

// Internal reports an unexpected fault (e.g. a recovered panic) isolated to a
// single request.
func Internal(cause any) *Error {
	e := New(KindInfrastructure, http.StatusInternalServerError, "internal server error")
	e.Detail = fmt.Sprintf("%v", cause)
	if err, ok := cause.(error); ok {
		e.err = err
	}
	return e
}
