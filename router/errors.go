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
	"errors"
	"fmt"
)

var (
	// ErrFrozen indicates an attempt to modify the router after Freeze.
	ErrFrozen = errors.New("router is frozen; register routes before serving")

	// ErrBodyConsumed indicates a second attempt to consume the request body.
	// The body capability moves to the first consumer; it is never shared.
	ErrBodyConsumed = errors.New("request body already consumed")

	// ErrBodyTooLarge indicates the request body exceeded the configured
	// byte ceiling during consumption.
	ErrBodyTooLarge = errors.New("request body exceeds configured limit")

	// ErrNilHandler indicates a route was registered without a handler.
	ErrNilHandler = errors.New("route handler must not be nil")

	// ErrUnsupportedHandler indicates the handler argument is neither a
	// HandlerFunc nor a TypedHandler.
	ErrUnsupportedHandler = errors.New("unsupported handler type")

	// ErrInvalidPattern indicates a malformed route pattern.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrWildcardNotLast indicates a wildcard segment in a non-final position.
	ErrWildcardNotLast = errors.New("wildcard segment must be the final segment")

	// ErrDuplicateParam indicates a pattern declares the same parameter name twice.
	ErrDuplicateParam = errors.New("duplicate parameter name in pattern")

	// ErrStateNotFound indicates no shared state of the requested type was
	// installed via SetState.
	ErrStateNotFound = errors.New("shared state not installed")

	// ErrResponseWriterNotHijacker indicates the underlying ResponseWriter
	// does not implement http.Hijacker.
	ErrResponseWriterNotHijacker = errors.New("response writer does not implement http.Hijacker")
)

// ConflictError reports two route patterns that would match an identical
// concrete path at the same precedence level. Conflicts are fatal at
// assembly time; a route is never silently shadowed.
type ConflictError struct {
	Method   string
	Existing string // pattern already in the table
	Pattern  string // pattern being registered
}

// Error implements the error interface, naming both conflicting patterns.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("route conflict on %s: pattern %q collides with registered pattern %q",
		e.Method, e.Pattern, e.Existing)
}
