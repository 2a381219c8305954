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
	"log/slog"
	"time"

	"github.com/helixweb/helix/httperr"
)

// Option configures a Router at construction time.
type Option func(*Router)

// WithLogger installs the structured logger used for request-scoped logging
// and error reporting. Without it the router logs nowhere.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMode sets the error rendering mode. The default is production mode:
// internal detail is hidden from 5xx response bodies and replaced with a
// correlation id.
func WithMode(mode httperr.Mode) Option {
	return func(r *Router) { r.mode = mode }
}

// WithDevelopmentMode is shorthand for WithMode(httperr.ModeDevelopment).
func WithDevelopmentMode() Option {
	return func(r *Router) { r.mode = httperr.ModeDevelopment }
}

// WithMaxBodyBytes sets the byte ceiling enforced on request body reads.
// Zero (the default) means unlimited.
func WithMaxBodyBytes(n int64) Option {
	return func(r *Router) { r.maxBodyBytes = n }
}

// WithTrailingSlashRedirect makes the router answer an unmatched path with a
// 308 redirect when the same path with the opposite trailing-slash form is
// registered. Off by default; "/users" and "/users/" are distinct routes.
func WithTrailingSlashRedirect() Option {
	return func(r *Router) { r.redirectTrailingSlash = true }
}

// WithObservability installs a recorder notified around each dispatch.
func WithObservability(rec ObservabilityRecorder) Option {
	return func(r *Router) { r.observer = rec }
}

// WithoutCancellationCheck disables the per-layer request cancellation check
// in Context.Next. Saves a few nanoseconds per layer on latency-critical
// services that handle cancellation themselves.
func WithoutCancellationCheck() Option {
	return func(r *Router) { r.checkCancellation = false }
}

// WithReadTimeout sets the HTTP server read timeout used by Serve.
func WithReadTimeout(d time.Duration) Option {
	return func(r *Router) { r.readTimeout = d }
}

// WithWriteTimeout sets the HTTP server write timeout used by Serve.
func WithWriteTimeout(d time.Duration) Option {
	return func(r *Router) { r.writeTimeout = d }
}

// WithIdleTimeout sets the HTTP server idle timeout used by Serve.
func WithIdleTimeout(d time.Duration) Option {
	return func(r *Router) { r.idleTimeout = d }
}

// WithH2C enables cleartext HTTP/2 on the server started by Serve. Useful
// behind load balancers that terminate TLS and speak h2c to the backend.
func WithH2C() Option {
	return func(r *Router) { r.h2c = true }
}
