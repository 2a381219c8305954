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

// Package requestid assigns each request a correlation identifier, surfaced
// in the response header and reused by error unification as the
// correlation_id of problem responses.
package requestid

import (
	"github.com/google/uuid"

	"github.com/helixweb/helix/router"
)

// Option configures the requestid middleware.
type Option func(*config)

type config struct {
	headerName    string
	generator     func() string
	allowClientID bool
}

func defaultConfig() *config {
	return &config{
		headerName:    "X-Request-ID",
		generator:     func() string { return uuid.NewString() },
		allowClientID: true,
	}
}

// WithHeader changes the header carrying the id.
func WithHeader(name string) Option {
	return func(cfg *config) { cfg.headerName = name }
}

// WithGenerator replaces the UUID generator.
func WithGenerator(fn func() string) Option {
	return func(cfg *config) { cfg.generator = fn }
}

// WithAllowClientID controls whether an id supplied by the client is
// trusted and propagated. Enabled by default.
func WithAllowClientID(allow bool) Option {
	return func(cfg *config) { cfg.allowClientID = allow }
}

// New returns a middleware that ensures every request carries a correlation
// id: an inbound id is propagated when client ids are allowed, otherwise a
// fresh UUID is generated. The id is set on the response header before the
// rest of the chain runs.
//
//	r.UseObservational(requestid.New())
func New(opts ...Option) router.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		var id string
		if cfg.allowClientID {
			id = c.Request.Header.Get(cfg.headerName)
		}
		if id == "" {
			id = cfg.generator()
		}
		c.Response.Header().Set(cfg.headerName, id)
		c.Next()
	}
}

// Get returns the request's correlation id, or "" when the middleware is
// not installed.
func Get(c *router.Context) string {
	return c.RequestID()
}
