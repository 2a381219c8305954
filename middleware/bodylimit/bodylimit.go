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

// Package bodylimit caps request body size per route or route group,
// overriding the router-wide ceiling. This is a correctness layer: register
// it with Use, not UseObservational, so fast-path routes keep it.
package bodylimit

import (
	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// Option configures the bodylimit middleware.
type Option func(*config)

type config struct {
	limit          int64
	rejectDeclared bool
}

func defaultConfig() *config {
	return &config{
		limit:          4 << 20, // 4 MiB
		rejectDeclared: true,
	}
}

// WithLimit sets the byte ceiling. Default 4 MiB.
func WithLimit(n int64) Option {
	return func(cfg *config) { cfg.limit = n }
}

// WithoutDeclaredCheck disables the early Content-Length rejection, for
// clients known to declare inaccurate lengths.
func WithoutDeclaredCheck() Option {
	return func(cfg *config) { cfg.rejectDeclared = false }
}

// New returns a middleware that enforces a body size ceiling for the routes
// behind it. A declared Content-Length over the limit is rejected before any
// body byte is read; undeclared (chunked) bodies fail incrementally during
// consumption, before the oversized payload is fully buffered.
//
//	r.POST("/upload", uploadHandler, bodylimit.New(bodylimit.WithLimit(32<<20)))
func New(opts ...Option) router.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		if cfg.rejectDeclared && c.Request.ContentLength > cfg.limit {
			c.Problem(httperr.PayloadTooLarge(cfg.limit))
			return
		}
		c.SetMaxBodyBytes(cfg.limit)
		c.Next()
	}
}
