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

// Package recovery converts handler panics into per-request 500 responses.
//
// The router already carries a last-resort recover at the dispatch boundary;
// this middleware exists for callers who want custom panic hooks or want the
// recovery point placed inside specific chain layers.
package recovery

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// Option configures the recovery middleware.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	onPanic func(c *router.Context, value any, stack []byte)
}

func defaultConfig() *config {
	return &config{logger: slog.Default()}
}

// WithLogger replaces the logger used for panic reports.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// WithPanicHook installs a callback invoked with the recovered value and
// stack before the error response is written. Useful for crash reporting.
func WithPanicHook(fn func(c *router.Context, value any, stack []byte)) Option {
	return func(cfg *config) { cfg.onPanic = fn }
}

// New returns a middleware that recovers panics from the layers inside it,
// logs the stack, and responds with an infrastructure 500 through error
// unification. The panic stays isolated to its own request.
//
//	r.Use(recovery.New())
func New(opts ...Option) router.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			if cfg.logger != nil {
				cfg.logger.Error("panic recovered",
					"panic", fmt.Sprint(v),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(stack),
				)
			}
			if cfg.onPanic != nil {
				cfg.onPanic(c, v, stack)
			}
			c.Problem(httperr.Internal(fmt.Errorf("panic: %v", v)))
		}()
		c.Next()
	}
}
