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

// Package timeout races the rest of the chain against a deadline.
package timeout

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// Option configures the timeout middleware.
type Option func(*config)

type config struct {
	duration     time.Duration
	logger       *slog.Logger
	skipPaths    map[string]bool
	skipPrefixes []string
}

func defaultConfig() *config {
	return &config{
		duration: 30 * time.Second,
		logger:   slog.Default(),
	}
}

// WithDuration sets the deadline. Default 30s.
func WithDuration(d time.Duration) Option {
	return func(cfg *config) { cfg.duration = d }
}

// WithLogger replaces the logger used for timeout events.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// WithSkipPaths exempts exact paths, typically streaming endpoints.
func WithSkipPaths(paths ...string) Option {
	return func(cfg *config) {
		if cfg.skipPaths == nil {
			cfg.skipPaths = make(map[string]bool, len(paths))
		}
		for _, p := range paths {
			cfg.skipPaths[p] = true
		}
	}
}

// WithSkipPrefix exempts path prefixes.
func WithSkipPrefix(prefixes ...string) Option {
	return func(cfg *config) { cfg.skipPrefixes = append(cfg.skipPrefixes, prefixes...) }
}

// New returns a middleware that runs the inner chain in a goroutine and
// races it against a timer. If the timer wins, the request context is
// cancelled, the abandoned chain keeps running until it observes the
// cancellation, and the client receives a synthetic infrastructure timeout
// through error unification.
//
// The loser goroutine still holds the Context, so the middleware waits for
// it to finish before returning; otherwise the pooled Context could be
// reused while the abandoned handler touches it. Handlers must respect
// c.Request.Context() for the deadline to have teeth.
//
// Panics inside the goroutine are re-raised on the calling goroutine so the
// ordinary recovery path sees them.
//
//	r.Use(timeout.New(timeout.WithDuration(5 * time.Second)))
func New(opts ...Option) router.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		if shouldSkip(cfg, c.Request.URL.Path) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.duration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		panicked := make(chan any, 1)

		go func() {
			defer func() {
				if v := recover(); v != nil {
					panicked <- v
				}
				close(done)
			}()
			c.Next()
		}()

		select {
		case <-done:
			select {
			case v := <-panicked:
				panic(v)
			default:
			}
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				if cfg.logger != nil {
					cfg.logger.Warn("request timed out",
						"method", c.Request.Method,
						"path", c.Request.URL.Path,
						"timeout", cfg.duration.String(),
					)
				}
				c.Problem(httperr.Timeout(cfg.duration))
			}
			// The abandoned chain must drain before the Context is pooled.
			<-done
			select {
			case v := <-panicked:
				panic(v)
			default:
			}
		}
	}
}

func shouldSkip(cfg *config, path string) bool {
	if cfg.skipPaths[path] {
		return true
	}
	for _, prefix := range cfg.skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
