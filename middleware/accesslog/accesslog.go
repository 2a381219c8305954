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

// Package accesslog emits one structured log line per request.
package accesslog

import (
	"log/slog"
	"strings"
	"time"

	"github.com/helixweb/helix/router"
)

// Option configures the accesslog middleware.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	skipPaths map[string]bool
}

func defaultConfig() *config {
	return &config{logger: slog.Default()}
}

// WithLogger replaces the destination logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// WithSkipPaths silences logging for exact paths, typically health checks.
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

// New returns a middleware that logs each completed request: method, path,
// matched route pattern, status, response size, elapsed time, and the
// correlation id when the requestid middleware is installed. Server errors
// log at Error level, client errors at Warn, the rest at Info.
//
//	r.UseObservational(accesslog.New(accesslog.WithLogger(logger)))
func New(opts ...Option) router.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *router.Context) {
		if cfg.skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.StatusCode()
		if status == 0 {
			status = 200
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.RoutePattern(),
			"status", status,
			"bytes", c.BytesWritten(),
			"elapsed", time.Since(start),
			"remote", remoteAddr(c),
		}
		if id := c.RequestID(); id != "" {
			attrs = append(attrs, "request_id", id)
		}

		switch {
		case status >= 500:
			cfg.logger.Error("request", attrs...)
		case status >= 400:
			cfg.logger.Warn("request", attrs...)
		default:
			cfg.logger.Info("request", attrs...)
		}
	}
}

func remoteAddr(c *router.Context) string {
	if fwd := c.Request.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	return c.Request.RemoteAddr
}
