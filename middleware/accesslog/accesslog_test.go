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

package accesslog

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixweb/helix/router"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestLogsRequestLine(t *testing.T) {
	logger, buf := captureLogger()
	r := router.New()
	r.UseObservational(New(WithLogger(logger)))
	r.GET("/users/{id}", func(c *router.Context) { _ = c.String(http.StatusOK, "hello") })

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "method=GET")
	assert.Contains(t, line, "path=/users/42")
	assert.Contains(t, line, "route=/users/{id}")
	assert.Contains(t, line, "status=200")
	assert.Contains(t, line, "bytes=5")
}

func TestServerErrorLogsAtErrorLevel(t *testing.T) {
	logger, buf := captureLogger()
	r := router.New()
	r.UseObservational(New(WithLogger(logger)))
	r.GET("/bad", func(c *router.Context) { c.Status(http.StatusBadGateway) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=502")
}

func TestClientErrorLogsAtWarnLevel(t *testing.T) {
	logger, buf := captureLogger()
	r := router.New()
	r.UseObservational(New(WithLogger(logger)))
	r.GET("/teapot", func(c *router.Context) { c.Status(http.StatusTeapot) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestSkipPathsSilenced(t *testing.T) {
	logger, buf := captureLogger()
	r := router.New()
	r.UseObservational(New(WithLogger(logger), WithSkipPaths("/healthz")))
	r.GET("/healthz", func(c *router.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
}

func TestForwardedForPreferred(t *testing.T) {
	logger, buf := captureLogger()
	r := router.New()
	r.UseObservational(New(WithLogger(logger)))
	r.GET("/x", func(c *router.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "remote=203.0.113.9")
}

func TestRequestIDIncludedWhenPresent(t *testing.T) {
	logger, buf := captureLogger()
	r := router.New()
	r.UseObservational(New(WithLogger(logger)))
	r.GET("/x", func(c *router.Context) {
		c.Response.Header().Set("X-Request-ID", "rid-1")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Contains(t, buf.String(), "request_id=rid-1")
}
