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

package timeout

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/helixweb/helix/router"
)

func quiet() Option { return WithLogger(slog.New(slog.DiscardHandler)) }

func TestTimeoutProduces504(t *testing.T) {
	r := router.New()
	r.Use(New(WithDuration(20*time.Millisecond), quiet()))
	r.GET("/slow", func(c *router.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/problem+json")
	assert.Contains(t, w.Body.String(), "infrastructure")
}

func TestFastHandlerUnaffected(t *testing.T) {
	r := router.New()
	r.Use(New(WithDuration(time.Second), quiet()))
	r.GET("/fast", func(c *router.Context) { _ = c.String(http.StatusOK, "done") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "done", w.Body.String())
}

func TestSkipPathExemptsRoute(t *testing.T) {
	r := router.New()
	r.Use(New(WithDuration(20*time.Millisecond), WithSkipPaths("/stream"), quiet()))
	r.GET("/stream", func(c *router.Context) {
		time.Sleep(60 * time.Millisecond)
		_ = c.String(http.StatusOK, "streamed")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSkipPrefixExemptsSubtree(t *testing.T) {
	r := router.New()
	r.Use(New(WithDuration(20*time.Millisecond), WithSkipPrefix("/events/"), quiet()))
	r.GET("/events/{id}", func(c *router.Context) {
		time.Sleep(60 * time.Millisecond)
		_ = c.String(http.StatusOK, "event")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/7", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPanicInsideGoroutineResurfaces(t *testing.T) {
	r := router.New()
	r.Use(New(WithDuration(time.Second), quiet()))
	r.GET("/boom", func(c *router.Context) { panic("inner") })

	// The router's outer recover must still see the re-raised panic.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
