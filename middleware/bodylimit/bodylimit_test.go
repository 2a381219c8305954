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

package bodylimit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixweb/helix/router"
)

func TestDeclaredOversizeRejectedEarly(t *testing.T) {
	bodyRead := false
	r := router.New()
	r.POST("/upload", func(c *router.Context) { bodyRead = true }, New(WithLimit(8)))

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("x", 100)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.False(t, bodyRead)
	assert.Contains(t, w.Body.String(), "8")
}

func TestUndeclaredOversizeFailsDuringRead(t *testing.T) {
	var readErr error
	r := router.New()
	r.POST("/upload", func(c *router.Context) {
		rc, err := c.BodyReader()
		require.NoError(t, err)
		defer rc.Close()
		_, readErr = io.ReadAll(rc)
	}, New(WithLimit(8), WithoutDeclaredCheck()))

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("x", 100)))
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.ErrorIs(t, readErr, router.ErrBodyTooLarge)
}

func TestWithinLimitPasses(t *testing.T) {
	var got string
	r := router.New()
	r.POST("/upload", func(c *router.Context) {
		rc, err := c.BodyReader()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		got = string(data)
	}, New(WithLimit(64)))

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "small", got)
}

func TestRouteLimitOverridesRouterLimit(t *testing.T) {
	var limit int64
	r := router.New(router.WithMaxBodyBytes(1 << 20))
	r.POST("/upload", func(c *router.Context) { limit = c.MaxBodyBytes() }, New(WithLimit(16)))

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("tiny"))
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, int64(16), limit)
}
