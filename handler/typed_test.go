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

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixweb/helix/extract"
	"github.com/helixweb/helix/respond"
	"github.com/helixweb/helix/router"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required"`
}

func doRequest(r *router.Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestH0(t *testing.T) {
	r := router.New()
	r.GET("/health", H0(func(c *router.Context) (respond.Text, error) {
		return respond.Text("ok"), nil
	}))

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestH1PathParam(t *testing.T) {
	r := router.New()
	r.GET("/users/{id}", H1(func(c *router.Context, id extract.Path[int]) (respond.JSON[user], error) {
		return respond.JSON[user]{Value: user{ID: id.Value, Name: "ada"}}, nil
	}))

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/users/7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got user
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 7, got.ID)
}

func TestH1PathParamRejectsNonInt(t *testing.T) {
	r := router.New()
	called := false
	r.GET("/users/{id}", H1(func(c *router.Context, id extract.Path[int]) (respond.JSON[user], error) {
		called = true
		return respond.JSON[user]{}, nil
	}))

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)

	var p map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "extraction", p["kind"])

	fields, ok := p["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "id", fields[0].(map[string]any)["field"])
}

func TestH2QueryAndBody(t *testing.T) {
	type pageQuery struct {
		Dry bool `query:"dry"`
	}

	r := router.New()
	r.POST("/users", H2(func(c *router.Context, q extract.Query[pageQuery], body extract.JSON[user]) (respond.Created[user], error) {
		u := body.Value
		u.ID = 1
		return respond.Created[user]{Value: u, Location: "/users/1"}, nil
	}))

	req := httptest.NewRequest(http.MethodPost, "/users?dry=false", strings.NewReader(`{"name":"ada"}`))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(r, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users/1", w.Header().Get("Location"))
}

func TestExtractionStopsAtFirstFailure(t *testing.T) {
	type strictQuery struct {
		Sort string `query:"sort,required"`
	}

	probeRuns = 0
	r := router.New()
	r.POST("/x", H2(func(c *router.Context, q extract.Query[strictQuery], p probeExtractor) (respond.NoContent, error) {
		return respond.NoContent{}, nil
	}))

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("data"))
	w := doRequest(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, probeRuns)
}

// probeRuns counts probeExtractor executions; adapters construct fresh zero
// values per request, so the count has to live outside the instance.
var probeRuns int

type probeExtractor struct{}

func (p *probeExtractor) FromRequest(c *router.Context) error {
	probeRuns++
	return nil
}

func TestHandlerErrorUnified(t *testing.T) {
	r := router.New()
	r.GET("/fail", H0(func(c *router.Context) (respond.NoContent, error) {
		return respond.NoContent{}, errors.New("storage offline")
	}))

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var p map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "handler", p["kind"])
	// Production default hides the cause.
	assert.NotContains(t, w.Body.String(), "storage offline")
}

func TestBodyConsumerNotLastPanics(t *testing.T) {
	defer func() {
		v := recover()
		require.NotNil(t, v)
		assert.Contains(t, v.(string), "must be the final parameter")
		assert.Contains(t, v.(string), "extract.JSON")
	}()
	H2(func(c *router.Context, body extract.JSON[user], id extract.Path[int]) (respond.NoContent, error) {
		return respond.NoContent{}, nil
	})
}

func TestTwoBodyConsumersPanic(t *testing.T) {
	assert.Panics(t, func() {
		H2(func(c *router.Context, a extract.JSON[user], b extract.Raw) (respond.NoContent, error) {
			return respond.NoContent{}, nil
		})
	})
}

func TestBodyConsumerLastAllowed(t *testing.T) {
	assert.NotPanics(t, func() {
		H2(func(c *router.Context, id extract.Path[int], body extract.JSON[user]) (respond.NoContent, error) {
			return respond.NoContent{}, nil
		})
	})
}

func TestHandlerSpecIntrospection(t *testing.T) {
	h := H2(func(c *router.Context, id extract.Path[int], body extract.JSON[user]) (respond.JSON[user], error) {
		return respond.JSON[user]{}, nil
	})

	spec := h.HandlerSpec()
	require.Len(t, spec.Extractors, 2)
	assert.Contains(t, spec.Extractors[0], "extract.Path")
	assert.Contains(t, spec.BodyExtractor, "extract.JSON")
	assert.Contains(t, spec.Responder, "respond.JSON")
}
