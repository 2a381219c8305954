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

package extract

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// runExtractor dispatches a request through a single-route router and runs
// the extractor inside the handler, returning its error.
func runExtractor(t *testing.T, method, pattern, target string, body *http.Request, e FromRequester) error {
	t.Helper()
	r := router.New()
	var result error
	_, err := r.Handle(method, pattern, func(c *router.Context) {
		result = e.FromRequest(c)
	})
	require.NoError(t, err)

	req := body
	if req == nil {
		req = httptest.NewRequest(method, target, nil)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return result
}

func TestPathScalar(t *testing.T) {
	var id Path[int]
	err := runExtractor(t, http.MethodGet, "/users/{id}", "/users/42", nil, &id)
	require.NoError(t, err)
	assert.Equal(t, 42, id.Value)
}

func TestPathScalarInvalid(t *testing.T) {
	var id Path[int]
	err := runExtractor(t, http.MethodGet, "/users/{id}", "/users/abc", nil, &id)
	require.Error(t, err)

	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, httperr.KindExtraction, he.Kind)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	require.Len(t, he.Fields, 1)
	assert.Equal(t, "id", he.Fields[0].Field)
}

func TestPathStruct(t *testing.T) {
	type repoKey struct {
		Org  string `path:"org"`
		Repo string `path:"repo"`
	}
	var key Path[repoKey]
	err := runExtractor(t, http.MethodGet, "/orgs/{org}/repos/{repo}", "/orgs/helix/repos/engine", nil, &key)
	require.NoError(t, err)
	assert.Equal(t, "helix", key.Value.Org)
	assert.Equal(t, "engine", key.Value.Repo)
}

func TestPathScalarString(t *testing.T) {
	var slug Path[string]
	err := runExtractor(t, http.MethodGet, "/posts/{slug}", "/posts/hello-world", nil, &slug)
	require.NoError(t, err)
	assert.Equal(t, "hello-world", slug.Value)
}

func TestQueryBinding(t *testing.T) {
	type listParams struct {
		Page  int      `query:"page"`
		Limit int      `query:"limit"`
		Tags  []string `query:"tag"`
	}
	var q Query[listParams]
	err := runExtractor(t, http.MethodGet, "/items", "/items?page=3&limit=50&tag=a&tag=b", nil, &q)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Value.Page)
	assert.Equal(t, 50, q.Value.Limit)
	assert.Equal(t, []string{"a", "b"}, q.Value.Tags)
}

func TestQueryMissingOptionalIgnored(t *testing.T) {
	type params struct {
		Page int `query:"page"`
	}
	var q Query[params]
	err := runExtractor(t, http.MethodGet, "/items", "/items", nil, &q)
	require.NoError(t, err)
	assert.Zero(t, q.Value.Page)
}

func TestQueryRequiredMissing(t *testing.T) {
	type params struct {
		Sort string `query:"sort,required"`
	}
	var q Query[params]
	err := runExtractor(t, http.MethodGet, "/items", "/items", nil, &q)

	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, httperr.KindExtraction, he.Kind)
	require.Len(t, he.Fields, 1)
	assert.Equal(t, "sort", he.Fields[0].Field)
}

func TestQueryInvalidValue(t *testing.T) {
	type params struct {
		Page int `query:"page"`
	}
	var q Query[params]
	err := runExtractor(t, http.MethodGet, "/items", "/items?page=banana", nil, &q)

	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	require.Len(t, he.Fields, 1)
	assert.Equal(t, "page", he.Fields[0].Field)
}

func TestQueryDuration(t *testing.T) {
	type params struct {
		Window time.Duration `query:"window"`
	}
	var q Query[params]
	err := runExtractor(t, http.MethodGet, "/items", "/items?window=1h30m", nil, &q)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, q.Value.Window)
}

func TestHeaderBinding(t *testing.T) {
	type auth struct {
		APIKey string `header:"X-API-Key,required"`
		Trace  string `header:"X-Trace-ID"`
	}
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("x-api-key", "secret-1")

	var h Header[auth]
	err := runExtractor(t, http.MethodGet, "/secure", "/secure", req, &h)
	require.NoError(t, err)
	assert.Equal(t, "secret-1", h.Value.APIKey)
	assert.Empty(t, h.Value.Trace)
}

func TestHeaderRequiredMissing(t *testing.T) {
	type auth struct {
		APIKey string `header:"X-API-Key,required"`
	}
	var h Header[auth]
	err := runExtractor(t, http.MethodGet, "/secure", "/secure", nil, &h)

	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, httperr.KindExtraction, he.Kind)
}

type userStore struct{ name string }

func TestStateLookup(t *testing.T) {
	store := &userStore{name: "primary"}
	r := router.New()
	r.SetState(store)

	var got *userStore
	var result error
	r.GET("/s", func(c *router.Context) {
		var s State[*userStore]
		result = s.FromRequest(c)
		got = s.Value
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/s", nil))

	require.NoError(t, result)
	assert.Same(t, store, got)
}

func TestStateMissing(t *testing.T) {
	r := router.New()
	var result error
	r.GET("/s", func(c *router.Context) {
		var s State[*userStore]
		result = s.FromRequest(c)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/s", nil))

	var he *httperr.Error
	require.ErrorAs(t, result, &he)
	assert.Equal(t, httperr.KindInfrastructure, he.Kind)
	assert.ErrorIs(t, result, router.ErrStateNotFound)
}

func TestValidationViolations(t *testing.T) {
	type signup struct {
		Email string `query:"email" validate:"required,email"`
		Age   int    `query:"age" validate:"gte=18"`
	}
	var q Query[signup]
	err := runExtractor(t, http.MethodGet, "/signup", "/signup?email=nope&age=12", nil, &q)

	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Status)
	assert.Len(t, he.Fields, 2)
}
