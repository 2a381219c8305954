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

package router

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		pattern string
		params  []string
		wantErr error
	}{
		{pattern: "/", params: nil},
		{pattern: "/users", params: nil},
		{pattern: "/users/{id}", params: []string{"id"}},
		{pattern: "/orgs/{org}/repos/{repo}", params: []string{"org", "repo"}},
		{pattern: "/static/*", params: []string{"filepath"}},
		{pattern: "/static/*path", params: []string{"path"}},
		{pattern: "/users/", params: nil},
		{pattern: "users", wantErr: ErrInvalidPattern},
		{pattern: "", wantErr: ErrInvalidPattern},
		{pattern: "/users/{}", wantErr: ErrInvalidPattern},
		{pattern: "/users/{id", wantErr: ErrInvalidPattern},
		{pattern: "/a/{x}/b/{x}", wantErr: ErrDuplicateParam},
		{pattern: "/files/*/meta", wantErr: ErrWildcardNotLast},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, params, err := parsePattern(tt.pattern)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.params, params)
		})
	}
}

func registerAll(t *testing.T, patterns ...string) *Router {
	t.Helper()
	r := New()
	for _, p := range patterns {
		_, err := r.Handle(http.MethodGet, p, func(c *Context) {})
		require.NoError(t, err, "registering %s", p)
	}
	return r
}

func matchPath(t *testing.T, r *Router, path string) (*Route, *Context) {
	t.Helper()
	c := NewContext(nil, nil)
	root := r.trees[http.MethodGet]
	require.NotNil(t, root)
	return root.match(path, c), c
}

func TestMatchPrecedence(t *testing.T) {
	r := registerAll(t, "/users/me", "/users/{id}", "/users/*")

	rt, _ := matchPath(t, r, "/users/me")
	require.NotNil(t, rt)
	assert.Equal(t, "/users/me", rt.Pattern())

	rt, c := matchPath(t, r, "/users/42")
	require.NotNil(t, rt)
	assert.Equal(t, "/users/{id}", rt.Pattern())
	assert.Equal(t, "42", c.Param("id"))

	// The wildcard catches what the parameter cannot: an empty segment.
	rt, c = matchPath(t, r, "/users/")
	require.NotNil(t, rt)
	assert.Equal(t, "/users/*", rt.Pattern())
	assert.Equal(t, "", c.Param("filepath"))

	// Deeper paths dead-end after the parameter consumes one segment; the
	// tree does not backtrack to the sibling wildcard.
	rt, _ = matchPath(t, r, "/users/42/avatar")
	assert.Nil(t, rt)
}

func TestPrecedenceIgnoresRegistrationOrder(t *testing.T) {
	// Same routes, reversed registration order, same winners.
	r := registerAll(t, "/users/*", "/users/{id}", "/users/me")

	rt, _ := matchPath(t, r, "/users/me")
	require.NotNil(t, rt)
	assert.Equal(t, "/users/me", rt.Pattern())

	rt, _ = matchPath(t, r, "/users/42")
	require.NotNil(t, rt)
	assert.Equal(t, "/users/{id}", rt.Pattern())
}

func TestParamCapture(t *testing.T) {
	r := registerAll(t, "/items/{id}")

	rt, c := matchPath(t, r, "/items/42")
	require.NotNil(t, rt)
	assert.Equal(t, 1, c.ParamCount())
	assert.Equal(t, "42", c.Param("id"))
}

func TestTrailingSlashDistinct(t *testing.T) {
	r := registerAll(t, "/users", "/users/")

	rt, _ := matchPath(t, r, "/users")
	require.NotNil(t, rt)
	assert.Equal(t, "/users", rt.Pattern())

	rt, _ = matchPath(t, r, "/users/")
	require.NotNil(t, rt)
	assert.Equal(t, "/users/", rt.Pattern())
}

func TestWildcardCapturesRemainder(t *testing.T) {
	r := registerAll(t, "/static/*filepath")

	rt, c := matchPath(t, r, "/static/css/site.css")
	require.NotNil(t, rt)
	assert.Equal(t, "css/site.css", c.Param("filepath"))
}

func TestNoBacktracking(t *testing.T) {
	// Once the literal edge consumes "b", the parameter route cannot reclaim
	// the path even though it would have matched in full.
	r := registerAll(t, "/a/b/{y}", "/a/{x}/c")

	rt, c := matchPath(t, r, "/a/b/c")
	require.NotNil(t, rt)
	assert.Equal(t, "/a/b/{y}", rt.Pattern())
	assert.Equal(t, "c", c.Param("y"))

	rt, c = matchPath(t, r, "/a/z/c")
	require.NotNil(t, rt)
	assert.Equal(t, "/a/{x}/c", rt.Pattern())
	assert.Equal(t, "z", c.Param("x"))
}

func TestEmptySegmentNotCapturedByParam(t *testing.T) {
	r := registerAll(t, "/users/{id}")

	rt, _ := matchPath(t, r, "/users/")
	assert.Nil(t, rt)
}

func TestConflictDetection(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
	}{
		{name: "duplicate literal", patterns: []string{"/users", "/users"}},
		{name: "duplicate param terminal", patterns: []string{"/users/{id}", "/users/{id}"}},
		{name: "differing param names", patterns: []string{"/users/{id}", "/users/{name}"}},
		{name: "differing param names mid-path", patterns: []string{"/a/{x}/c", "/a/{y}/d"}},
		{name: "duplicate wildcard", patterns: []string{"/static/*", "/static/*files"}},
		{name: "duplicate root", patterns: []string{"/", "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			_, err := r.Handle(http.MethodGet, tt.patterns[0], func(c *Context) {})
			require.NoError(t, err)

			_, err = r.Handle(http.MethodGet, tt.patterns[1], func(c *Context) {})
			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tt.patterns[0], conflict.Existing)
			assert.Equal(t, tt.patterns[1], conflict.Pattern)
			assert.Contains(t, conflict.Error(), tt.patterns[0])
			assert.Contains(t, conflict.Error(), tt.patterns[1])
		})
	}
}

func TestSamePatternDifferentMethodsNoConflict(t *testing.T) {
	r := New()
	_, err := r.Handle(http.MethodGet, "/users/{id}", func(c *Context) {})
	require.NoError(t, err)
	_, err = r.Handle(http.MethodDelete, "/users/{id}", func(c *Context) {})
	require.NoError(t, err)
}

func TestManyParamsOverflowToMap(t *testing.T) {
	var segs string
	for i := range 10 {
		segs += fmt.Sprintf("/{p%d}", i)
	}
	r := registerAll(t, segs)

	path := ""
	for i := range 10 {
		path += fmt.Sprintf("/v%d", i)
	}
	rt, c := matchPath(t, r, path)
	require.NotNil(t, rt)
	assert.Equal(t, 10, c.ParamCount())
	assert.Equal(t, "v0", c.Param("p0"))
	assert.Equal(t, "v8", c.Param("p8"))
	assert.Equal(t, "v9", c.Param("p9"))
}
