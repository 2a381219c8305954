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

// Package basicauth guards routes with HTTP Basic authentication. This is a
// correctness layer: register it with Use so fast-path routes cannot skip
// it.
package basicauth

import (
	"crypto/subtle"
	"net/http"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// Option configures the basicauth middleware.
type Option func(*config)

type config struct {
	realm    string
	validate func(user, pass string) bool
}

// WithRealm sets the authentication realm advertised in the challenge.
func WithRealm(realm string) Option {
	return func(cfg *config) { cfg.realm = realm }
}

// WithValidator replaces credential checking entirely, e.g. to consult a
// user store.
func WithValidator(fn func(user, pass string) bool) Option {
	return func(cfg *config) { cfg.validate = fn }
}

// New returns a middleware that rejects requests lacking valid credentials
// with a 401 middleware rejection through error unification. The static
// credential comparison is constant-time.
//
//	r.Use(basicauth.New("admin", "s3cret"))
func New(user, pass string, opts ...Option) router.HandlerFunc {
	cfg := &config{realm: "restricted"}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.validate == nil {
		cfg.validate = func(u, p string) bool {
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(p), []byte(pass)) == 1
			return userOK && passOK
		}
	}

	return func(c *router.Context) {
		u, p, ok := c.Request.BasicAuth()
		if !ok || !cfg.validate(u, p) {
			c.SetHeader("WWW-Authenticate", `Basic realm="`+cfg.realm+`"`)
			c.Problem(httperr.New(httperr.KindMiddleware, http.StatusUnauthorized, "authentication required"))
			return
		}
		c.Next()
	}
}
