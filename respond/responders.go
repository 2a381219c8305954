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

package respond

import (
	"io"
	"net/http"
	"strconv"

	"github.com/helixweb/helix/router"
)

// JSON sends the wrapped value as a 200 application/json response.
type JSON[T any] struct {
	Value T
}

func (j JSON[T]) Respond(c *router.Context) error {
	return c.JSON(http.StatusOK, j.Value)
}

// Created sends the wrapped value as a 201 application/json response, with
// an optional Location header for the new resource.
type Created[T any] struct {
	Value    T
	Location string
}

func (r Created[T]) Respond(c *router.Context) error {
	if r.Location != "" {
		c.SetHeader("Location", r.Location)
	}
	return c.JSON(http.StatusCreated, r.Value)
}

// NoContent sends an empty 204 response.
type NoContent struct{}

func (NoContent) Respond(c *router.Context) error {
	c.NoContent()
	return nil
}

// Text sends a 200 text/plain response.
type Text string

func (t Text) Respond(c *router.Context) error {
	return c.String(http.StatusOK, "%s", string(t))
}

// HTML sends a 200 text/html response.
type HTML string

func (h HTML) Respond(c *router.Context) error {
	return c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h))
}

// Redirect sends an HTTP redirect. A zero Code defaults to 302.
type Redirect struct {
	Code     int
	Location string
}

func (r Redirect) Respond(c *router.Context) error {
	code := r.Code
	if code == 0 {
		code = http.StatusFound
	}
	c.Redirect(code, r.Location)
	return nil
}

// Stream sends a body straight from a reader without buffering it. The
// response carries no Content-Length unless ContentLength declares the total
// size. The stream is abandoned cleanly if the client disconnects.
type Stream struct {
	ContentType   string
	Reader        io.Reader
	ContentLength int64
}

func (s Stream) Respond(c *router.Context) error {
	if s.ContentType != "" {
		c.SetHeader("Content-Type", s.ContentType)
	}
	if s.ContentLength > 0 {
		c.SetHeader("Content-Length", strconv.FormatInt(s.ContentLength, 10))
	}
	c.Status(http.StatusOK)
	if closer, ok := s.Reader.(io.Closer); ok {
		defer closer.Close()
	}
	return copyStream(c, s.Reader)
}

// statusOverride layers a status code over an inner responder. The override
// is recorded on the context before the inner responder runs, so it lands in
// the single header write regardless of what status the inner would use.
type statusOverride struct {
	code  int
	inner Responder
}

func (s statusOverride) Respond(c *router.Context) error {
	c.SetStatus(s.code)
	return s.inner.Respond(c)
}

// WithStatus returns a responder that sends the inner responder's body and
// headers under a different status code.
//
//	respond.WithStatus(http.StatusAccepted, respond.JSON[Job]{Value: job})
func WithStatus(code int, inner Responder) Responder {
	return statusOverride{code: code, inner: inner}
}

// headerOverlay adds headers before delegating to an inner responder.
type headerOverlay struct {
	headers []Header
	inner   Responder
}

func (h headerOverlay) Respond(c *router.Context) error {
	for _, hdr := range h.headers {
		c.AddHeader(hdr.Key, hdr.Value)
	}
	return h.inner.Respond(c)
}

// WithHeaders returns a responder that adds the given headers to the inner
// responder's output.
func WithHeaders(headers []Header, inner Responder) Responder {
	return headerOverlay{headers: headers, inner: inner}
}
