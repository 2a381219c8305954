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
	"fmt"
	"io"
	"strconv"

	"github.com/helixweb/helix/router"
)

// Responder converts a handler's return value into an HTTP response. A
// returned error means the response could not be produced; the dispatch
// boundary routes it through error unification.
type Responder interface {
	Respond(c *router.Context) error
}

// Header is one response header pair. Duplicate keys are preserved in order,
// which matters for headers like Set-Cookie.
type Header struct {
	Key   string
	Value string
}

// Response is the explicit response value for handlers that build responses
// directly instead of using a typed built-in. The body is empty, buffered
// (Body), or streaming (Reader); Body wins when both are set.
//
// A streaming body never sets Content-Length unless ContentLength declares
// the total size up front.
type Response struct {
	Status        int
	Headers       []Header
	Body          []byte
	Reader        io.Reader
	ContentLength int64
}

func (r Response) Respond(c *router.Context) error {
	for _, h := range r.Headers {
		c.AddHeader(h.Key, h.Value)
	}

	status := r.Status
	if status == 0 {
		status = 200
	}

	switch {
	case r.Body != nil:
		return c.Data(status, "", r.Body)
	case r.Reader != nil:
		if r.ContentLength > 0 {
			c.SetHeader("Content-Length", strconv.FormatInt(r.ContentLength, 10))
		}
		c.Status(status)
		return copyStream(c, r.Reader)
	default:
		c.Status(status)
		return nil
	}
}

// copyStream copies a streaming body to the client, flushing as chunks
// arrive and abandoning cleanly when the request context is cancelled.
func copyStream(c *router.Context, src io.Reader) error {
	flusher, canFlush := c.Response.(interface{ Flush() })
	ctx := c.Request.Context()
	buf := make([]byte, 32*1024)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stream abandoned: %w", err)
		}
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := c.Response.Write(buf[:n]); werr != nil {
				return werr
			}
			if canFlush {
				flusher.Flush()
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}
