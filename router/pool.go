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
	"net/http"
	"sync"
)

// contextPool recycles Context and responseWriter pairs across requests. The
// steady state of a loaded server is zero context allocations per request.
var contextPool = sync.Pool{
	New: func() any {
		return &Context{index: -1}
	},
}

var writerPool = sync.Pool{
	New: func() any {
		return &responseWriter{}
	},
}

func acquireContext() *Context {
	c, ok := contextPool.Get().(*Context)
	if !ok {
		// Only possible if foreign code Put an unrelated value into the pool.
		panic("router: context pool returned non-Context value")
	}
	return c
}

func releaseContext(c *Context) {
	c.reset()
	contextPool.Put(c)
}

func acquireWriter(w http.ResponseWriter) *responseWriter {
	rw, ok := writerPool.Get().(*responseWriter)
	if !ok {
		panic("router: writer pool returned non-responseWriter value")
	}
	rw.reset(w)
	return rw
}

func releaseWriter(rw *responseWriter) {
	rw.reset(nil)
	writerPool.Put(rw)
}
