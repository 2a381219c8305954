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

// Package respond turns handler return values into HTTP responses.
//
// A handler returns any type implementing Responder; the dispatch boundary
// invokes it after the handler succeeds. Built-ins cover the common shapes:
//
//	respond.JSON[User]      200 with a JSON body
//	respond.Created[User]   201, optional Location header
//	respond.NoContent       204, empty body
//	respond.Text            200 text/plain
//	respond.HTML            200 text/html
//	respond.Redirect        3xx with Location
//	respond.Stream          streaming body, no buffering
//	respond.Negotiated[T]   JSON/YAML/MsgPack chosen by the Accept header
//
// Composites layer over an inner responder without re-encoding it:
//
//	respond.WithStatus(http.StatusAccepted, respond.JSON[Job]{Value: job})
//	respond.WithHeaders(hdrs, respond.Text("ok"))
package respond
