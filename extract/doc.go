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

// Package extract provides the typed extractors a handler declares as
// parameters: path and query binding, header binding, body decoding in
// several formats, and shared-state lookup.
//
// An extractor is any type whose pointer implements FromRequest. Extractors
// run in the handler's declared parameter order before the handler body;
// the first failure short-circuits dispatch and the handler never runs.
// Failures are already classified *httperr.Error values, so a failed
// extraction renders the same problem+json shape as any other rejection.
//
//	func getUser(c *router.Context, id extract.Path[int]) (respond.JSON[User], error) {
//	    u, err := store.Find(id.Value)
//	    ...
//	}
//
// Body consumers (JSON, YAML, TOML, MsgPack, Form, Raw, Body) take the
// request body capability, which moves to the first consumer. The handler
// package enforces at registration time that a handler declares at most one
// body consumer, in final position.
package extract
