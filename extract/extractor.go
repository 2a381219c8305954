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

import "github.com/helixweb/helix/router"

// FromRequester is the extraction capability. Implementations use pointer
// receivers so FromRequest can populate the value in place.
type FromRequester interface {
	FromRequest(c *router.Context) error
}

// BodyConsumer marks extractors that take the request body capability. The
// marker method is unexported so only this package's body extractors can
// carry it; the handler package asserts against this interface to enforce
// the one-body-consumer-last rule at registration time.
type BodyConsumer interface {
	FromRequester
	consumesBody()
}

// IsBodyConsumer reports whether v takes the request body capability.
func IsBodyConsumer(v any) bool {
	_, ok := v.(BodyConsumer)
	return ok
}
