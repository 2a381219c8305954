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
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/helixweb/helix/router"
)

// Negotiated encodes the wrapped value as JSON, YAML, or MessagePack
// depending on the request's Accept header. The choice is deterministic for
// a given header: quality values and specificity decide, JSON wins ties as
// the first offer, and an absent or fully unsatisfiable header falls back to
// JSON rather than failing with 406.
type Negotiated[T any] struct {
	Value T
}

func (n Negotiated[T]) Respond(c *router.Context) error {
	switch c.Accepts("application/json", "application/yaml", "application/msgpack") {
	case "application/yaml":
		data, err := yaml.Marshal(n.Value)
		if err != nil {
			return err
		}
		return c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	case "application/msgpack":
		data, err := msgpack.Marshal(n.Value)
		if err != nil {
			return err
		}
		return c.Data(http.StatusOK, "application/msgpack", data)
	default:
		return c.JSON(http.StatusOK, n.Value)
	}
}
