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
	"fmt"
	"reflect"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// State retrieves a shared application value installed at assembly time via
// Router.SetState, looked up by its concrete type. The value is shared by
// reference across all requests; its own synchronization is the caller's
// concern.
//
//	r.SetState(&UserStore{db: db})
//	...
//	func listUsers(c *router.Context, store extract.State[*UserStore]) ...
//
// A missing installation is an infrastructure error: the route cannot work
// in any deployment, so the failure is loud rather than a client 4xx.
type State[T any] struct {
	Value T
}

func (s *State[T]) FromRequest(c *router.Context) error {
	t := reflect.TypeOf(s.Value)
	if t == nil {
		// T is an interface type; reflect on the pointer instead.
		t = reflect.TypeOf(&s.Value).Elem()
	}
	v, ok := c.State(t)
	if !ok {
		return httperr.Internal(fmt.Errorf("%w: %s", router.ErrStateNotFound, t))
	}
	value, ok := v.(T)
	if !ok {
		return httperr.Internal(fmt.Errorf("state for %s holds incompatible %T", t, v))
	}
	s.Value = value
	return nil
}
