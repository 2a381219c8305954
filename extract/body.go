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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/helixweb/helix/httperr"
	"github.com/helixweb/helix/router"
)

// readBody takes the body capability and buffers the payload, classifying
// consumption failures. The size ceiling is enforced by the router's limited
// reader while the bytes stream in, so an oversized payload fails here
// without ever being fully buffered.
func readBody(c *router.Context) ([]byte, error) {
	rc, err := c.BodyReader()
	if err != nil {
		// Two body consumers on one handler; the dispatch boundary rejects
		// this at registration, so reaching it means manual misuse.
		return nil, httperr.Internal(err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		if errors.Is(err, router.ErrBodyTooLarge) {
			return nil, httperr.PayloadTooLarge(c.MaxBodyBytes())
		}
		return nil, httperr.Malformed(err)
	}
	return data, nil
}

// JSON decodes the request body as JSON into T, then applies `validate` tag
// rules. Syntax errors are malformed-payload rejections (400); type errors
// and validation violations are schema mismatches (422).
type JSON[T any] struct {
	Value T
}

func (j *JSON[T]) FromRequest(c *router.Context) error {
	data, err := readBody(c)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return httperr.Malformed(errors.New("empty request body"))
	}
	if err := json.Unmarshal(data, &j.Value); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return httperr.Mismatch(err).WithFields(httperr.FieldError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
			})
		}
		return httperr.Malformed(err)
	}
	return checkStruct(j.Value)
}

func (*JSON[T]) consumesBody() {}

// YAML decodes the request body as YAML into T.
type YAML[T any] struct {
	Value T
}

func (y *YAML[T]) FromRequest(c *router.Context) error {
	data, err := readBody(c)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return httperr.Malformed(errors.New("empty request body"))
	}
	if err := yaml.Unmarshal(data, &y.Value); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return httperr.Mismatch(err)
		}
		return httperr.Malformed(err)
	}
	return checkStruct(y.Value)
}

func (*YAML[T]) consumesBody() {}

// TOML decodes the request body as TOML into T.
type TOML[T any] struct {
	Value T
}

func (t *TOML[T]) FromRequest(c *router.Context) error {
	data, err := readBody(c)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return httperr.Malformed(errors.New("empty request body"))
	}
	if err := toml.Unmarshal(data, &t.Value); err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return httperr.Malformed(err)
		}
		return httperr.Mismatch(err)
	}
	return checkStruct(t.Value)
}

func (*TOML[T]) consumesBody() {}

// MsgPack decodes the request body as MessagePack into T.
type MsgPack[T any] struct {
	Value T
}

func (m *MsgPack[T]) FromRequest(c *router.Context) error {
	data, err := readBody(c)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return httperr.Malformed(errors.New("empty request body"))
	}
	if err := msgpack.Unmarshal(data, &m.Value); err != nil {
		return httperr.Malformed(err)
	}
	return checkStruct(m.Value)
}

func (*MsgPack[T]) consumesBody() {}

// Form decodes an application/x-www-form-urlencoded body into a struct T via
// `form` tags, with the same conversion and required rules as Query.
type Form[T any] struct {
	Value T
}

func (f *Form[T]) FromRequest(c *router.Context) error {
	rv := reflect.ValueOf(&f.Value).Elem()
	if rv.Kind() != reflect.Struct {
		return httperr.Internal(errTypeMustBeStruct("Form", rv.Type()))
	}

	data, err := readBody(c)
	if err != nil {
		return err
	}
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return httperr.Malformed(err)
	}
	if err := bindStruct(rv, formSource(values), "form", false); err != nil {
		return err
	}
	return checkStruct(f.Value)
}

func (*Form[T]) consumesBody() {}

type formSource url.Values

func (formSource) sourceName() string { return "form" }

func (s formSource) lookup(key string) ([]string, bool) {
	v, ok := s[key]
	return v, ok
}

// Raw buffers the request body without decoding it.
type Raw struct {
	Data        []byte
	ContentType string
}

func (r *Raw) FromRequest(c *router.Context) error {
	data, err := readBody(c)
	if err != nil {
		return err
	}
	r.Data = data
	r.ContentType = c.Request.Header.Get("Content-Type")
	return nil
}

func (*Raw) consumesBody() {}

// Body hands the request body to the handler as a stream. The size ceiling
// still applies while the handler reads; the handler owns Close.
type Body struct {
	Reader      io.ReadCloser
	ContentType string
}

func (b *Body) FromRequest(c *router.Context) error {
	rc, err := c.StreamBody()
	if err != nil {
		return httperr.Internal(err)
	}
	b.Reader = rc
	b.ContentType = c.Request.Header.Get("Content-Type")
	return nil
}

func (*Body) consumesBody() {}
