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
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// setValue converts a raw string into the field's type. Special types are
// handled before the TextUnmarshaler check so time.Time gets the permissive
// cast parser rather than strict RFC 3339 only.
func setValue(field reflect.Value, raw string) error {
	t := field.Type()

	if t.Kind() == reflect.Pointer {
		if raw == "" {
			return nil
		}
		ptr := reflect.New(t.Elem())
		if err := setValue(ptr.Elem(), raw); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	switch t {
	case timeType:
		v, err := cast.ToTimeE(raw)
		if err != nil {
			return fmt.Errorf("invalid time: %w", err)
		}
		field.Set(reflect.ValueOf(v))
		return nil
	case durationType:
		v, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		field.SetInt(int64(v))
		return nil
	}

	if field.CanAddr() {
		if u, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(raw))
		}
	}

	switch t.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		v, err := cast.ToBoolE(raw)
		if err != nil {
			return fmt.Errorf("invalid bool: %q", raw)
		}
		field.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := cast.ToInt64E(raw)
		if err != nil {
			return fmt.Errorf("invalid integer: %q", raw)
		}
		if field.OverflowInt(v) {
			return fmt.Errorf("integer overflows %s: %q", t, raw)
		}
		field.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := cast.ToUint64E(raw)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer: %q", raw)
		}
		if field.OverflowUint(v) {
			return fmt.Errorf("integer overflows %s: %q", t, raw)
		}
		field.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return fmt.Errorf("invalid number: %q", raw)
		}
		field.SetFloat(v)
	default:
		return fmt.Errorf("unsupported field type %s", t)
	}
	return nil
}

// setValues populates a slice field from repeated raw values, or a scalar
// field from the first value.
func setValues(field reflect.Value, raws []string) error {
	if field.Kind() == reflect.Slice && field.Type().Elem().Kind() != reflect.Uint8 {
		out := reflect.MakeSlice(field.Type(), len(raws), len(raws))
		for i, raw := range raws {
			if err := setValue(out.Index(i), raw); err != nil {
				return err
			}
		}
		field.Set(out)
		return nil
	}
	if len(raws) == 0 {
		return nil
	}
	return setValue(field, raws[0])
}
