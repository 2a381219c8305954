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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/helixweb/helix/httperr"
)

// validate is the shared validator instance. It caches struct metadata
// internally, so a single instance serves all requests.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json tag names instead of Go field names in violations.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query", "header", "form", "path"} {
			if tag := fld.Tag.Get(key); tag != "" && tag != "-" {
				name, _, _ := strings.Cut(tag, ",")
				return name
			}
		}
		return fld.Name
	})
	return v
}

// checkStruct runs `validate` tag rules against a decoded struct value and
// converts violations into a schema-mismatch error with per-field detail.
// Non-struct values pass through untouched.
func checkStruct(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := validate.Struct(rv.Interface())
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return httperr.Internal(err)
	}

	fields := make([]httperr.FieldError, 0, len(violations))
	for _, fe := range violations {
		fields = append(fields, httperr.FieldError{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return httperr.Mismatch(fmt.Errorf("validation failed on %d field(s)", len(fields))).WithFields(fields...)
}

func violationMessage(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("failed %q rule (param %s)", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}
