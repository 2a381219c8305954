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

package httperr

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Mode selects how much internal detail leaks into response bodies.
type Mode int

const (
	// ModeProduction hides internal detail behind a correlation identifier.
	// This is the default.
	ModeProduction Mode = iota

	// ModeDevelopment includes internal detail (messages, wrapped causes)
	// directly in response bodies.
	ModeDevelopment
)

// problemTypeBase is the URI prefix for problem type slugs.
const problemTypeBase = "https://helixweb.github.io/problems/"

// Problem is an RFC 9457 problem detail plus the engine's extensions:
// the stable error kind, per-field errors, and a correlation identifier.
type Problem struct {
	Type          string       `json:"type"`
	Title         string       `json:"title"`
	Status        int          `json:"status"`
	Detail        string       `json:"detail,omitempty"`
	Instance      string       `json:"instance,omitempty"`
	Kind          Kind         `json:"kind"`
	Fields        []FieldError `json:"fields,omitempty"`
	CorrelationID string       `json:"correlation_id,omitempty"`
}

// Problem builds the wire representation of the error for the given mode.
// instance is the request path. The error's CorrelationID is generated if
// still empty, so repeated calls are stable within one request.
func (e *Error) Problem(mode Mode, instance string) Problem {
	if e.CorrelationID == "" {
		e.CorrelationID = uuid.NewString()
	}

	p := Problem{
		Type:          problemTypeBase + string(e.Kind),
		Title:         http.StatusText(e.Status),
		Status:        e.Status,
		Detail:        e.Message,
		Instance:      instance,
		Kind:          e.Kind,
		Fields:        e.Fields,
		CorrelationID: e.CorrelationID,
	}

	switch mode {
	case ModeDevelopment:
		// Full internal detail: append diagnostic text and the wrapped cause.
		if e.Detail != "" {
			p.Detail = e.Message + ": " + e.Detail
		}
		if e.err != nil {
			p.Detail += " (cause: " + e.err.Error() + ")"
		}
	default:
		// Production: 5xx messages are replaced wholesale; 4xx messages are
		// client errors and remain useful as-is.
		if e.Status >= http.StatusInternalServerError {
			p.Detail = "an internal error occurred; reference the correlation_id when reporting"
			p.Fields = nil
		}
	}

	return p
}

// Write renders the error to w as application/problem+json.
//
// This is the terminal step of error unification: every error response the
// engine produces goes through here exactly once.
func Write(w http.ResponseWriter, req *http.Request, mode Mode, e *Error) error {
	instance := ""
	if req != nil && req.URL != nil {
		instance = req.URL.Path
	}
	p := e.Problem(mode, instance)

	// Method-not-allowed responses must carry the Allow header; the detail
	// string holds the list in "allowed: GET, POST" form.
	if e.Status == http.StatusMethodNotAllowed && e.Detail != "" {
		if allowed, ok := strings.CutPrefix(e.Detail, "allowed: "); ok {
			w.Header().Set("Allow", allowed)
		}
	}

	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(e.Status)
	return json.NewEncoder(w).Encode(p)
}
