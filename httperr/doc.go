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

// Package httperr is the single error capability every dispatch failure
// converges into before it becomes a wire response.
//
// Routing misses, extraction rejections, handler errors, middleware
// short-circuits, and infrastructure faults (timeouts, recovered panics) are
// all represented as an *Error carrying a Kind, an HTTP status, an
// outward-facing message, and optional internal detail. Errors render as
// RFC 9457 problem details (application/problem+json).
//
// Rendering is mode-aware:
//
//   - ModeDevelopment includes the internal detail and wrapped cause in the
//     response body.
//   - ModeProduction replaces internal detail with a generic message plus a
//     correlation identifier so operators can cross-reference logs.
//
// The mode switch is the only place behavior differs by environment.
package httperr
