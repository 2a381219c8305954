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

package router

import (
	"log/slog"
	"time"
)

// noopLogger backs Context.Logger when no logger is configured, so handler
// code never needs a nil check.
var noopLogger = slog.New(slog.DiscardHandler)

// ObservabilityRecorder receives dispatch lifecycle notifications. The
// telemetry package provides an OpenTelemetry-backed implementation; custom
// recorders only need these three hooks.
//
// RequestStart and RequestEnd bracket every dispatched request, including
// 404s and panics. PanicRecovered fires before RequestEnd when a handler
// panicked.
type ObservabilityRecorder interface {
	RequestStart(c *Context)
	RequestEnd(c *Context, status int, elapsed time.Duration)
	PanicRecovered(c *Context, value any)
}
