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

package telemetry

import (
	"io"
	"os"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Recorder.
type Option func(*config)

type config struct {
	serviceName    string
	registry       *promclient.Registry
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	traceExporter  sdktrace.SpanExporter
}

func defaultConfig() *config {
	return &config{serviceName: "helix"}
}

// WithServiceName sets the service.name resource attribute.
func WithServiceName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.serviceName = name
		}
	}
}

// WithPrometheusRegistry exports metrics into an existing registry instead
// of a private one, e.g. to share a /metrics endpoint with other collectors.
func WithPrometheusRegistry(registry *promclient.Registry) Option {
	return func(cfg *config) { cfg.registry = registry }
}

// WithMeterProvider bypasses the built-in Prometheus pipeline entirely. The
// caller owns the provider's lifecycle; MetricsHandler returns nil.
func WithMeterProvider(mp *sdkmetric.MeterProvider) Option {
	return func(cfg *config) { cfg.meterProvider = mp }
}

// WithTracerProvider records spans through an existing provider. The caller
// owns its lifecycle.
func WithTracerProvider(tp *sdktrace.TracerProvider) Option {
	return func(cfg *config) { cfg.tracerProvider = tp }
}

// WithStdoutTraces records spans through the stdout exporter. Development
// only; w defaults to os.Stdout.
func WithStdoutTraces(w io.Writer) Option {
	return func(cfg *config) {
		if w == nil {
			w = os.Stdout
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			// stdouttrace.New only fails on option errors, which cannot
			// happen with a writer alone.
			return
		}
		cfg.traceExporter = exporter
	}
}

// WithTraceExporter records spans through an arbitrary span exporter, run
// inside a recorder-owned batching provider.
func WithTraceExporter(exporter sdktrace.SpanExporter) Option {
	return func(cfg *config) { cfg.traceExporter = exporter }
}
