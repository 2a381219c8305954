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

// Package telemetry provides the OpenTelemetry-backed implementation of
// router.ObservabilityRecorder: one span per dispatched request plus HTTP
// metrics exported through Prometheus.
//
//	rec, err := telemetry.New(telemetry.WithServiceName("orders"))
//	...
//	r := router.New(router.WithObservability(rec))
//	http.Handle("/metrics", rec.MetricsHandler())
//
// The recorder is entirely optional; a router without one records nothing
// and pays nothing.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/helixweb/helix/router"
)

// Recorder implements router.ObservabilityRecorder on OpenTelemetry. All
// methods are safe for concurrent use; instruments are created once at
// construction.
type Recorder struct {
	tracer trace.Tracer
	meter  metric.Meter

	requestDuration metric.Float64Histogram
	requestCount    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
	responseSize    metric.Int64Histogram

	registry    *promclient.Registry
	promHandler http.Handler

	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

// New builds a Recorder. The default configuration exports metrics through a
// private Prometheus registry and records no spans; enable tracing with
// WithStdoutTraces or WithTracerProvider. The global OpenTelemetry providers
// are never touched, so multiple recorders coexist in one process.
func New(opts ...Option) (*Recorder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rec := &Recorder{}

	if cfg.meterProvider != nil {
		rec.meter = cfg.meterProvider.Meter(instrumentationName)
	} else {
		registry := cfg.registry
		if registry == nil {
			registry = promclient.NewRegistry()
		}
		exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
		if err != nil {
			return nil, fmt.Errorf("creating prometheus exporter: %w", err)
		}
		res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.serviceName),
		))
		if err != nil {
			return nil, fmt.Errorf("building resource: %w", err)
		}
		rec.meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(exporter),
			sdkmetric.WithResource(res),
		)
		rec.meter = rec.meterProvider.Meter(instrumentationName)
		rec.registry = registry
		rec.promHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	switch {
	case cfg.tracerProvider != nil:
		rec.tracer = cfg.tracerProvider.Tracer(instrumentationName)
	case cfg.traceExporter != nil:
		res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.serviceName),
		))
		if err != nil {
			return nil, fmt.Errorf("building resource: %w", err)
		}
		rec.tracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(cfg.traceExporter),
			sdktrace.WithResource(res),
		)
		rec.tracer = rec.tracerProvider.Tracer(instrumentationName)
	default:
		rec.tracer = tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}

	if err := rec.createInstruments(); err != nil {
		return nil, err
	}
	return rec, nil
}

const instrumentationName = "github.com/helixweb/helix"

func (r *Recorder) createInstruments() error {
	var err error
	r.requestDuration, err = r.meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of dispatched requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}
	r.requestCount, err = r.meter.Int64Counter(
		"http.server.request.count",
		metric.WithDescription("Number of dispatched requests"),
	)
	if err != nil {
		return fmt.Errorf("creating request counter: %w", err)
	}
	r.activeRequests, err = r.meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("In-flight requests"),
	)
	if err != nil {
		return fmt.Errorf("creating active requests counter: %w", err)
	}
	r.responseSize, err = r.meter.Int64Histogram(
		"http.server.response.size",
		metric.WithDescription("Response body size"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("creating response size histogram: %w", err)
	}
	return nil
}

// RequestStart opens a span for the request and bumps the in-flight gauge.
func (r *Recorder) RequestStart(c *router.Context) {
	ctx, _ := r.tracer.Start(c.Request.Context(), c.Request.Method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(c.Request.Method),
			semconv.URLPath(c.Request.URL.Path),
		),
	)
	c.Request = c.Request.WithContext(ctx)
	r.activeRequests.Add(ctx, 1)
}

// RequestEnd records the request metrics and closes the span. The matched
// route pattern, not the concrete path, is the metric label so cardinality
// stays bounded.
func (r *Recorder) RequestEnd(c *router.Context, status int, elapsed time.Duration) {
	ctx := c.Request.Context()
	attrs := metric.WithAttributes(
		attribute.String("http.request.method", c.Request.Method),
		attribute.String("http.route", c.RoutePattern()),
		attribute.Int("http.response.status_code", status),
	)
	r.requestCount.Add(ctx, 1, attrs)
	r.requestDuration.Record(ctx, elapsed.Seconds(), attrs)
	r.responseSize.Record(ctx, c.BytesWritten(), attrs)
	r.activeRequests.Add(ctx, -1)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		semconv.HTTPRoute(c.RoutePattern()),
		semconv.HTTPResponseStatusCode(status),
	)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
	span.End()
}

// PanicRecovered attaches the recovered value to the active span.
func (r *Recorder) PanicRecovered(c *router.Context, value any) {
	span := trace.SpanFromContext(c.Request.Context())
	span.RecordError(fmt.Errorf("panic: %v", value))
	span.SetStatus(codes.Error, "panic")
}

// MetricsHandler returns the Prometheus scrape handler for the recorder's
// registry, or nil when a custom meter provider is in use.
func (r *Recorder) MetricsHandler() http.Handler {
	return r.promHandler
}

// Shutdown flushes and stops the providers the recorder owns. Providers
// supplied by the caller are left running.
func (r *Recorder) Shutdown(ctx context.Context) error {
	var errs []error
	if r.meterProvider != nil {
		errs = append(errs, r.meterProvider.Shutdown(ctx))
	}
	if r.tracerProvider != nil {
		errs = append(errs, r.tracerProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
