// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package telemetry configures OpenTelemetry tracing for the process.
//
// Spans are always created through the global tracer provider. When no OTLP
// endpoint is configured the global provider stays the no-op default, so
// instrumented code costs almost nothing.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/taibuivan/movix/internal/platform/constants"
)

// ShutdownFunc flushes and stops the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

/*
Setup installs the global tracer provider and W3C trace-context propagator.

Parameters:
  - ctx: context.Context for exporter construction
  - endpoint: string (OTLP/HTTP URL; empty disables export)
  - serviceName: string
  - logger: *slog.Logger

Returns:
  - ShutdownFunc: must be called on exit to flush pending spans
  - error: exporter construction failure
*/
func Setup(ctx context.Context, endpoint, serviceName string, logger *slog.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if endpoint == "" {
		logger.Info("tracing_disabled")
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("telemetry: failed to create OTLP exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", constants.AppVersion),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	logger.Info("tracing_enabled", slog.String("endpoint", endpoint))

	return provider.Shutdown, nil
}
