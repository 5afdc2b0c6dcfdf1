// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package telemetry_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/taibuivan/movix/internal/platform/telemetry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// restoreGlobals puts back the process-wide provider and propagator.
func restoreGlobals(t *testing.T) {
	t.Helper()

	provider, propagator := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		if otel.GetTracerProvider() != provider {
			otel.SetTracerProvider(provider)
		}
		otel.SetTextMapPropagator(propagator)
	})
}

/*
TestSetup_Disabled verifies an empty endpoint keeps the default provider,
returns a no-op shutdown and still installs W3C trace-context propagation.
*/
func TestSetup_Disabled(t *testing.T) {
	restoreGlobals(t)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())

	shutdown, err := telemetry.Setup(context.Background(), "", "movix-api", discardLogger())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
	_, isSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.False(t, isSDK)
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

/*
TestSetup_Enabled verifies a configured endpoint installs the SDK provider.
The exporter dials lazily, so no collector is needed.
*/
func TestSetup_Enabled(t *testing.T) {
	restoreGlobals(t)

	shutdown, err := telemetry.Setup(context.Background(), "http://127.0.0.1:4318", "movix-api", discardLogger())
	require.NoError(t, err)

	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, shutdown(ctx))
}
