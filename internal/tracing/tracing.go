package tracing

import (
	"context"
	"fmt"

	"github.com/linecard/fnaudit/internal/util"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitOtel installs the global tracer provider and returns its shutdown function.
// Spans are only exported when an OTLP endpoint is configured in the environment.
func InitOtel(ctx context.Context) (shutdown func(), err error) {
	tp := sdktrace.NewTracerProvider()
	shutdown = func() {
		_ = tp.Shutdown(ctx)
	}

	if util.OtelConfigPresent() {
		log.Info().Msg("initializing OpenTelemetry with OTLP exporter")

		exp, err := otlptrace.New(ctx, otlptracegrpc.NewClient())
		if err != nil {
			return func() {}, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}

		tp = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))

		shutdown = func() {
			_ = tp.ForceFlush(ctx)
			_ = exp.Shutdown(ctx)
			_ = tp.Shutdown(ctx)
		}
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})
	otel.SetTracerProvider(tp)

	return shutdown, nil
}
