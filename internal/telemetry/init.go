// Package telemetry installs the global OpenTelemetry tracer provider used by
// the comparison spans.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ServiceName identifies the CLI in exported spans.
const ServiceName = "knapsack"

// Options selects the exporter.
type Options struct {
	// Endpoint is an OTLP/HTTP URL; empty falls back to OTEL_EXPORTER_OTLP_ENDPOINT.
	Endpoint string
	// Stdout prints spans as JSON to Writer when no endpoint is set.
	Stdout bool
	Writer io.Writer
	// Version is reported as service.version.
	Version string
}

// Init configures OpenTelemetry tracing and returns the provider shutdown,
// which flushes pending spans.
func Init(ctx context.Context, opts Options) (func(context.Context) error, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(opts.Version),
	)

	exporter, err := newExporter(ctx, opts)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, opts Options) (sdktrace.SpanExporter, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if endpoint != "" {
		exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
		}

		return exp, nil
	}

	w := io.Discard
	if opts.Stdout && opts.Writer != nil {
		w = opts.Writer
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
	}

	return exp, nil
}
