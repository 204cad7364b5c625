// Package telemetry exports catalog frame traces to an OTLP endpoint.
// Tracing is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT it is fully disabled
// and every call is a no-op.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Frames records one span per update or render cycle of the catalog.
type Frames struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates the exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func New(ctx context.Context) (*Frames, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors only
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "matui-catalog"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Frames{
		provider: provider,
		tracer:   provider.Tracer("matui/catalog"),
	}, nil
}

// Frame starts a span for one cycle, tagged with the active page. The
// returned func ends it. Safe to call on a nil *Frames.
func (f *Frames) Frame(name, page string) func() {
	if f == nil {
		return func() {}
	}
	_, span := f.tracer.Start(context.Background(), name,
		oteltrace.WithAttributes(attribute.String("catalog.page", page)))
	return func() { span.End() }
}

// Shutdown flushes pending spans. Safe to call on a nil *Frames.
func (f *Frames) Shutdown(ctx context.Context) error {
	if f == nil {
		return nil
	}
	return f.provider.Shutdown(ctx)
}
