package tracing

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/giovaniif/hotel/domain/reservation"
)

const tracerName = "hotel"

// Init installs the global tracer provider and returns a shutdown function.
// If endpoint is empty, returns nil (tracing disabled, spans are no-ops).
func Init(serviceName string, endpoint string) func() {
	if endpoint == "" {
		return nil
	}
	if u, err := parseOTLPEndpoint(endpoint); err == nil {
		endpoint = u
	}
	ctx := context.Background()
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil
	}
	res, _ := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes("", semconv.ServiceNameKey.String(serviceName)),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return func() { _ = tp.Shutdown(ctx) }
}

// Start opens a span named after a registry operation, e.g. "reservation.create".
func Start(ctx context.Context, operation string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "reservation."+operation)
}

// End records the outcome on the span and ends it.
func End(span trace.Span, event reservation.Event) {
	span.SetAttributes(attribute.String("reservation.event", event.Kind.String()))
	if event.ReservationId != "" {
		span.SetAttributes(attribute.String("reservation.id", event.ReservationId))
	}
	if event.Kind.Failed() {
		msg := event.Kind.String()
		if event.Err != nil {
			msg = event.Err.Error()
		}
		span.SetStatus(codes.Error, msg)
	}
	span.End()
}

// parseOTLPEndpoint returns "host:port" from an endpoint that may carry a scheme
// (e.g. "http://tempo:4318" -> "tempo:4318").
func parseOTLPEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "4318"
	}
	return host + ":" + port, nil
}
