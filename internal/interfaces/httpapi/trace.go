package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("football-hub/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// tracedSpanPrefixes are opened on top of the otelhttp server span. Handlers
// and fragment rendering are kept; the relay write helpers are too thin.
var tracedSpanPrefixes = []string{
	"httpapi.Handler.",
	"httpapi.writeFragment",
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		// /healthz and other untraced requests never start a root span here.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range tracedSpanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
