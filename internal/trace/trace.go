// Package trace extracts a trace identifier from a request context so
// that degradation warnings can be correlated with the calling flow.
package trace

import (
	"context"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// ID returns the trace ID carried by ctx, or an empty string when the
// context carries no valid span.
func ID(ctx context.Context) string {
	var traceID string

	if sc := oteltrace.SpanContextFromContext(ctx); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	if spanTraceID := uuid.UUID(oteltrace.SpanContextFromContext(ctx).TraceID()); spanTraceID != uuid.Nil {
		traceID = spanTraceID.String()
	}

	return traceID
}
