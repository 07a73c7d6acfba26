package ensure

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SpanEventName is the event name used when recording failures on spans.
const SpanEventName = "assertion.failed"

// recordToSpan attaches the failure to the active span, if any. Only the
// final message is recorded, so a stripped failure stays stripped in
// telemetry too.
func recordToSpan(ctx context.Context, cfg Config, err *Error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.class", err.Name()),
		attribute.String("assertion.message", err.Message()),
	}

	if cfg.Name != "" {
		attrs = append(attrs, attribute.String("assertion.validator", cfg.Name))
	}

	span.AddEvent(SpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, statusMessage(cfg.Name))
}

func statusMessage(validator string) string {
	if validator != "" {
		return "assertion failed in " + validator
	}

	return "assertion failed"
}
