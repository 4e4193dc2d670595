package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer of record service spans
const TracerName = "school-backend/records"

// Span attribute names set by the record services
const (
	SpanAttrEntity   = "entity"
	SpanAttrRecordID = "record_id"
	SpanAttrSchoolID = "school_id"
)

// SpanOption adds attributes to a record span at start
type SpanOption func([]attribute.KeyValue) []attribute.KeyValue

// WithAttribute sets key on the span at start
func WithAttribute(key string, value any) SpanOption {
	return func(attrs []attribute.KeyValue) []attribute.KeyValue {
		return append(attrs, toAttribute(key, value))
	}
}

// StartRecordSpan starts an internal span named "<entity>.<op>", e.g.
// "library_card.create", tagged with the entity. The caller ends it.
func StartRecordSpan(ctx context.Context, entity, op string, opts ...SpanOption) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String(SpanAttrEntity, entity)}
	for _, opt := range opts {
		attrs = opt(attrs)
	}
	return otel.Tracer(TracerName).Start(ctx, entity+"."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// SetAttributes sets alternating key/value pairs on span. Pairs with a
// non-string key are skipped.
func SetAttributes(span trace.Span, keyValues ...any) {
	if span == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, len(keyValues)/2)
	for i := 0; i+1 < len(keyValues); i += 2 {
		if key, ok := keyValues[i].(string); ok {
			attrs = append(attrs, toAttribute(key, keyValues[i+1]))
		}
	}
	span.SetAttributes(attrs...)
}

// RecordError marks span failed with err
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case uint:
		return attribute.Int64(key, int64(v))
	case uint64:
		return attribute.Int64(key, int64(v))
	case float64:
		return attribute.Float64(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	}
	return attribute.String(key, fmt.Sprint(value))
}
