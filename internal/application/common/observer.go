// Package common holds the pieces every record service shares: the
// generic create/read/update/delete core, list query parsing and the
// tracing, logging and metrics around writes.
package common

import (
	"context"

	"github.com/schoolms/backend/internal/infrastructure/logger"
	"github.com/schoolms/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Observer reports record reads and writes. The zero value logs nowhere
// and records no metrics.
type Observer struct {
	Logger  *zap.Logger
	Metrics *telemetry.RecordMetrics
}

// NewObserver creates an Observer
func NewObserver(log *zap.Logger, metrics *telemetry.RecordMetrics) Observer {
	if log == nil {
		log = zap.NewNop()
	}
	return Observer{Logger: log, Metrics: metrics}
}

// Read runs fn inside an "<entity>.<method>" span
func (o Observer) Read(ctx context.Context, entity, method string, fn func(ctx context.Context) error) error {
	ctx, span := telemetry.StartRecordSpan(ctx, entity, method)
	defer span.End()

	if err := fn(ctx); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}

// Write runs fn inside an "<entity>.<op>" span, counts the write and logs
// its outcome. fn returns the id of the record it touched.
func (o Observer) Write(ctx context.Context, entity, op string, fn func(ctx context.Context) (uint64, error)) error {
	ctx, span := telemetry.StartRecordSpan(ctx, entity, op)
	defer span.End()

	id, err := fn(ctx)
	o.Metrics.RecordWrite(ctx, entity, op, err)
	o.log(ctx, span, entity, op, id, err)
	return err
}

func (o Observer) log(ctx context.Context, span trace.Span, entity, op string, id uint64, err error) {
	base := o.Logger
	if base == nil {
		base = zap.NewNop()
	}
	log := logger.Enrich(ctx, base).With(
		zap.String("entity", entity),
		zap.String("operation", op),
	)
	if id != 0 {
		telemetry.SetAttributes(span, telemetry.SpanAttrRecordID, id)
		log = log.With(zap.Uint64("id", id))
	}
	if err != nil {
		telemetry.RecordError(span, err)
		log.Warn("record write failed", zap.Error(err))
		return
	}
	log.Info("record written")
}
