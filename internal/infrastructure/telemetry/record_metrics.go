package telemetry

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Record write operations reported by the application services
const (
	OpCreate      = "create"
	OpUpdate      = "update"
	OpDelete      = "delete"
	OpRestore     = "restore"
	OpForceDelete = "force_delete"
)

// ErrMeterNil is returned when a metrics constructor receives no meter
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

const defaultSlowQueryThreshold = 200 * time.Millisecond

// RecordMetrics tracks record writes per entity, the SQL statements issued
// against each table and, on every collection, the live and soft-deleted row
// counts per table plus the connection pool state. A nil *RecordMetrics is a
// valid no-op recorder.
type RecordMetrics struct {
	logger *zap.Logger

	writesTotal      *Counter
	writeErrorsTotal *Counter
	rowCount         *Gauge

	statements        *Counter
	statementDuration *Histogram
	slowStatements    *Counter
	poolConnections   *Gauge
	slowQuery         time.Duration

	counts   RecordCountProvider
	pool     atomic.Pointer[sql.DB]
	stopCh   chan struct{}
	stopOnce sync.Once
	runOnce  sync.Once
	wg       sync.WaitGroup
}

// TableCount is one table's row population
type TableCount struct {
	Table      string
	SoftDelete bool
	Live       int64
	Trashed    int64
}

// RecordCountProvider supplies per-table row counts for the gauges
type RecordCountProvider interface {
	CountRecords(ctx context.Context) ([]TableCount, error)
}

// RecordMetricsConfig holds configuration for record metrics.
type RecordMetricsConfig struct {
	Meter         metric.Meter
	Logger        *zap.Logger
	CountProvider RecordCountProvider
	// SlowQueryThreshold defaults to 200ms.
	SlowQueryThreshold time.Duration
}

// NewRecordMetrics creates the record instruments on cfg.Meter
func NewRecordMetrics(cfg RecordMetricsConfig) (*RecordMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rm := &RecordMetrics{
		logger:    logger,
		counts:    cfg.CountProvider,
		slowQuery: cmp.Or(cfg.SlowQueryThreshold, defaultSlowQueryThreshold),
		stopCh:    make(chan struct{}),
	}

	m := cfg.Meter
	var err error
	if rm.writesTotal, err = NewCounter(m, "school_record_writes_total",
		"Successful record writes by entity and operation", "{records}"); err != nil {
		return nil, err
	}
	if rm.writeErrorsTotal, err = NewCounter(m, "school_record_write_errors_total",
		"Failed record writes by entity and operation", "{records}"); err != nil {
		return nil, err
	}
	if rm.rowCount, err = NewGauge(m, "school_record_rows",
		"Rows per table, split by soft-delete state", "{rows}"); err != nil {
		return nil, err
	}
	if rm.statements, err = NewCounter(m, "school_record_statements_total",
		"SQL statements per table, operation and status; trashed marks unscoped statements", "{statements}"); err != nil {
		return nil, err
	}
	if rm.statementDuration, err = NewHistogram(m, HistogramOpts{
		Name:        "school_record_statement_duration_seconds",
		Description: "SQL statement latency per table and operation",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	}); err != nil {
		return nil, err
	}
	if rm.slowStatements, err = NewCounter(m, "school_record_slow_statements_total",
		"SQL statements slower than the slow query threshold", "{statements}"); err != nil {
		return nil, err
	}
	if rm.poolConnections, err = NewGauge(m, "school_record_pool_connections",
		"Database pool connections by state", "{connections}"); err != nil {
		return nil, err
	}
	return rm, nil
}

// Instrument registers statement callbacks on db and samples its connection
// pool on every Collect.
func (rm *RecordMetrics) Instrument(db *gorm.DB) error {
	if rm == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("record metrics: %w", err)
	}
	if err := registerStatementCallbacks(db, "school_records", false, rm.observeStatement); err != nil {
		return fmt.Errorf("record metrics: register callbacks: %w", err)
	}
	rm.pool.Store(sqlDB)
	return nil
}

// observeStatement counts one finished statement. Record-not-found counts
// as ok.
func (rm *RecordMetrics) observeStatement(db *gorm.DB, operation string) {
	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	table := cmp.Or(db.Statement.Table, "raw")
	status := "ok"
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		status = "error"
	}

	rm.statements.Inc(ctx,
		AttrDBTable.String(table),
		AttrDBOperation.String(operation),
		AttrTrashed.Bool(db.Statement.Unscoped),
		AttrDBStatus.String(status),
	)
	elapsed, ok := queryElapsed(ctx)
	if !ok {
		return
	}
	rm.statementDuration.RecordDuration(ctx, elapsed, AttrDBTable.String(table), AttrDBOperation.String(operation))
	if elapsed > rm.slowQuery {
		rm.slowStatements.Inc(ctx, AttrDBTable.String(table), AttrDBOperation.String(operation))
	}
}

// RecordWrite counts one write of entity; err selects the error counter
func (rm *RecordMetrics) RecordWrite(ctx context.Context, entity, operation string, err error) {
	if rm == nil {
		return
	}
	if err != nil {
		rm.writeErrorsTotal.Inc(ctx, AttrEntity.String(entity), AttrOperation.String(operation))
		return
	}
	rm.writesTotal.Inc(ctx, AttrEntity.String(entity), AttrOperation.String(operation))
}

// StartPeriodicCollection runs Collect every interval (default 5m) until
// Stop is called or ctx ends. Subsequent calls are no-ops.
func (rm *RecordMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	if rm == nil {
		return
	}
	rm.runOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		rm.wg.Add(1)
		go rm.run(ctx, interval)
	})
}

func (rm *RecordMetrics) run(ctx context.Context, interval time.Duration) {
	defer rm.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	rm.Collect(ctx)
	for {
		select {
		case <-rm.stopCh:
			rm.logger.Debug("Stopping record metrics collection")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			rm.Collect(ctx)
		}
	}
}

// Collect samples the pool state and row counts once
func (rm *RecordMetrics) Collect(ctx context.Context) {
	if rm == nil {
		return
	}
	if sqlDB := rm.pool.Load(); sqlDB != nil {
		stats := sqlDB.Stats()
		rm.poolConnections.Record(ctx, int64(stats.Idle), AttrDBState.String("idle"))
		rm.poolConnections.Record(ctx, int64(stats.InUse), AttrDBState.String("in_use"))
		rm.poolConnections.Record(ctx, int64(stats.OpenConnections), AttrDBState.String("open"))
		rm.poolConnections.Record(ctx, int64(stats.MaxOpenConnections), AttrDBState.String("max"))
	}
	if rm.counts == nil {
		return
	}
	counts, err := rm.counts.CountRecords(ctx)
	if err != nil {
		rm.logger.Warn("Failed to count records for metrics", zap.Error(err))
		return
	}
	for _, c := range counts {
		rm.rowCount.Record(ctx, c.Live, AttrDBTable.String(c.Table), AttrTrashed.Bool(false))
		if c.SoftDelete {
			rm.rowCount.Record(ctx, c.Trashed, AttrDBTable.String(c.Table), AttrTrashed.Bool(true))
		}
	}
}

// Stop ends periodic collection. Safe to call multiple times.
func (rm *RecordMetrics) Stop() {
	if rm == nil {
		return
	}
	rm.stopOnce.Do(func() {
		close(rm.stopCh)
		rm.wg.Wait()
	})
}

// GormRecordCountProvider counts rows of the given GORM models
type GormRecordCountProvider struct {
	db     *gorm.DB
	models []any
}

// NewGormRecordCountProvider creates a provider over models, e.g. models.All()
func NewGormRecordCountProvider(db *gorm.DB, models ...any) *GormRecordCountProvider {
	return &GormRecordCountProvider{db: db, models: models}
}

// CountRecords counts live rows of every model and, for soft-deletable
// models, the rows carrying a deletion marker.
func (p *GormRecordCountProvider) CountRecords(ctx context.Context) ([]TableCount, error) {
	out := make([]TableCount, 0, len(p.models))
	for _, model := range p.models {
		stmt := &gorm.Statement{DB: p.db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		tc := TableCount{
			Table:      stmt.Schema.Table,
			SoftDelete: stmt.Schema.LookUpField("deleted_at") != nil,
		}
		if err := p.db.WithContext(ctx).Model(model).Count(&tc.Live).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", tc.Table, err)
		}
		if tc.SoftDelete {
			err := p.db.WithContext(ctx).Unscoped().Model(model).
				Where("deleted_at IS NOT NULL").
				Count(&tc.Trashed).Error
			if err != nil {
				return nil, fmt.Errorf("count trashed %s: %w", tc.Table, err)
			}
		}
		out = append(out, tc)
	}
	return out, nil
}
