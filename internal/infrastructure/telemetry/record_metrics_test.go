package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func TestNewRecordMetrics_RequiresMeter(t *testing.T) {
	_, err := NewRecordMetrics(RecordMetricsConfig{})
	assert.ErrorIs(t, err, ErrMeterNil)
}

func TestRecordMetrics_NilIsNoop(t *testing.T) {
	var rm *RecordMetrics
	ctx := context.Background()

	assert.NotPanics(t, func() {
		rm.RecordWrite(ctx, "keyword", OpCreate, nil)
		rm.Collect(ctx)
		rm.StartPeriodicCollection(ctx, time.Second)
		rm.Stop()
		assert.NoError(t, rm.Instrument(nil))
	})
}

func TestRecordMetrics_RecordWrite(t *testing.T) {
	reader, provider := newTestMeter(t)
	ctx := context.Background()

	rm, err := NewRecordMetrics(RecordMetricsConfig{Meter: provider.Meter("records")})
	require.NoError(t, err)

	rm.RecordWrite(ctx, "keyword", OpCreate, nil)
	rm.RecordWrite(ctx, "keyword", OpCreate, nil)
	rm.RecordWrite(ctx, "keyword", OpDelete, nil)
	rm.RecordWrite(ctx, "library_card", OpCreate, assert.AnError)

	data := collect(t, reader)

	v, _ := int64Value(data, "school_record_writes_total", AttrEntity.String("keyword"), AttrOperation.String(OpCreate))
	assert.Equal(t, int64(2), v)
	v, _ = int64Value(data, "school_record_writes_total", AttrEntity.String("keyword"), AttrOperation.String(OpDelete))
	assert.Equal(t, int64(1), v)
	v, _ = int64Value(data, "school_record_write_errors_total", AttrEntity.String("library_card"))
	assert.Equal(t, int64(1), v)
	_, ok := int64Value(data, "school_record_writes_total", AttrEntity.String("library_card"))
	assert.False(t, ok)
}

func TestGormRecordCountProvider(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]noteModel{{Title: "a"}, {Title: "b"}}).Error)
	archives := []archiveModel{{Label: "x"}, {Label: "y"}, {Label: "z"}}
	require.NoError(t, db.Create(&archives).Error)
	require.NoError(t, db.Delete(&archiveModel{}, archives[0].ID).Error)

	provider := NewGormRecordCountProvider(db, &noteModel{}, &archiveModel{})
	counts, err := provider.CountRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)

	assert.Equal(t, TableCount{Table: "notes", Live: 2}, counts[0])
	assert.Equal(t, TableCount{Table: "archives", SoftDelete: true, Live: 2, Trashed: 1}, counts[1])
}

func TestRecordMetrics_CollectRowCounts(t *testing.T) {
	reader, provider := newTestMeter(t)
	db := setupTestDB(t)
	require.NoError(t, db.Create(&noteModel{Title: "a"}).Error)
	archive := archiveModel{Label: "x"}
	require.NoError(t, db.Create(&archive).Error)
	require.NoError(t, db.Delete(&archive).Error)

	rm, err := NewRecordMetrics(RecordMetricsConfig{
		Meter:         provider.Meter("records"),
		Logger:        zap.NewNop(),
		CountProvider: NewGormRecordCountProvider(db, &noteModel{}, &archiveModel{}),
	})
	require.NoError(t, err)

	rm.StartPeriodicCollection(context.Background(), time.Hour)
	defer rm.Stop()

	assert.Eventually(t, func() bool {
		v, ok := int64Value(collect(t, reader), "school_record_rows",
			AttrDBTable.String("archives"), AttrTrashed.Bool(true))
		return ok && v == 1
	}, 2*time.Second, 10*time.Millisecond)

	data := collect(t, reader)
	v, _ := int64Value(data, "school_record_rows", AttrDBTable.String("notes"), AttrTrashed.Bool(false))
	assert.Equal(t, int64(1), v)
	v, _ = int64Value(data, "school_record_rows", AttrDBTable.String("archives"), AttrTrashed.Bool(false))
	assert.Equal(t, int64(0), v)
	_, ok := int64Value(data, "school_record_rows", AttrDBTable.String("notes"), AttrTrashed.Bool(true))
	assert.False(t, ok, "hard-delete tables have no trashed series")
}

func TestRecordMetrics_InstrumentCountsStatements(t *testing.T) {
	reader, provider := newTestMeter(t)
	db := setupTestDB(t)

	rm, err := NewRecordMetrics(RecordMetricsConfig{Meter: provider.Meter("records")})
	require.NoError(t, err)
	require.NoError(t, rm.Instrument(db))

	archive := archiveModel{Label: "x"}
	require.NoError(t, db.Create(&noteModel{Title: "a"}).Error)
	require.NoError(t, db.Create(&archive).Error)
	require.NoError(t, db.Delete(&archive).Error)

	var note noteModel
	require.NoError(t, db.First(&note).Error)
	require.Error(t, db.First(&note, 999).Error)
	var trashed []archiveModel
	require.NoError(t, db.Unscoped().Where("deleted_at IS NOT NULL").Find(&trashed).Error)
	require.Len(t, trashed, 1)
	require.Error(t, db.Exec("SELECT * FROM missing_table").Error)

	data := collect(t, reader)

	v, _ := int64Value(data, "school_record_statements_total",
		AttrDBTable.String("notes"), AttrDBOperation.String("INSERT"), AttrDBStatus.String("ok"))
	assert.Equal(t, int64(1), v)
	v, _ = int64Value(data, "school_record_statements_total",
		AttrDBTable.String("notes"), AttrDBOperation.String("SELECT"), AttrDBStatus.String("ok"))
	assert.Equal(t, int64(2), v, "record not found counts as ok")

	// soft delete still runs the delete callbacks
	v, _ = int64Value(data, "school_record_statements_total",
		AttrDBTable.String("archives"), AttrDBOperation.String("DELETE"), AttrTrashed.Bool(false))
	assert.Equal(t, int64(1), v)
	v, _ = int64Value(data, "school_record_statements_total",
		AttrDBTable.String("archives"), AttrDBOperation.String("SELECT"), AttrTrashed.Bool(true))
	assert.Equal(t, int64(1), v)

	v, _ = int64Value(data, "school_record_statements_total",
		AttrDBTable.String("raw"), AttrDBStatus.String("error"))
	assert.Equal(t, int64(1), v)

	m, ok := findMetric(data, "school_record_statement_duration_seconds")
	require.True(t, ok)
	h, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	assert.NotEmpty(t, h.DataPoints)
	assert.Equal(t, DBDurationBuckets, h.DataPoints[0].Bounds)
}

func TestRecordMetrics_SlowStatements(t *testing.T) {
	reader, provider := newTestMeter(t)
	db := setupTestDB(t)

	rm, err := NewRecordMetrics(RecordMetricsConfig{
		Meter:              provider.Meter("records"),
		SlowQueryThreshold: time.Nanosecond,
	})
	require.NoError(t, err)
	require.NoError(t, rm.Instrument(db))

	require.NoError(t, db.Create(&noteModel{Title: "a"}).Error)

	v, ok := int64Value(collect(t, reader), "school_record_slow_statements_total",
		AttrDBTable.String("notes"), AttrDBOperation.String("INSERT"))
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestRecordMetrics_CollectPoolState(t *testing.T) {
	reader, provider := newTestMeter(t)
	db := setupTestDB(t)

	rm, err := NewRecordMetrics(RecordMetricsConfig{Meter: provider.Meter("records")})
	require.NoError(t, err)

	rm.Collect(context.Background())
	_, ok := int64Value(collect(t, reader), "school_record_pool_connections")
	assert.False(t, ok, "no pool before Instrument")

	require.NoError(t, rm.Instrument(db))
	rm.Collect(context.Background())

	v, ok := int64Value(collect(t, reader), "school_record_pool_connections", AttrDBState.String("max"))
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}
