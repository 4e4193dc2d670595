package telemetry

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type callbackContextKey string

const queryStartTimeKey callbackContextKey = "telemetry_query_start_time"

// markQueryStart stores the statement start time in the statement context
func markQueryStart(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	db.Statement.Context = context.WithValue(ctx, queryStartTimeKey, time.Now())
}

// queryElapsed returns the time since markQueryStart, or false when unset
func queryElapsed(ctx context.Context) (time.Duration, bool) {
	if ctx == nil {
		return 0, false
	}
	start, ok := ctx.Value(queryStartTimeKey).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}

// registerStatementCallbacks installs before/after hooks named prefix:*
// around every GORM processor. after receives the SQL verb of the finished
// statement. With beforeSpanEnd the after hooks run ahead of otelgorm's own
// after hooks, while the statement span is still recording.
func registerStatementCallbacks(db *gorm.DB, prefix string, beforeSpanEnd bool, after func(db *gorm.DB, operation string)) error {
	cb := db.Callback()
	afterOp := func(op string) func(*gorm.DB) {
		return func(db *gorm.DB) {
			if op == "" {
				op = detectOperationType(db.Statement.SQL.String())
			}
			after(db, op)
		}
	}
	spanEnd := func(name string) string {
		if !beforeSpanEnd {
			return ""
		}
		return "otel:after:" + name
	}

	steps := []func() error{
		func() error {
			return cb.Create().Before("gorm:create").Register(prefix+":before_create", markQueryStart)
		},
		func() error { return cb.Query().Before("gorm:query").Register(prefix+":before_query", markQueryStart) },
		func() error {
			return cb.Update().Before("gorm:update").Register(prefix+":before_update", markQueryStart)
		},
		func() error {
			return cb.Delete().Before("gorm:delete").Register(prefix+":before_delete", markQueryStart)
		},
		func() error { return cb.Row().Before("gorm:row").Register(prefix+":before_row", markQueryStart) },
		func() error { return cb.Raw().Before("gorm:raw").Register(prefix+":before_raw", markQueryStart) },
		func() error {
			return cb.Create().After("gorm:create").Before(spanEnd("create")).Register(prefix+":after_create", afterOp("INSERT"))
		},
		func() error {
			return cb.Query().After("gorm:query").Before(spanEnd("select")).Register(prefix+":after_query", afterOp("SELECT"))
		},
		func() error {
			return cb.Update().After("gorm:update").Before(spanEnd("update")).Register(prefix+":after_update", afterOp("UPDATE"))
		},
		func() error {
			return cb.Delete().After("gorm:delete").Before(spanEnd("delete")).Register(prefix+":after_delete", afterOp("DELETE"))
		},
		func() error {
			return cb.Row().After("gorm:row").Before(spanEnd("row")).Register(prefix+":after_row", afterOp(""))
		},
		func() error {
			return cb.Raw().After("gorm:raw").Before(spanEnd("raw")).Register(prefix+":after_raw", afterOp(""))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// detectOperationType derives the SQL verb from a raw statement
func detectOperationType(sql string) string {
	sql = strings.TrimSpace(strings.ToUpper(sql))

	switch {
	case strings.HasPrefix(sql, "SELECT"):
		return "SELECT"
	case strings.HasPrefix(sql, "INSERT"):
		return "INSERT"
	case strings.HasPrefix(sql, "UPDATE"):
		return "UPDATE"
	case strings.HasPrefix(sql, "DELETE"):
		return "DELETE"
	default:
		return "OTHER"
	}
}
