package telemetry

import "go.opentelemetry.io/otel/attribute"

// Metric and span attribute keys.
var (
	AttrEntity    = attribute.Key("entity")
	AttrOperation = attribute.Key("operation")
	AttrSchoolID  = attribute.Key("school_id")
	// AttrTrashed marks series that cover soft-deleted rows.
	AttrTrashed = attribute.Key("trashed")

	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
	AttrHTTPRoute      = attribute.Key("http.route")

	AttrDBOperation = attribute.Key("db.operation")
	AttrDBTable     = attribute.Key("db.table")
	AttrDBState     = attribute.Key("db.pool.state")
	AttrDBStatus    = attribute.Key("db.status")
)

// Histogram boundaries in seconds.
var (
	HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	DBDurationBuckets   = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
)
