package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupTestTracer sets up a test tracer provider and returns the span recorder.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return sr
}

// serverSpan returns the single server span recorded for a request
func serverSpan(t *testing.T, sr *tracetest.SpanRecorder) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, span := range sr.Ended() {
		if span.SpanKind() == trace.SpanKindServer {
			return span
		}
	}
	require.Fail(t, "no server span recorded")
	return nil
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, attr := range span.Attributes() {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func newTracedRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), Tracing(), TracingAttributeInjector(), SpanErrorMarker())
	router.GET("/api/v1/library-cards/:id", handler)
	return router
}

func TestTracingWithConfig_Disabled(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: false}))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracingAttributeInjector(t *testing.T) {
	sr := setupTestTracer(t)
	router := newTracedRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/library-cards/7?school_id=3", nil)
	req.Header.Set(RequestIDHeader, "test-request-id-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	span := serverSpan(t, sr)

	v, ok := spanAttr(span, "request_id")
	require.True(t, ok)
	assert.Equal(t, "test-request-id-123", v.AsString())

	v, ok = spanAttr(span, "school_id")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.AsInt64())

	v, ok = spanAttr(span, "entity")
	require.True(t, ok)
	assert.Equal(t, "library-cards", v.AsString())
	assert.NotEqual(t, codes.Error, span.Status().Code)
}

func TestTracingAttributeInjector_IgnoresBadSchoolID(t *testing.T) {
	sr := setupTestTracer(t)
	router := newTracedRouter(func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/library-cards/7?school_id=abc", nil))

	_, ok := spanAttr(serverSpan(t, sr), "school_id")
	assert.False(t, ok)
}

func TestSpanErrorMarker(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantCode    codes.Code
		description string
	}{
		{"not found", http.StatusNotFound, codes.Error, "Not Found"},
		{"conflict", http.StatusConflict, codes.Error, "Conflict"},
		{"bad request", http.StatusBadRequest, codes.Error, "Client Error"},
		{"server error", http.StatusInternalServerError, codes.Error, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := setupTestTracer(t)
			router := newTracedRouter(func(c *gin.Context) { c.Status(tt.status) })

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/library-cards/1", nil))

			span := serverSpan(t, sr)
			assert.Equal(t, tt.wantCode, span.Status().Code)
			assert.Equal(t, tt.description, span.Status().Description)
		})
	}
}

func TestSpanErrorMarker_WithNoSpan(t *testing.T) {
	router := gin.New()
	router.Use(SpanErrorMarker())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouteEntity(t *testing.T) {
	assert.Equal(t, "payroll-templates", routeEntity("/api/v1/payroll-templates/:id/user"))
	assert.Equal(t, "keywords", routeEntity("/api/v1/keywords"))
	assert.Equal(t, "", routeEntity("/health"))
	assert.Equal(t, "", routeEntity(""))
}
