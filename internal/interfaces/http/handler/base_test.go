package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/schoolms/backend/internal/interfaces/http/dto"
	"github.com/schoolms/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/", "")

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)
}

func TestSuccessPage(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")

	SuccessPage(c, shared.NewPaginated[string](nil, 0, 1, 20))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(mustField(t, w, "data")))
	resp := decode(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(0), resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.PageSize)
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, name string) json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	field, ok := raw[name]
	require.True(t, ok, "missing field %q", name)
	return field
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodPost, "/", "")

	h.Created(c, map[string]uint64{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
}

func TestBaseHandlerNoContent(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.DELETE("/test", h.NoContent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/test", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestBaseHandlerErrorCarriesRequestID(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/", "")
	c.Set(middleware.RequestIDContextKey, "test-request-123")

	h.BadRequest(c, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	assert.Equal(t, "test-request-123", resp.Error.RequestID)
}

func TestBaseHandlerHandleError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{"not found", shared.NewNotFoundError("keyword", 9), http.StatusNotFound, dto.ErrCodeNotFound},
		{"already exists", shared.ErrAlreadyExists, http.StatusConflict, dto.ErrCodeAlreadyExists},
		{"invalid input", shared.NewInvalidInputError("book_limit", errors.New("bad")), http.StatusBadRequest, dto.ErrCodeInvalidInput},
		{"constraint violation", shared.ErrConstraintViolation, http.StatusConflict, dto.ErrCodeConstraintViolation},
		{"invalid state", shared.ErrInvalidState, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState},
		{"wrapped", errors.Join(errors.New("context"), shared.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext(http.MethodGet, "/", "")

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.expectedErr, resp.Error.Code)
			assert.NotContains(t, resp.Error.Message, "disk on fire")
		})
	}
}

func TestBaseHandlerParseID(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	var got uint64
	router.GET("/items/:id", func(c *gin.Context) {
		id, ok := h.ParseID(c)
		if !ok {
			return
		}
		got = id
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(42), got)

	for _, bad := range []string{"abc", "0", "-1"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
		assert.Equal(t, dto.ErrCodeInvalidInput, decode(t, w).Error.Code)
	}
}

func TestBaseHandlerBindListQuery(t *testing.T) {
	h := &BaseHandler{}
	c, _ := newTestContext(http.MethodGet, "/?page=2&page_size=5&school_id=3&only_trashed=true&with_trashed=true&with=user,%20salaries&status=1", "")

	q, ok := h.BindListQuery(c)

	require.True(t, ok)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.PageSize)
	require.NotNil(t, q.SchoolID)
	assert.Equal(t, uint64(3), *q.SchoolID)
	assert.Equal(t, shared.OnlyTrashedRows, q.Trashed)
	assert.Equal(t, []string{"user", "salaries"}, q.With)
	assert.Equal(t, map[string]any{"status": "1"}, q.Filters)
}

func TestBaseHandlerBindListQuery_Defaults(t *testing.T) {
	h := &BaseHandler{}
	c, _ := newTestContext(http.MethodGet, "/", "")

	q, ok := h.BindListQuery(c)

	require.True(t, ok)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, dto.DefaultPageSize, q.PageSize)
	assert.Equal(t, "id", q.OrderBy)
	assert.Equal(t, "desc", q.OrderDir)
	assert.Nil(t, q.SchoolID)
	assert.Equal(t, shared.ExcludeTrashed, q.Trashed)
	assert.Empty(t, q.Filters)
}

func TestBaseHandlerBindListQuery_RejectsOversizedPage(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/?page_size=500", "")

	_, ok := h.BindListQuery(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBaseHandlerBindReadQuery(t *testing.T) {
	h := &BaseHandler{}
	c, _ := newTestContext(http.MethodGet, "/?with_trashed=true", "")

	q, ok := h.BindReadQuery(c)

	require.True(t, ok)
	assert.Equal(t, shared.IncludeTrashed, q.Trashed)
	assert.Empty(t, q.With)
}

func TestBaseHandlerBindAttributes(t *testing.T) {
	h := &BaseHandler{}

	t.Run("keeps numbers exact", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/", `{"school_id": 18446744073709551615, "amount": 12.50}`)

		attrs, ok := h.BindAttributes(c)

		require.True(t, ok)
		assert.Equal(t, json.Number("18446744073709551615"), attrs["school_id"])
		assert.Equal(t, json.Number("12.50"), attrs["amount"])
	})

	for _, body := range []string{`[1,2]`, `null`, `{"name":`, ``} {
		t.Run("rejects "+body, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "/", body)

			_, ok := h.BindAttributes(c)

			assert.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, dto.ErrCodeInvalidJSON, decode(t, w).Error.Code)
		})
	}
}
