package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/schoolms/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cardInput struct {
	CardNo     string `json:"card_no" binding:"required,max=10"`
	ExpiryDate string `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
}

func newValidationRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req cardInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	router := newValidationRouter()

	t.Run("returns field details for invalid input", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"expiry_date": "31/12/2026"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(RequestIDHeader, "req-v1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "req-v1", resp.Error.RequestID)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "card_no", resp.Error.Details[0].Field)
		assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
		assert.Equal(t, "expiry_date", resp.Error.Details[1].Field)
		assert.Equal(t, "datetime", resp.Error.Details[1].Tag)
	})

	t.Run("reports malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"card_no":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeInvalidJSON)
	})

	t.Run("returns success for valid input", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"card_no": "LC-1", "expiry_date": "2026-12-31"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Short string `validate:"min=5"`
		Long  string `validate:"max=3"`
		Dir   string `validate:"oneof=asc desc"`
		Page  int    `validate:"gte=1"`
	}

	err := validator.New().Struct(input{Short: "ab", Long: "abcdef", Dir: "up"})
	require.Error(t, err)

	got := map[string]string{}
	for _, e := range err.(validator.ValidationErrors) {
		got[e.Field()] = getValidationMessage(e)
	}

	assert.Equal(t, "This field is required", got["Name"])
	assert.Equal(t, "Must be at least 5 characters", got["Short"])
	assert.Equal(t, "Must be at most 3 characters", got["Long"])
	assert.Equal(t, "Must be one of: asc desc", got["Dir"])
	assert.Equal(t, "Must be greater than or equal to 1", got["Page"])
}
