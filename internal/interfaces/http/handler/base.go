package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/schoolms/backend/internal/infrastructure/logger"
	"github.com/schoolms/backend/internal/interfaces/http/dto"
	"github.com/schoolms/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// reservedListParams are the query parameters list endpoints consume
// themselves; every other parameter becomes a column filter.
var reservedListParams = map[string]bool{
	"page":         true,
	"page_size":    true,
	"order_by":     true,
	"order_dir":    true,
	"school_id":    true,
	"with_trashed": true,
	"only_trashed": true,
	"with":         true,
}

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessPage sends one page of results with pagination meta
func SuccessPage[T any](c *gin.Context, page shared.Paginated[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(items, page.Total, page.Page, page.PageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// HandleError converts service errors to HTTP responses. Domain errors
// map through their code; anything else is logged and reported as 500
// without leaking the cause.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	logger.GetGinLogger(c).Error("request failed", zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

// ParseID reads the numeric :id path parameter. On failure a 400 is
// written and ok is false.
func (h *BaseHandler) ParseID(c *gin.Context) (uint64, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, fmt.Sprintf("invalid id %q", c.Param("id")))
		return 0, false
	}
	return req.ID, true
}

// BindReadQuery parses with_trashed, only_trashed and with
func (h *BaseHandler) BindReadQuery(c *gin.Context) (common.ReadQuery, bool) {
	var req dto.ReadRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return common.ReadQuery{}, false
	}
	return readQuery(req.WithTrashed, req.OnlyTrashed, req.With), true
}

// BindListQuery parses pagination, ordering, school scoping, trashed
// scope, relations and column filters
func (h *BaseHandler) BindListQuery(c *gin.Context) (common.ListQuery, bool) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return common.ListQuery{}, false
	}

	filters := make(map[string]any)
	for key, values := range c.Request.URL.Query() {
		if reservedListParams[key] || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	return common.ListQuery{
		ReadQuery: readQuery(req.WithTrashed, req.OnlyTrashed, req.With),
		Page:      req.Page,
		PageSize:  req.PageSize,
		OrderBy:   req.OrderBy,
		OrderDir:  req.OrderDir,
		SchoolID:  req.SchoolID,
		Filters:   filters,
	}, true
}

// BindAttributes decodes a JSON object body into an attribute bag.
// Numbers stay json.Number so ids and amounts keep their precision.
func (h *BaseHandler) BindAttributes(c *gin.Context) (shared.Attributes, bool) {
	body, err := c.GetRawData()
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "unable to read request body")
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var attrs shared.Attributes
	if err := dec.Decode(&attrs); err != nil || attrs == nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "request body must be a JSON object")
		return nil, false
	}
	return attrs, true
}

// BindJSON binds and validates a typed request body
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// BindQuery binds and validates typed query parameters
func (h *BaseHandler) BindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

func readQuery(withTrashed, onlyTrashed bool, with string) common.ReadQuery {
	q := common.ReadQuery{}
	switch {
	case onlyTrashed:
		q.Trashed = shared.OnlyTrashedRows
	case withTrashed:
		q.Trashed = shared.IncludeTrashed
	}
	for name := range strings.SplitSeq(with, ",") {
		if name = strings.TrimSpace(name); name != "" {
			q.With = append(q.With, name)
		}
	}
	return q
}
