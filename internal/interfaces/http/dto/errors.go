package dto

import (
	"net/http"

	"github.com/schoolms/backend/internal/domain/shared"
)

// API error codes carried in ErrorInfo.Code
const (
	ErrCodeInternal            = "ERR_INTERNAL"
	ErrCodeValidation          = "ERR_VALIDATION"
	ErrCodeBadRequest          = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput        = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON         = "ERR_INVALID_JSON"
	ErrCodeForbidden           = "ERR_FORBIDDEN"
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConstraintViolation = "ERR_CONSTRAINT_VIOLATION"
	ErrCodeInvalidState        = "ERR_INVALID_STATE"
)

type apiError struct {
	status int
	// domain is the shared.DomainError code rendered under this API code
	domain string
}

var apiErrors = map[string]apiError{
	ErrCodeInternal:            {status: http.StatusInternalServerError},
	ErrCodeValidation:          {status: http.StatusBadRequest},
	ErrCodeBadRequest:          {status: http.StatusBadRequest},
	ErrCodeInvalidJSON:         {status: http.StatusBadRequest},
	ErrCodeForbidden:           {status: http.StatusForbidden},
	ErrCodeInvalidInput:        {status: http.StatusBadRequest, domain: shared.ErrInvalidInput.Code},
	ErrCodeNotFound:            {status: http.StatusNotFound, domain: shared.ErrNotFound.Code},
	ErrCodeAlreadyExists:       {status: http.StatusConflict, domain: shared.ErrAlreadyExists.Code},
	ErrCodeConstraintViolation: {status: http.StatusConflict, domain: shared.ErrConstraintViolation.Code},
	ErrCodeInvalidState:        {status: http.StatusUnprocessableEntity, domain: shared.ErrInvalidState.Code},
}

var apiCodeByDomain = func() map[string]string {
	m := make(map[string]string)
	for code, e := range apiErrors {
		if e.domain != "" {
			m[e.domain] = code
		}
	}
	return m
}()

// NormalizeErrorCode turns a domain error code into its API code. API
// codes and unknown codes pass through.
func NormalizeErrorCode(code string) string {
	if api, ok := apiCodeByDomain[code]; ok {
		return api
	}
	return code
}

// GetHTTPStatus returns the status for an API code, 500 when unknown
func GetHTTPStatus(code string) int {
	if e, ok := apiErrors[code]; ok {
		return e.status
	}
	return http.StatusInternalServerError
}
