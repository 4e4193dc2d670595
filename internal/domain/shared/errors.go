package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so wrapped or re-worded errors still
// satisfy errors.Is against the sentinels below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError returns a NOT_FOUND error naming the missing record
func NewNotFoundError(entity string, id uint64) *DomainError {
	return NewDomainError(ErrNotFound.Code, fmt.Sprintf("%s %d not found", entity, id))
}

// NewInvalidInputError returns an INVALID_INPUT error for a single attribute
func NewInvalidInputError(attribute string, cause error) *DomainError {
	return NewDomainError(ErrInvalidInput.Code, fmt.Sprintf("invalid value for %s: %v", attribute, cause))
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConstraintViolation = NewDomainError("CONSTRAINT_VIOLATION", "Storage constraint violated")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
