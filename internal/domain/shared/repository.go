package shared

import (
	"context"
)

// Repository is the base interface for all record repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uint64, opts ...QueryOption) (*T, error)
	FindAll(ctx context.Context, filter Filter, opts ...QueryOption) ([]T, int64, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint64) error
}

// SoftDeleteRepository is a repository over soft-deletable records.
// Delete only sets the deletion marker; ForceDelete removes the row.
type SoftDeleteRepository[T any] interface {
	Repository[T]
	Restore(ctx context.Context, id uint64) error
	ForceDelete(ctx context.Context, id uint64) error
}

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	SchoolID *uint64
	Filters  map[string]any
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "id",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
}

// Offset returns the row offset for the filter's page
func (f Filter) Offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// TrashedScope selects how soft-deleted rows participate in a query
type TrashedScope int

const (
	// ExcludeTrashed is the default: soft-deleted rows are hidden
	ExcludeTrashed TrashedScope = iota
	// IncludeTrashed returns live and soft-deleted rows
	IncludeTrashed
	// OnlyTrashedRows returns soft-deleted rows only
	OnlyTrashedRows
)

// QueryOptions collects per-call read options
type QueryOptions struct {
	Trashed TrashedScope
	With    []string
}

// QueryOption configures QueryOptions
type QueryOption func(*QueryOptions)

// WithTrashed includes soft-deleted records in the result
func WithTrashed() QueryOption {
	return func(o *QueryOptions) {
		o.Trashed = IncludeTrashed
	}
}

// OnlyTrashed restricts the result to soft-deleted records
func OnlyTrashed() QueryOption {
	return func(o *QueryOptions) {
		o.Trashed = OnlyTrashedRows
	}
}

// With requests additional named relations to be loaded with the record
func With(relations ...string) QueryOption {
	return func(o *QueryOptions) {
		o.With = append(o.With, relations...)
	}
}

// ApplyQueryOptions folds opts into a QueryOptions value
func ApplyQueryOptions(opts ...QueryOption) QueryOptions {
	var o QueryOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
