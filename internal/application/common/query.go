package common

import (
	"github.com/schoolms/backend/internal/domain/shared"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ReadQuery selects trashed rows and extra relations for a read
type ReadQuery struct {
	Trashed shared.TrashedScope
	With    []string
}

// Options converts the query into repository query options
func (q ReadQuery) Options() []shared.QueryOption {
	var opts []shared.QueryOption
	switch q.Trashed {
	case shared.IncludeTrashed:
		opts = append(opts, shared.WithTrashed())
	case shared.OnlyTrashedRows:
		opts = append(opts, shared.OnlyTrashed())
	}
	if len(q.With) > 0 {
		opts = append(opts, shared.With(q.With...))
	}
	return opts
}

// ListQuery is a paginated, optionally school-scoped list request
type ListQuery struct {
	ReadQuery
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	SchoolID *uint64
	Filters  map[string]any
}

// Filter converts the query into a repository filter, applying defaults
// and clamping the page size.
func (q ListQuery) Filter() shared.Filter {
	f := shared.DefaultFilter()
	if q.Page > 0 {
		f.Page = q.Page
	}
	if q.PageSize > 0 {
		f.PageSize = min(q.PageSize, MaxPageSize)
	}
	if q.OrderBy != "" {
		f.OrderBy = q.OrderBy
	}
	if q.OrderDir != "" {
		f.OrderDir = q.OrderDir
	}
	f.SchoolID = q.SchoolID
	for k, v := range q.Filters {
		f.Filters[k] = v
	}
	return f
}
