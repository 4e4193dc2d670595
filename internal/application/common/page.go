package common

import (
	"github.com/schoolms/backend/internal/domain/shared"
)

// PageOf converts one page of records into a paginated response
func PageOf[T any, R any](rows []T, total int64, f shared.Filter, convert func(*T) R) shared.Paginated[R] {
	items := make([]R, len(rows))
	for i := range rows {
		items[i] = convert(&rows[i])
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize)
}

// PageOfE is PageOf for conversions that can fail
func PageOfE[T any, R any](rows []T, total int64, f shared.Filter, convert func(*T) (R, error)) (shared.Paginated[R], error) {
	items := make([]R, len(rows))
	for i := range rows {
		item, err := convert(&rows[i])
		if err != nil {
			return shared.Paginated[R]{}, err
		}
		items[i] = item
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// Map converts a slice of records
func Map[T any, R any](rows []T, convert func(*T) R) []R {
	out := make([]R, len(rows))
	for i := range rows {
		out[i] = convert(&rows[i])
	}
	return out
}

// NullablePath turns a resolved attachment path into its JSON form:
// NoAttachment becomes null.
func NullablePath(path string) *string {
	if path == shared.NoAttachment {
		return nil
	}
	return &path
}
