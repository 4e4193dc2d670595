package frontoffice

import "github.com/schoolms/backend/internal/domain/shared"

// PostalRecordRepository persists postal records. Delete removes the row.
type PostalRecordRepository interface {
	shared.Repository[PostalRecord]
}
