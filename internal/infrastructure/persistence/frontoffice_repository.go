package persistence

import (
	"github.com/schoolms/backend/internal/domain/frontoffice"
	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPostalRecordRepository implements PostalRecordRepository using GORM
type GormPostalRecordRepository struct {
	*gormStore[frontoffice.PostalRecord, models.PostalRecordModel, *models.PostalRecordModel]
}

// NewGormPostalRecordRepository creates a new GormPostalRecordRepository
func NewGormPostalRecordRepository(db *gorm.DB) *GormPostalRecordRepository {
	return &GormPostalRecordRepository{
		newGormStore[frontoffice.PostalRecord, models.PostalRecordModel, *models.PostalRecordModel](db, storeConfig{
			entity:     "postal record",
			sortFields: PostalRecordSortFields,
			filterFields: map[string]bool{
				"school_id":        true,
				"academic_year_id": true,
				"type":             true,
				"confidential":     true,
				"entry_by":         true,
			},
		}),
	}
}

// Ensure GormPostalRecordRepository implements PostalRecordRepository
var _ frontoffice.PostalRecordRepository = (*GormPostalRecordRepository)(nil)
