package persistence

import (
	"github.com/schoolms/backend/internal/domain/certificate"
	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStudentCertificateRepository implements StudentCertificateRepository using GORM
type GormStudentCertificateRepository struct {
	*gormStore[certificate.StudentCertificate, models.StudentCertificateModel, *models.StudentCertificateModel]
}

// NewGormStudentCertificateRepository creates a new GormStudentCertificateRepository
func NewGormStudentCertificateRepository(db *gorm.DB) *GormStudentCertificateRepository {
	return &GormStudentCertificateRepository{
		newGormStore[certificate.StudentCertificate, models.StudentCertificateModel, *models.StudentCertificateModel](db, storeConfig{
			entity:       "student certificate",
			softDelete:   true,
			sortFields:   StudentCertificateSortFields,
			filterFields: map[string]bool{"school_id": true, "student_id": true},
		}),
	}
}

// Ensure GormStudentCertificateRepository implements StudentCertificateRepository
var _ certificate.StudentCertificateRepository = (*GormStudentCertificateRepository)(nil)
