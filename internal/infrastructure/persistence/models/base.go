package models

import (
	"time"

	"github.com/schoolms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PrimaryKey returns the row id; zero before the first insert
func (m *BaseModel) PrimaryKey() uint64 {
	return m.ID
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// SoftDeleteModel extends BaseModel with the deleted_at marker. GORM hides
// rows with a non-null marker unless the query is Unscoped.
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// ToDomainSoftDeletes converts the marker to the domain representation
func (m *SoftDeleteModel) ToDomainSoftDeletes() shared.SoftDeletes {
	if !m.DeletedAt.Valid {
		return shared.SoftDeletes{}
	}
	t := m.DeletedAt.Time
	return shared.SoftDeletes{DeletedAt: &t}
}

// FromDomainSoftDelete populates SoftDeleteModel from domain values
func (m *SoftDeleteModel) FromDomainSoftDelete(e shared.BaseEntity, s shared.SoftDeletes) {
	m.FromDomainBaseEntity(e)
	if s.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else {
		m.DeletedAt = gorm.DeletedAt{}
	}
}

// All returns every model in migration order
func All() []any {
	return []any{
		&UserModel{},
		&KeywordModel{},
		&BackgroundImageModel{},
		&LibraryCardModel{},
		&PayrollTemplateModel{},
		&TemplateItemModel{},
		&SalaryModel{},
		&SalaryItemModel{},
		&PayrollModel{},
		&PayslipItemModel{},
		&PostalRecordModel{},
		&StudentCertificateModel{},
	}
}
