package models

import (
	"github.com/schoolms/backend/internal/domain/certificate"
)

// StudentCertificateModel is the persistence model for the StudentCertificate entity
type StudentCertificateModel struct {
	SoftDeleteModel
	SchoolID       uint64  `gorm:"not null;index"`
	StudentID      uint64  `gorm:"not null;index"`
	ProgramName    *string `gorm:"type:varchar(191)"`
	EventName      *string `gorm:"type:varchar(191)"`
	CertificateFor *string `gorm:"type:varchar(191)"`
}

// TableName returns the table name for GORM
func (StudentCertificateModel) TableName() string {
	return "student_certificate"
}

// ToDomain converts the persistence model to a domain StudentCertificate
func (m *StudentCertificateModel) ToDomain() *certificate.StudentCertificate {
	return &certificate.StudentCertificate{
		BaseEntity:     m.BaseModel.ToDomain(),
		SoftDeletes:    m.ToDomainSoftDeletes(),
		SchoolID:       m.SchoolID,
		StudentID:      m.StudentID,
		ProgramName:    m.ProgramName,
		EventName:      m.EventName,
		CertificateFor: m.CertificateFor,
	}
}

// FromDomain populates the persistence model from a domain StudentCertificate
func (m *StudentCertificateModel) FromDomain(c *certificate.StudentCertificate) {
	m.FromDomainSoftDelete(c.BaseEntity, c.SoftDeletes)
	m.SchoolID = c.SchoolID
	m.StudentID = c.StudentID
	m.ProgramName = c.ProgramName
	m.EventName = c.EventName
	m.CertificateFor = c.CertificateFor
}
