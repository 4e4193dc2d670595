package models

import (
	"time"

	"github.com/schoolms/backend/internal/domain/frontoffice"
)

// PostalRecordModel is the persistence model for the PostalRecord domain entity
type PostalRecordModel struct {
	BaseModel
	SchoolID        uint64     `gorm:"not null;index"`
	AcademicYearID  *uint64    `gorm:"index"`
	Type            string     `gorm:"type:varchar(20);not null"`
	ReferenceNumber *string    `gorm:"type:varchar(191)"`
	Confidential    bool       `gorm:"not null;default:false"`
	SenderTitle     *string    `gorm:"type:varchar(191)"`
	SenderAddress   *string    `gorm:"type:text"`
	ReceiverTitle   *string    `gorm:"type:varchar(191)"`
	ReceiverAddress *string    `gorm:"type:text"`
	PostalDate      *time.Time `gorm:"type:date"`
	Description     *string    `gorm:"type:text"`
	EntryBy         *uint64
	Attachment      string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (PostalRecordModel) TableName() string {
	return "postal_record"
}

// ToDomain converts the persistence model to a domain PostalRecord
func (m *PostalRecordModel) ToDomain() *frontoffice.PostalRecord {
	return &frontoffice.PostalRecord{
		BaseEntity:      m.BaseModel.ToDomain(),
		SchoolID:        m.SchoolID,
		AcademicYearID:  m.AcademicYearID,
		Type:            m.Type,
		ReferenceNumber: m.ReferenceNumber,
		Confidential:    m.Confidential,
		SenderTitle:     m.SenderTitle,
		SenderAddress:   m.SenderAddress,
		ReceiverTitle:   m.ReceiverTitle,
		ReceiverAddress: m.ReceiverAddress,
		PostalDate:      m.PostalDate,
		Description:     m.Description,
		EntryBy:         m.EntryBy,
		Attachment:      m.Attachment,
	}
}

// FromDomain populates the persistence model from a domain PostalRecord
func (m *PostalRecordModel) FromDomain(r *frontoffice.PostalRecord) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.SchoolID = r.SchoolID
	m.AcademicYearID = r.AcademicYearID
	m.Type = r.Type
	m.ReferenceNumber = r.ReferenceNumber
	m.Confidential = r.Confidential
	m.SenderTitle = r.SenderTitle
	m.SenderAddress = r.SenderAddress
	m.ReceiverTitle = r.ReceiverTitle
	m.ReceiverAddress = r.ReceiverAddress
	m.PostalDate = r.PostalDate
	m.Description = r.Description
	m.EntryBy = r.EntryBy
	m.Attachment = r.Attachment
}
