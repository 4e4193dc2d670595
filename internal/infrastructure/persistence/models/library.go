package models

import (
	"time"

	"github.com/schoolms/backend/internal/domain/library"
)

// LibraryCardModel is the persistence model for the LibraryCard domain entity
type LibraryCardModel struct {
	BaseModel
	SchoolID      uint64     `gorm:"not null;uniqueIndex:idx_library_card_school_no"`
	UserID        uint64     `gorm:"not null;index"`
	LibraryCardNo string     `gorm:"column:library_card_no;type:varchar(50);not null;uniqueIndex:idx_library_card_school_no"`
	BookLimit     int        `gorm:"not null;default:0"`
	Status        int        `gorm:"type:smallint;not null;default:1"`
	ExpiryDate    *time.Time `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (LibraryCardModel) TableName() string {
	return "library_card"
}

// ToDomain converts the persistence model to a domain LibraryCard
func (m *LibraryCardModel) ToDomain() *library.LibraryCard {
	return &library.LibraryCard{
		BaseEntity:    m.BaseModel.ToDomain(),
		SchoolID:      m.SchoolID,
		UserID:        m.UserID,
		LibraryCardNo: m.LibraryCardNo,
		BookLimit:     m.BookLimit,
		Status:        m.Status,
		ExpiryDate:    m.ExpiryDate,
	}
}

// FromDomain populates the persistence model from a domain LibraryCard
func (m *LibraryCardModel) FromDomain(c *library.LibraryCard) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.SchoolID = c.SchoolID
	m.UserID = c.UserID
	m.LibraryCardNo = c.LibraryCardNo
	m.BookLimit = c.BookLimit
	m.Status = c.Status
	m.ExpiryDate = c.ExpiryDate
}
