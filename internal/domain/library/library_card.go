// Package library contains the library membership card record.
package library

import (
	"time"

	"github.com/schoolms/backend/internal/domain/shared"
)

// CardStatus is the activation state of a library card
type CardStatus = int

const (
	CardStatusInactive CardStatus = 0
	CardStatusActive   CardStatus = 1
)

// LibraryCard grants a school member borrowing rights
type LibraryCard struct {
	shared.BaseEntity
	SchoolID      uint64
	UserID        uint64
	LibraryCardNo string
	BookLimit     int
	Status        CardStatus
	ExpiryDate    *time.Time
}

// LibraryCardFillable lists the mass-assignable library card attributes
var LibraryCardFillable = shared.Fillable{
	"school_id", "user_id", "library_card_no", "book_limit", "status", "expiry_date",
}

// NewLibraryCard builds a library card from an attribute bag
func NewLibraryCard(attrs shared.Attributes) (*LibraryCard, error) {
	c := &LibraryCard{BaseEntity: shared.NewBaseEntity()}
	if err := c.Fill(attrs); err != nil {
		return nil, err
	}
	return c, nil
}

// Fill bulk-assigns whitelisted attributes
func (c *LibraryCard) Fill(attrs shared.Attributes) error {
	next := *c
	if err := shared.Assign(attrs, LibraryCardFillable, shared.Fields{
		"school_id":       shared.Uint64Field(&next.SchoolID),
		"user_id":         shared.Uint64Field(&next.UserID),
		"library_card_no": shared.StringField(&next.LibraryCardNo),
		"book_limit":      shared.IntField(&next.BookLimit),
		"status":          shared.IntField(&next.Status),
		"expiry_date":     shared.DateField(&next.ExpiryDate),
	}); err != nil {
		return err
	}
	*c = next
	return nil
}

// IsExpired reports whether the card expiry date lies before now
func (c *LibraryCard) IsExpired(now time.Time) bool {
	if c.ExpiryDate == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return c.ExpiryDate.Before(today)
}
