package library

import (
	"time"

	"github.com/schoolms/backend/internal/domain/library"
)

// LibraryCardResponse represents a library card in API responses
type LibraryCardResponse struct {
	ID            uint64    `json:"id"`
	SchoolID      uint64    `json:"school_id"`
	UserID        uint64    `json:"user_id"`
	LibraryCardNo string    `json:"library_card_no"`
	BookLimit     int       `json:"book_limit"`
	Status        int       `json:"status"`
	ExpiryDate    *string   `json:"expiry_date"`
	Expired       bool      `json:"expired"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToLibraryCardResponse converts a domain library card to a response
func ToLibraryCardResponse(c *library.LibraryCard) LibraryCardResponse {
	resp := LibraryCardResponse{
		ID:            c.ID,
		SchoolID:      c.SchoolID,
		UserID:        c.UserID,
		LibraryCardNo: c.LibraryCardNo,
		BookLimit:     c.BookLimit,
		Status:        c.Status,
		Expired:       c.IsExpired(time.Now()),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.ExpiryDate != nil {
		d := c.ExpiryDate.Format(time.DateOnly)
		resp.ExpiryDate = &d
	}
	return resp
}
