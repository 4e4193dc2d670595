package library

import (
	"context"

	"github.com/schoolms/backend/internal/domain/shared"
)

// LibraryCardRepository defines the interface for library card persistence
type LibraryCardRepository interface {
	shared.Repository[LibraryCard]

	// FindByCardNo finds a card by its number within a school
	FindByCardNo(ctx context.Context, schoolID uint64, cardNo string) (*LibraryCard, error)
}
