package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/schoolms/backend/internal/domain/library"
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLibraryCardRepository implements LibraryCardRepository using GORM
type GormLibraryCardRepository struct {
	*gormStore[library.LibraryCard, models.LibraryCardModel, *models.LibraryCardModel]
}

// NewGormLibraryCardRepository creates a new GormLibraryCardRepository
func NewGormLibraryCardRepository(db *gorm.DB) *GormLibraryCardRepository {
	return &GormLibraryCardRepository{
		newGormStore[library.LibraryCard, models.LibraryCardModel, *models.LibraryCardModel](db, storeConfig{
			entity:     "library card",
			sortFields: LibraryCardSortFields,
			filterFields: map[string]bool{
				"school_id": true,
				"user_id":   true,
				"status":    true,
			},
		}),
	}
}

// FindByCardNo finds a library card by its number within a school
func (r *GormLibraryCardRepository) FindByCardNo(ctx context.Context, schoolID uint64, cardNo string) (*library.LibraryCard, error) {
	var model models.LibraryCardModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND library_card_no = ?", schoolID, cardNo).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError(shared.ErrNotFound.Code,
				fmt.Sprintf("library card %q not found", cardNo))
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Ensure GormLibraryCardRepository implements LibraryCardRepository
var _ library.LibraryCardRepository = (*GormLibraryCardRepository)(nil)
