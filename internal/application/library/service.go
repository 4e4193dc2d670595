package library

import (
	"context"
	"strings"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/library"
	"github.com/schoolms/backend/internal/domain/shared"
)

// LibraryCardService handles library card operations
type LibraryCardService struct {
	repo    library.LibraryCardRepository
	records *common.Records[library.LibraryCard, *library.LibraryCard]
	obs     common.Observer
}

// NewLibraryCardService creates a new LibraryCardService
func NewLibraryCardService(repo library.LibraryCardRepository, obs common.Observer) *LibraryCardService {
	return &LibraryCardService{
		repo:    repo,
		records: common.NewRecords[library.LibraryCard, *library.LibraryCard]("library_card", repo, library.NewLibraryCard, obs),
		obs:     obs,
	}
}

// Create issues a library card. A duplicate card number within the same
// school fails with a constraint violation.
func (s *LibraryCardService) Create(ctx context.Context, attrs shared.Attributes) (*LibraryCardResponse, error) {
	c, err := s.records.Create(ctx, attrs)
	if err != nil {
		return nil, err
	}
	resp := ToLibraryCardResponse(c)
	return &resp, nil
}

// GetByID retrieves a library card
func (s *LibraryCardService) GetByID(ctx context.Context, id uint64) (*LibraryCardResponse, error) {
	c, err := s.records.Get(ctx, id, common.ReadQuery{})
	if err != nil {
		return nil, err
	}
	resp := ToLibraryCardResponse(c)
	return &resp, nil
}

// GetByCardNo retrieves a library card by its number within a school
func (s *LibraryCardService) GetByCardNo(ctx context.Context, schoolID uint64, cardNo string) (*LibraryCardResponse, error) {
	cardNo = strings.TrimSpace(cardNo)
	if cardNo == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "library card number cannot be empty")
	}
	var found *library.LibraryCard
	err := s.obs.Read(ctx, s.records.Entity(), "get_by_card_no", func(ctx context.Context) error {
		var err error
		found, err = s.repo.FindByCardNo(ctx, schoolID, cardNo)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToLibraryCardResponse(found)
	return &resp, nil
}

// List retrieves one page of library cards
func (s *LibraryCardService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[LibraryCardResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[LibraryCardResponse]{}, err
	}
	return common.PageOf(rows, total, filter, ToLibraryCardResponse), nil
}

// Update applies whitelisted attributes to a library card
func (s *LibraryCardService) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*LibraryCardResponse, error) {
	c, err := s.records.Update(ctx, id, attrs)
	if err != nil {
		return nil, err
	}
	resp := ToLibraryCardResponse(c)
	return &resp, nil
}

// Delete removes a library card
func (s *LibraryCardService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}
