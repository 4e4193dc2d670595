package setting

import (
	"context"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/setting"
	"github.com/schoolms/backend/internal/domain/shared"
)

// KeywordService handles keyword operations
type KeywordService struct {
	records *common.Records[setting.Keyword, *setting.Keyword]
}

// NewKeywordService creates a new KeywordService
func NewKeywordService(repo setting.KeywordRepository, obs common.Observer) *KeywordService {
	return &KeywordService{
		records: common.NewRecords[setting.Keyword, *setting.Keyword]("keyword", repo, setting.NewKeyword, obs),
	}
}

// Create creates a keyword from an attribute bag
func (s *KeywordService) Create(ctx context.Context, attrs shared.Attributes) (*KeywordResponse, error) {
	k, err := s.records.Create(ctx, attrs)
	if err != nil {
		return nil, err
	}
	resp := ToKeywordResponse(k)
	return &resp, nil
}

// GetByID retrieves a keyword
func (s *KeywordService) GetByID(ctx context.Context, id uint64) (*KeywordResponse, error) {
	k, err := s.records.Get(ctx, id, common.ReadQuery{})
	if err != nil {
		return nil, err
	}
	resp := ToKeywordResponse(k)
	return &resp, nil
}

// List retrieves one page of keywords
func (s *KeywordService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[KeywordResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[KeywordResponse]{}, err
	}
	return common.PageOf(rows, total, filter, ToKeywordResponse), nil
}

// Update applies whitelisted attributes to a keyword
func (s *KeywordService) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*KeywordResponse, error) {
	k, err := s.records.Update(ctx, id, attrs)
	if err != nil {
		return nil, err
	}
	resp := ToKeywordResponse(k)
	return &resp, nil
}

// Delete removes a keyword
func (s *KeywordService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}

// BackgroundImageService handles background image operations. The stored
// file name only enters through Create and Replace, never through a bulk
// attribute bag.
type BackgroundImageService struct {
	records  *common.SoftRecords[setting.BackgroundImage, *setting.BackgroundImage]
	resolver shared.FilePathResolver
}

// NewBackgroundImageService creates a new BackgroundImageService
func NewBackgroundImageService(repo setting.BackgroundImageRepository, resolver shared.FilePathResolver, obs common.Observer) *BackgroundImageService {
	return &BackgroundImageService{
		records:  common.NewSoftRecords[setting.BackgroundImage, *setting.BackgroundImage]("background_image", repo, setting.NewBackgroundImage, obs),
		resolver: resolver,
	}
}

// Create records an uploaded image by its stored file name
func (s *BackgroundImageService) Create(ctx context.Context, req CreateBackgroundImageRequest) (*BackgroundImageResponse, error) {
	img, err := setting.NewBackgroundImage(nil)
	if err != nil {
		return nil, err
	}
	if err := img.SetFileName(req.BackgroundImage); err != nil {
		return nil, err
	}
	stored, err := s.records.Insert(ctx, img)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, stored)
}

// Replace points an existing image record at a new stored file
func (s *BackgroundImageService) Replace(ctx context.Context, id uint64, req CreateBackgroundImageRequest) (*BackgroundImageResponse, error) {
	img, err := s.records.Modify(ctx, id, func(b *setting.BackgroundImage) error {
		return b.SetFileName(req.BackgroundImage)
	})
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, img)
}

// GetByID retrieves a background image
func (s *BackgroundImageService) GetByID(ctx context.Context, id uint64, q common.ReadQuery) (*BackgroundImageResponse, error) {
	img, err := s.records.Get(ctx, id, q)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, img)
}

// List retrieves one page of background images
func (s *BackgroundImageService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[BackgroundImageResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[BackgroundImageResponse]{}, err
	}
	return common.PageOfE(rows, total, filter, func(b *setting.BackgroundImage) (BackgroundImageResponse, error) {
		return toBackgroundImageResponse(ctx, s.resolver, b)
	})
}

// Delete soft deletes a background image
func (s *BackgroundImageService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}

// Restore brings a soft-deleted background image back
func (s *BackgroundImageService) Restore(ctx context.Context, id uint64) (*BackgroundImageResponse, error) {
	img, err := s.records.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, img)
}

// ForceDelete removes a background image row
func (s *BackgroundImageService) ForceDelete(ctx context.Context, id uint64) error {
	return s.records.ForceDelete(ctx, id)
}

func (s *BackgroundImageService) respond(ctx context.Context, b *setting.BackgroundImage) (*BackgroundImageResponse, error) {
	resp, err := toBackgroundImageResponse(ctx, s.resolver, b)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
