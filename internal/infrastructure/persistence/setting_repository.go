package persistence

import (
	"github.com/schoolms/backend/internal/domain/setting"
	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormKeywordRepository implements KeywordRepository using GORM
type GormKeywordRepository struct {
	*gormStore[setting.Keyword, models.KeywordModel, *models.KeywordModel]
}

// NewGormKeywordRepository creates a new GormKeywordRepository
func NewGormKeywordRepository(db *gorm.DB) *GormKeywordRepository {
	return &GormKeywordRepository{
		newGormStore[setting.Keyword, models.KeywordModel, *models.KeywordModel](db, storeConfig{
			entity:       "keyword",
			sortFields:   KeywordSortFields,
			filterFields: map[string]bool{"name": true},
		}),
	}
}

// GormBackgroundImageRepository implements BackgroundImageRepository using GORM
type GormBackgroundImageRepository struct {
	*gormStore[setting.BackgroundImage, models.BackgroundImageModel, *models.BackgroundImageModel]
}

// NewGormBackgroundImageRepository creates a new GormBackgroundImageRepository
func NewGormBackgroundImageRepository(db *gorm.DB) *GormBackgroundImageRepository {
	return &GormBackgroundImageRepository{
		newGormStore[setting.BackgroundImage, models.BackgroundImageModel, *models.BackgroundImageModel](db, storeConfig{
			entity:     "background image",
			softDelete: true,
			sortFields: BackgroundImageSortFields,
		}),
	}
}

var (
	_ setting.KeywordRepository         = (*GormKeywordRepository)(nil)
	_ setting.BackgroundImageRepository = (*GormBackgroundImageRepository)(nil)
)
