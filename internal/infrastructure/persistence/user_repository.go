package persistence

import (
	"github.com/schoolms/backend/internal/domain/identity"
	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	*gormStore[identity.User, models.UserModel, *models.UserModel]
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{newUserStore(db)}
}

func newUserStore(db *gorm.DB) *gormStore[identity.User, models.UserModel, *models.UserModel] {
	return newGormStore[identity.User, models.UserModel, *models.UserModel](db, storeConfig{
		entity:       "user",
		sortFields:   UserSortFields,
		filterFields: map[string]bool{"school_id": true, "email": true},
	})
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
