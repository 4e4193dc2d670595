package setting

import (
	"github.com/schoolms/backend/internal/domain/shared"
)

// KeywordRepository defines the interface for keyword persistence
type KeywordRepository interface {
	shared.Repository[Keyword]
}

// BackgroundImageRepository defines the interface for background image
// persistence. Delete is a soft delete.
type BackgroundImageRepository interface {
	shared.SoftDeleteRepository[BackgroundImage]
}
