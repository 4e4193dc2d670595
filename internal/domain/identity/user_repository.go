package identity

import (
	"github.com/schoolms/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	shared.Repository[User]
}
