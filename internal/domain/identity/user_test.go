package identity

import (
	"testing"

	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		u, err := NewUser(shared.Attributes{"school_id": 1, "name": "Ada", "email": "  Ada@School.ORG "})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), u.SchoolID)
		assert.Equal(t, "Ada", u.Name)
		assert.Equal(t, "ada@school.org", u.Email)
		assert.True(t, u.IsNew())
	})

	t.Run("ignores id in the attribute bag", func(t *testing.T) {
		u, err := NewUser(shared.Attributes{"id": 99, "name": "Ada"})

		require.NoError(t, err)
		assert.Zero(t, u.ID)
	})
}
