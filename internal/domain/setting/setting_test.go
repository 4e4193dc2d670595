package setting

import (
	"context"
	"testing"

	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyword(t *testing.T) {
	t.Run("normalizes name", func(t *testing.T) {
		// "e" followed by a combining acute accent
		k, err := NewKeyword(shared.Attributes{"name": "  cafe\u0301 "})

		require.NoError(t, err)
		assert.Equal(t, "caf\u00e9", k.Name)
	})

	t.Run("drops non-fillable keys", func(t *testing.T) {
		k, err := NewKeyword(shared.Attributes{"name": "admissions", "id": 5, "created_at": "2020-01-01"})

		require.NoError(t, err)
		assert.Zero(t, k.ID)
		assert.Equal(t, "admissions", k.Name)
	})
}

func TestBackgroundImage(t *testing.T) {
	t.Run("bulk assignment never sets the file name", func(t *testing.T) {
		b, err := NewBackgroundImage(shared.Attributes{"background_image": "bg.png", "file_name": "bg.png"})

		require.NoError(t, err)
		assert.Empty(t, b.FileName)
	})

	t.Run("SetFileName rejects blank names", func(t *testing.T) {
		b, _ := NewBackgroundImage(nil)
		err := b.SetFileName("  ")

		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		require.NoError(t, b.SetFileName("bg.png"))
		assert.Equal(t, "bg.png", b.AttachmentName())
	})

	t.Run("attachment path uses the stored name", func(t *testing.T) {
		b, _ := NewBackgroundImage(nil)
		resolver := shared.FilePathResolverFunc(func(_ context.Context, name string) (string, error) {
			return "/uploads/" + name, nil
		})

		path, err := shared.AttachmentPathOf(context.Background(), resolver, b)
		require.NoError(t, err)
		assert.Equal(t, shared.NoAttachment, path)

		require.NoError(t, b.SetFileName("bg.png"))
		path, err = shared.AttachmentPathOf(context.Background(), resolver, b)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/bg.png", path)
	})

	t.Run("soft delete marker", func(t *testing.T) {
		b, _ := NewBackgroundImage(nil)
		assert.False(t, b.Trashed())
	})
}
