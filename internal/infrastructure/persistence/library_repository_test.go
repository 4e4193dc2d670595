package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/schoolms/backend/internal/domain/library"
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormLibraryCardRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLibraryCardRepository(newSQLiteDB(t))

	newCard := func(t *testing.T, schoolID uint64, no string) *library.LibraryCard {
		t.Helper()
		c, err := library.NewLibraryCard(shared.Attributes{
			"school_id":       schoolID,
			"user_id":         "12",
			"library_card_no": no,
			"book_limit":      "3",
			"status":          1,
			"expiry_date":     "2027-06-30",
		})
		require.NoError(t, err)
		return c
	}

	t.Run("round trips typed columns", func(t *testing.T) {
		c := newCard(t, 1, "LC-001")
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(12), found.UserID)
		assert.Equal(t, 3, found.BookLimit)
		assert.Equal(t, library.CardStatusActive, found.Status)
		require.NotNil(t, found.ExpiryDate)
		assert.Equal(t, "2027-06-30", found.ExpiryDate.Format(time.DateOnly))
	})

	t.Run("duplicate card number in a school violates a constraint", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newCard(t, 2, "LC-100")))

		err := repo.Save(ctx, newCard(t, 2, "LC-100"))
		assert.ErrorIs(t, err, shared.ErrConstraintViolation)

		assert.NoError(t, repo.Save(ctx, newCard(t, 3, "LC-100")))
	})

	t.Run("FindByCardNo", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newCard(t, 4, "LC-200")))

		found, err := repo.FindByCardNo(ctx, 4, "LC-200")
		require.NoError(t, err)
		assert.Equal(t, uint64(4), found.SchoolID)

		_, err = repo.FindByCardNo(ctx, 5, "LC-200")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindAll scopes by school", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newCard(t, 9, "LC-901")))
		require.NoError(t, repo.Save(ctx, newCard(t, 9, "LC-902")))

		filter := shared.DefaultFilter()
		filter.SchoolID = ptr(uint64(9))
		cards, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, c := range cards {
			assert.Equal(t, uint64(9), c.SchoolID)
		}
	})

	t.Run("Delete is a hard delete", func(t *testing.T) {
		c := newCard(t, 10, "LC-1000")
		require.NoError(t, repo.Save(ctx, c))
		require.NoError(t, repo.Delete(ctx, c.ID))

		_, err := repo.FindByID(ctx, c.ID, shared.WithTrashed())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
