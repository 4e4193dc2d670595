package frontoffice

import (
	"context"
	"strings"
	"testing"

	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostalRecord(t *testing.T) {
	t.Run("assigns fillable attributes", func(t *testing.T) {
		r, err := NewPostalRecord(shared.Attributes{
			"school_id":        1,
			"academic_year_id": 2,
			"type":             PostalTypeReceive,
			"reference_number": "REF-7",
			"confidential":     1,
			"sender_title":     "District Office",
			"postal_date":      "2026-02-14",
			"entry_by":         9,
		})

		require.NoError(t, err)
		assert.Equal(t, PostalTypeReceive, r.Type)
		assert.True(t, r.Confidential)
		assert.Equal(t, "REF-7", *r.ReferenceNumber)
		assert.Equal(t, 14, r.PostalDate.Day())
		assert.Nil(t, r.ReceiverTitle)
	})

	t.Run("attachment is not mass assignable", func(t *testing.T) {
		r, err := NewPostalRecord(shared.Attributes{"attachment": "evil.php"})

		require.NoError(t, err)
		assert.Empty(t, r.Attachment)
	})
}

func TestPostalRecordAttachmentPath(t *testing.T) {
	resolver := shared.FilePathResolverFunc(func(_ context.Context, name string) (string, error) {
		return strings.Join([]string{"https://files.example.com", "uploads", name}, "/"), nil
	})
	r, _ := NewPostalRecord(nil)

	path, err := shared.AttachmentPathOf(context.Background(), resolver, r)
	require.NoError(t, err)
	assert.Equal(t, shared.NoAttachment, path)

	r.SetAttachment("scan 01.pdf")
	path, err = shared.AttachmentPathOf(context.Background(), resolver, r)
	require.NoError(t, err)
	assert.Contains(t, path, "scan 01.pdf")
}
