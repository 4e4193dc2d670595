package certificate

import (
	"testing"

	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudentCertificate(t *testing.T) {
	c, err := NewStudentCertificate(shared.Attributes{
		"school_id":       1,
		"student_id":      "55",
		"program_name":    "Science Fair",
		"certificate_for": "First place",
		"attachment":      "ignored.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(55), c.StudentID)
	assert.Equal(t, "Science Fair", *c.ProgramName)
	assert.Nil(t, c.EventName)
	assert.False(t, c.Trashed())
}

func TestStudentCertificateFillIsAtomic(t *testing.T) {
	c, err := NewStudentCertificate(shared.Attributes{"student_id": 1})
	require.NoError(t, err)

	err = c.Fill(shared.Attributes{"student_id": "x", "event_name": "Sports day"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	assert.Equal(t, uint64(1), c.StudentID)
	assert.Nil(t, c.EventName)
}
