package certificate

import (
	"context"
	"testing"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/schoolms/backend/internal/infrastructure/config"
	"github.com/schoolms/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStudentCertificateService(t *testing.T) {
	ctx := context.Background()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate())
	svc := NewStudentCertificateService(persistence.NewGormStudentCertificateRepository(db.DB), common.NewObserver(zap.NewNop(), nil))

	cert, err := svc.Create(ctx, shared.Attributes{
		"school_id":       1,
		"student_id":      "55",
		"program_name":    "Robotics",
		"certificate_for": "",
		"deleted_at":      "2020-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(55), cert.StudentID)
	assert.Nil(t, cert.CertificateFor)
	assert.Nil(t, cert.DeletedAt)

	updated, err := svc.Update(ctx, cert.ID, shared.Attributes{"event_name": "Regional finals"})
	require.NoError(t, err)
	require.NotNil(t, updated.EventName)
	require.NotNil(t, updated.ProgramName)
	assert.Equal(t, "Robotics", *updated.ProgramName)

	require.NoError(t, svc.Delete(ctx, cert.ID))
	_, err = svc.GetByID(ctx, cert.ID, common.ReadQuery{})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	trashed, err := svc.GetByID(ctx, cert.ID, common.ReadQuery{Trashed: shared.IncludeTrashed})
	require.NoError(t, err)
	assert.NotNil(t, trashed.DeletedAt)

	_, err = svc.Update(ctx, cert.ID, shared.Attributes{"event_name": "x"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	restored, err := svc.Restore(ctx, cert.ID)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)

	require.NoError(t, svc.ForceDelete(ctx, cert.ID))
	page, err := svc.List(ctx, common.ListQuery{ReadQuery: common.ReadQuery{Trashed: shared.IncludeTrashed}})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}
