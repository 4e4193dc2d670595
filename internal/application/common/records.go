package common

import (
	"context"

	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/schoolms/backend/internal/infrastructure/telemetry"
)

// Entity is the pointer constraint of a bulk-assignable record type
type Entity[T any] interface {
	*T
	GetID() uint64
	Fill(attrs shared.Attributes) error
}

// Records implements the create/read/update/delete flow shared by every
// record service. Writes re-read the stored record so responses carry
// the default relations.
type Records[T any, P Entity[T]] struct {
	entity string
	repo   shared.Repository[T]
	build  func(shared.Attributes) (*T, error)
	obs    Observer
}

// NewRecords creates the service core for one entity. entity names spans
// and metrics, e.g. "library_card".
func NewRecords[T any, P Entity[T]](entity string, repo shared.Repository[T], build func(shared.Attributes) (*T, error), obs Observer) *Records[T, P] {
	return &Records[T, P]{entity: entity, repo: repo, build: build, obs: obs}
}

// Entity returns the entity name used for spans and metrics
func (r *Records[T, P]) Entity() string {
	return r.entity
}

// Create builds a record from whitelisted attributes and stores it
func (r *Records[T, P]) Create(ctx context.Context, attrs shared.Attributes) (*T, error) {
	record, err := r.build(attrs)
	if err != nil {
		return nil, err
	}
	return r.Insert(ctx, record)
}

// Insert stores a record the caller has already built
func (r *Records[T, P]) Insert(ctx context.Context, record *T) (*T, error) {
	var stored *T
	err := r.obs.Write(ctx, r.entity, telemetry.OpCreate, func(ctx context.Context) (uint64, error) {
		if err := r.repo.Save(ctx, record); err != nil {
			return 0, err
		}
		id := P(record).GetID()
		found, err := r.repo.FindByID(ctx, id)
		if err != nil {
			return id, err
		}
		stored = found
		return id, nil
	})
	return stored, err
}

// Get loads one record
func (r *Records[T, P]) Get(ctx context.Context, id uint64, q ReadQuery) (*T, error) {
	var found *T
	err := r.obs.Read(ctx, r.entity, "get", func(ctx context.Context) error {
		var err error
		found, err = r.repo.FindByID(ctx, id, q.Options()...)
		return err
	})
	return found, err
}

// List loads one page of records and the total matching count
func (r *Records[T, P]) List(ctx context.Context, q ListQuery) ([]T, int64, shared.Filter, error) {
	filter := q.Filter()
	var (
		rows  []T
		total int64
	)
	err := r.obs.Read(ctx, r.entity, "list", func(ctx context.Context) error {
		var err error
		rows, total, err = r.repo.FindAll(ctx, filter, q.Options()...)
		return err
	})
	return rows, total, filter, err
}

// Update applies whitelisted attributes to a live record
func (r *Records[T, P]) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*T, error) {
	return r.Modify(ctx, id, func(record *T) error {
		return P(record).Fill(attrs)
	})
}

// Modify loads a live record, applies change and stores the result
func (r *Records[T, P]) Modify(ctx context.Context, id uint64, change func(*T) error) (*T, error) {
	var stored *T
	err := r.obs.Write(ctx, r.entity, telemetry.OpUpdate, func(ctx context.Context) (uint64, error) {
		record, err := r.repo.FindByID(ctx, id)
		if err != nil {
			return id, err
		}
		if err := change(record); err != nil {
			return id, err
		}
		if err := r.repo.Save(ctx, record); err != nil {
			return id, err
		}
		stored, err = r.repo.FindByID(ctx, id)
		return id, err
	})
	return stored, err
}

// Delete soft deletes or removes the record, depending on the entity
func (r *Records[T, P]) Delete(ctx context.Context, id uint64) error {
	return r.obs.Write(ctx, r.entity, telemetry.OpDelete, func(ctx context.Context) (uint64, error) {
		return id, r.repo.Delete(ctx, id)
	})
}

// SoftRecords adds restore and force delete to Records
type SoftRecords[T any, P Entity[T]] struct {
	*Records[T, P]
	soft shared.SoftDeleteRepository[T]
}

// NewSoftRecords creates the service core for a soft-deletable entity
func NewSoftRecords[T any, P Entity[T]](entity string, repo shared.SoftDeleteRepository[T], build func(shared.Attributes) (*T, error), obs Observer) *SoftRecords[T, P] {
	return &SoftRecords[T, P]{
		Records: NewRecords[T, P](entity, repo, build, obs),
		soft:    repo,
	}
}

// Restore clears the deletion marker and returns the live record
func (r *SoftRecords[T, P]) Restore(ctx context.Context, id uint64) (*T, error) {
	var restored *T
	err := r.obs.Write(ctx, r.entity, telemetry.OpRestore, func(ctx context.Context) (uint64, error) {
		if err := r.soft.Restore(ctx, id); err != nil {
			return id, err
		}
		var err error
		restored, err = r.repo.FindByID(ctx, id)
		return id, err
	})
	return restored, err
}

// ForceDelete removes the row, trashed or not
func (r *SoftRecords[T, P]) ForceDelete(ctx context.Context, id uint64) error {
	return r.obs.Write(ctx, r.entity, telemetry.OpForceDelete, func(ctx context.Context) (uint64, error) {
		return id, r.soft.ForceDelete(ctx, id)
	})
}
