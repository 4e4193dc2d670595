package shared

import (
	"time"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uint64
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
	IsNew() bool
}

// BaseEntity provides common fields for all entities.
// ID is zero until the record has been persisted.
type BaseEntity struct {
	ID        uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uint64 {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// IsNew reports whether the entity has not been persisted yet
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}

// NewBaseEntity creates a new, not yet persisted, base entity
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SoftDeletes marks an entity as logically deletable. A non-nil DeletedAt
// means the row is retained in storage but hidden from default queries.
type SoftDeletes struct {
	DeletedAt *time.Time
}

// Trashed reports whether the record carries a deletion marker
func (s *SoftDeletes) Trashed() bool {
	return s.DeletedAt != nil
}

// GetDeletedAt returns the deletion marker
func (s *SoftDeletes) GetDeletedAt() *time.Time {
	return s.DeletedAt
}

// SoftDeletable is implemented by entities embedding SoftDeletes
type SoftDeletable interface {
	Trashed() bool
	GetDeletedAt() *time.Time
}
