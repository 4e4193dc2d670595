package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/schoolms/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// domainModel is the pointer side of a persistence model M mapping to entity T
type domainModel[T any, M any] interface {
	*M
	ToDomain() *T
	FromDomain(*T)
	PrimaryKey() uint64
}

// storeConfig describes one table to gormStore
type storeConfig struct {
	// entity names the record in not-found messages
	entity string
	// softDelete enables Restore, ForceDelete and the trashed scopes
	softDelete bool
	sortFields map[string]bool
	// filterFields are the columns FindAll accepts in Filter.Filters
	filterFields map[string]bool
	// relations maps request names to GORM preload paths
	relations map[string][]string
	// defaults are preloaded on every read
	defaults []string
}

// gormStore implements the shared repository contract over one model type.
// Entity repositories embed it and add their relation lookups.
type gormStore[T any, M any, P domainModel[T, M]] struct {
	db  *gorm.DB
	cfg storeConfig
}

func newGormStore[T any, M any, P domainModel[T, M]](db *gorm.DB, cfg storeConfig) *gormStore[T, M, P] {
	return &gormStore[T, M, P]{db: db, cfg: cfg}
}

// FindByID loads one record, applying trashed scope and preloads from opts
func (s *gormStore[T, M, P]) FindByID(ctx context.Context, id uint64, opts ...shared.QueryOption) (*T, error) {
	o := shared.ApplyQueryOptions(opts...)
	query, err := s.scoped(ctx, o)
	if err != nil {
		return nil, err
	}
	query, err = s.preload(query, o)
	if err != nil {
		return nil, err
	}

	var model M
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(s.cfg.entity, id)
		}
		return nil, translateError(err)
	}
	return P(&model).ToDomain(), nil
}

// FindAll lists records matching filter and returns the unpaginated total
func (s *gormStore[T, M, P]) FindAll(ctx context.Context, filter shared.Filter, opts ...shared.QueryOption) ([]T, int64, error) {
	o := shared.ApplyQueryOptions(opts...)
	query, err := s.scoped(ctx, o)
	if err != nil {
		return nil, 0, err
	}
	query = s.applyFilterWithoutPagination(query, filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	query, err = s.preload(s.applyFilter(query, filter), o)
	if err != nil {
		return nil, 0, err
	}

	var rows []M
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, translateError(err)
	}
	return toDomainSlice[T, M, P](rows), total, nil
}

// Save inserts the entity when it has no id, otherwise updates every column.
// Relations carried by the entity are not written. On success the entity is
// replaced by its stored form, without relations.
func (s *gormStore[T, M, P]) Save(ctx context.Context, entity *T) error {
	var model M
	P(&model).FromDomain(entity)

	db := s.db.WithContext(ctx)
	if P(&model).PrimaryKey() == 0 {
		if err := db.Omit(clause.Associations).Create(P(&model)).Error; err != nil {
			return translateError(err)
		}
	} else {
		result := db.Model(P(&model)).
			Select("*").
			Omit(clause.Associations, "created_at", "deleted_at").
			Updates(P(&model))
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError(s.cfg.entity, P(&model).PrimaryKey())
		}
	}

	*entity = *P(&model).ToDomain()
	return nil
}

// Delete soft deletes when the table carries deleted_at, otherwise removes the row
func (s *gormStore[T, M, P]) Delete(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(s.cfg.entity, id)
	}
	return nil
}

// Restore clears the deletion marker. Restoring a live record is a no-op.
func (s *gormStore[T, M, P]) Restore(ctx context.Context, id uint64) error {
	if !s.cfg.softDelete {
		return s.notSoftDeletable()
	}
	result := s.db.WithContext(ctx).Unscoped().
		Model(new(M)).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(s.cfg.entity, id)
	}
	return nil
}

// ForceDelete removes the row whether or not it is trashed
func (s *gormStore[T, M, P]) ForceDelete(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).Unscoped().Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(s.cfg.entity, id)
	}
	return nil
}

// findOptional resolves a belongs-to foreign key. An unset key or a key
// matching no visible row yields nil without error.
func (s *gormStore[T, M, P]) findOptional(ctx context.Context, fk *uint64, opts ...shared.QueryOption) (*T, error) {
	if fk == nil || *fk == 0 {
		return nil, nil
	}
	entity, err := s.FindByID(ctx, *fk, opts...)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return entity, err
}

// findByColumn lists the visible rows whose column equals value, oldest first
func (s *gormStore[T, M, P]) findByColumn(ctx context.Context, column string, value any) ([]T, error) {
	query, err := s.preload(s.db.WithContext(ctx).Model(new(M)), shared.QueryOptions{})
	if err != nil {
		return nil, err
	}

	var rows []M
	if err := query.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainSlice[T, M, P](rows), nil
}

func (s *gormStore[T, M, P]) scoped(ctx context.Context, o shared.QueryOptions) (*gorm.DB, error) {
	query := s.db.WithContext(ctx).Model(new(M))
	switch o.Trashed {
	case shared.ExcludeTrashed:
		return query, nil
	case shared.IncludeTrashed:
		if !s.cfg.softDelete {
			return query, nil
		}
		return query.Unscoped(), nil
	case shared.OnlyTrashedRows:
		if !s.cfg.softDelete {
			return nil, s.notSoftDeletable()
		}
		return query.Unscoped().Where("deleted_at IS NOT NULL"), nil
	default:
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown trashed scope")
	}
}

// preload applies default relations followed by the ones requested in o
func (s *gormStore[T, M, P]) preload(query *gorm.DB, o shared.QueryOptions) (*gorm.DB, error) {
	seen := make(map[string]bool)
	apply := func(path string) {
		if !seen[path] {
			seen[path] = true
			query = query.Preload(path)
		}
	}

	for _, path := range s.cfg.defaults {
		apply(path)
	}
	for _, name := range o.With {
		paths, ok := s.cfg.relations[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code,
				fmt.Sprintf("unknown relation %q for %s", name, s.cfg.entity))
		}
		for _, path := range paths {
			apply(path)
		}
	}
	return query, nil
}

func (s *gormStore[T, M, P]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply pagination
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	// Apply ordering
	orderBy := ValidateSortField(filter.OrderBy, s.cfg.sortFields, "id")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (s *gormStore[T, M, P]) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.SchoolID != nil && s.cfg.filterFields["school_id"] {
		query = query.Where("school_id = ?", *filter.SchoolID)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		if !s.cfg.filterFields[key] {
			continue
		}
		query = query.Where(clause.Eq{Column: clause.Column{Name: key}, Value: value})
	}

	return query
}

func (s *gormStore[T, M, P]) notSoftDeletable() error {
	return shared.NewDomainError(shared.ErrInvalidInput.Code,
		fmt.Sprintf("%s records are not soft-deletable", s.cfg.entity))
}

func toDomainSlice[T any, M any, P domainModel[T, M]](rows []M) []T {
	out := make([]T, len(rows))
	for i := range rows {
		out[i] = *P(&rows[i]).ToDomain()
	}
	return out
}

// translateError maps GORM's translated driver errors onto domain errors
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", shared.ErrConstraintViolation, err)
	default:
		return err
	}
}
