package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soko/pkg/query"
	"soko/pkg/utils"
)

// NameRef is a lightweight search hit used by the lookup endpoints.
type NameRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Preload names a relation to eager-load and the columns to pull for it.
type Preload struct {
	Relation string
	Columns  []string
}

type CrudRepositoryInterface[T any] interface {
	Insert(ctx context.Context, entity *T) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	FindMany(ctx context.Context, opts query.Options, scope map[string]any) ([]T, error)
	UpdateByID(ctx context.Context, id string, changes map[string]any) (*T, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context, opts query.Options, scope map[string]any) (int64, error)
	Sample(ctx context.Context, n int) ([]T, error)
	Search(ctx context.Context, q string, limit int) ([]NameRef, error)
}

type CrudRepository[T any] struct {
	db             *gorm.DB
	spec           query.Spec
	preloads       []Preload
	detailPreloads []Preload
	baseScope      map[string]any
}

func NewCrudRepository[T any](db *gorm.DB, spec query.Spec, preloads []Preload, baseScope map[string]any) *CrudRepository[T] {
	return &CrudRepository[T]{db: db, spec: spec, preloads: preloads, baseScope: baseScope}
}

// WithDetailPreloads adds relations that are joined only on single-record
// reads. List responses stay flat so collection endpoints never drag whole
// child tables along.
func (r *CrudRepository[T]) WithDetailPreloads(preloads ...Preload) *CrudRepository[T] {
	r.detailPreloads = preloads
	return r
}

func (r *CrudRepository[T]) Insert(ctx context.Context, entity *T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *CrudRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.InvalidIDError(id)
	}

	tx := r.db.WithContext(ctx)
	tx = r.applyPreloads(tx)
	tx = preloadAll(tx, r.detailPreloads)
	for column, value := range r.baseScope {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	var entity T
	if err := tx.First(&entity, "id = ?", parsed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *CrudRepository[T]) FindMany(ctx context.Context, opts query.Options, scope map[string]any) ([]T, error) {
	tx := r.applyOptions(r.db.WithContext(ctx), opts)
	for column, value := range r.mergeScope(scope) {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	var entities []T
	if err := tx.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *CrudRepository[T]) UpdateByID(ctx context.Context, id string, changes map[string]any) (*T, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.InvalidIDError(id)
	}

	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", parsed).Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *CrudRepository[T]) DeleteByID(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return utils.InvalidIDError(id)
	}

	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, "id = ?", parsed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *CrudRepository[T]) Count(ctx context.Context, opts query.Options, scope map[string]any) (int64, error) {
	var entity T
	tx := r.db.WithContext(ctx).Model(&entity)
	for _, cond := range opts.Conditions {
		tx = tx.Where(fmt.Sprintf("%s %s ?", cond.Column, cond.Operator), cond.Value)
	}
	for column, value := range r.mergeScope(scope) {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CrudRepository[T]) Sample(ctx context.Context, n int) ([]T, error) {
	tx := r.applyPreloads(r.db.WithContext(ctx))
	for column, value := range r.baseScope {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	var entities []T
	if err := tx.Order("random()").Limit(n).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *CrudRepository[T]) Search(ctx context.Context, q string, limit int) ([]NameRef, error) {
	if r.spec.SearchColumn == "" {
		return nil, nil
	}

	var entity T
	tx := r.db.WithContext(ctx).Model(&entity).
		Select(fmt.Sprintf("id, %s AS name", r.spec.SearchColumn)).
		Where(fmt.Sprintf("%s ILIKE ?", r.spec.SearchColumn), "%"+q+"%").
		Limit(limit)
	for column, value := range r.baseScope {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	var refs []NameRef
	if err := tx.Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

// applyOptions translates parsed query options into gorm clauses. Preloads are
// skipped when the caller selected specific columns, since the foreign keys the
// joins need may not be in the projection.
func (r *CrudRepository[T]) applyOptions(tx *gorm.DB, opts query.Options) *gorm.DB {
	for _, cond := range opts.Conditions {
		tx = tx.Where(fmt.Sprintf("%s %s ?", cond.Column, cond.Operator), cond.Value)
	}
	for _, order := range opts.Sort {
		tx = tx.Order(order)
	}
	if len(opts.Fields) > 0 {
		tx = tx.Select(opts.Fields)
	} else {
		tx = r.applyPreloads(tx)
	}
	return tx.Offset(opts.Offset()).Limit(opts.Limit)
}

func (r *CrudRepository[T]) applyPreloads(tx *gorm.DB) *gorm.DB {
	return preloadAll(tx, r.preloads)
}

func preloadAll(tx *gorm.DB, preloads []Preload) *gorm.DB {
	for _, preload := range preloads {
		if len(preload.Columns) > 0 {
			columns := preload.Columns
			tx = tx.Preload(preload.Relation, func(db *gorm.DB) *gorm.DB {
				return db.Select(columns)
			})
		} else {
			tx = tx.Preload(preload.Relation)
		}
	}
	return tx
}

func (r *CrudRepository[T]) mergeScope(scope map[string]any) map[string]any {
	if len(r.baseScope) == 0 {
		return scope
	}
	merged := make(map[string]any, len(r.baseScope)+len(scope))
	for column, value := range r.baseScope {
		merged[column] = value
	}
	for column, value := range scope {
		merged[column] = value
	}
	return merged
}
