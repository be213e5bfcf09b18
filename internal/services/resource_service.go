package services

import (
	"context"

	"soko/internal/repositories"
	"soko/pkg/query"
)

type ResourceServiceInterface[T any] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, opts query.Options, scope map[string]any) ([]T, error)
	Update(ctx context.Context, id string, changes map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, opts query.Options, scope map[string]any) (int64, error)
	Sample(ctx context.Context, n int) ([]T, error)
	Search(ctx context.Context, q string, limit int) ([]repositories.NameRef, error)
}

// ResourceService covers the shared CRUD path. Entity-specific rules plug in
// through the beforeCreate and beforeUpdate hooks.
type ResourceService[T any] struct {
	repo         repositories.CrudRepositoryInterface[T]
	beforeCreate func(ctx context.Context, entity *T) error
	beforeUpdate func(ctx context.Context, id string, changes map[string]any) error
}

func NewResourceService[T any](repo repositories.CrudRepositoryInterface[T]) *ResourceService[T] {
	return &ResourceService[T]{repo: repo}
}

func (s *ResourceService[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if s.beforeCreate != nil {
		if err := s.beforeCreate(ctx, entity); err != nil {
			return nil, err
		}
	}
	return s.repo.Insert(ctx, entity)
}

func (s *ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResourceService[T]) List(ctx context.Context, opts query.Options, scope map[string]any) ([]T, error) {
	return s.repo.FindMany(ctx, opts, scope)
}

func (s *ResourceService[T]) Update(ctx context.Context, id string, changes map[string]any) (*T, error) {
	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(ctx, id, changes); err != nil {
			return nil, err
		}
	}
	return s.repo.UpdateByID(ctx, id, changes)
}

func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *ResourceService[T]) Count(ctx context.Context, opts query.Options, scope map[string]any) (int64, error) {
	return s.repo.Count(ctx, opts, scope)
}

func (s *ResourceService[T]) Sample(ctx context.Context, n int) ([]T, error) {
	return s.repo.Sample(ctx, n)
}

func (s *ResourceService[T]) Search(ctx context.Context, q string, limit int) ([]repositories.NameRef, error) {
	return s.repo.Search(ctx, q, limit)
}
