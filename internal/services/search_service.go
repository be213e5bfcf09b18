package services

import (
	"context"

	"github.com/google/uuid"

	"soko/internal/repositories"
)

const searchLimitPerKind = 20

// SearchHit is one cross-entity lookup result.
type SearchHit struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Kind string    `json:"kind"`
}

type SearchServiceInterface interface {
	SearchAll(ctx context.Context, q string) ([]SearchHit, error)
}

type SearchService struct {
	productRepo  repositories.ProductRepositoryInterface
	storeRepo    repositories.StoreRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewSearchService(
	productRepo repositories.ProductRepositoryInterface,
	storeRepo repositories.StoreRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) SearchServiceInterface {
	return &SearchService{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
	}
}

// SearchAll runs a name lookup over products, stores and categories.
func (s *SearchService) SearchAll(ctx context.Context, q string) ([]SearchHit, error) {
	hits := make([]SearchHit, 0)

	kinds := []struct {
		kind   string
		search func(ctx context.Context, q string, limit int) ([]repositories.NameRef, error)
	}{
		{"product", s.productRepo.Search},
		{"store", s.storeRepo.Search},
		{"category", s.categoryRepo.Search},
	}
	for _, k := range kinds {
		refs, err := k.search(ctx, q, searchLimitPerKind)
		if err != nil {
			return nil, err
		}
		for _, ref := range refs {
			hits = append(hits, SearchHit{ID: ref.ID, Name: ref.Name, Kind: k.kind})
		}
	}
	return hits, nil
}
