package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"soko/internal/models/db_models"
	"soko/internal/repositories"
	"soko/pkg/utils"
)

type StoreServiceInterface interface {
	ResourceServiceInterface[db_models.Store]
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.Store, error)
	SetLogo(ctx context.Context, id, path string) (*db_models.Store, error)
}

type StoreService struct {
	*ResourceService[db_models.Store]
	storeRepo repositories.StoreRepositoryInterface
}

func NewStoreService(storeRepo repositories.StoreRepositoryInterface) StoreServiceInterface {
	service := &StoreService{
		ResourceService: NewResourceService[db_models.Store](storeRepo),
		storeRepo:       storeRepo,
	}
	service.beforeCreate = service.checkSingleStore
	return service
}

func (s *StoreService) checkSingleStore(ctx context.Context, store *db_models.Store) error {
	existing, err := s.storeRepo.FindByOwner(ctx, store.OwnerID)
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.NewAppError(http.StatusBadRequest,
			"You already have a store. A merchant can only own one store.")
	}
	return nil
}

func (s *StoreService) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.Store, error) {
	store, err := s.storeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, utils.ErrNotFound
	}
	return store, nil
}

func (s *StoreService) SetLogo(ctx context.Context, id, path string) (*db_models.Store, error) {
	return s.storeRepo.UpdateByID(ctx, id, map[string]any{"logo": path})
}
