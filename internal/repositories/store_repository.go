package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soko/internal/models/db_models"
)

type StoreRepositoryInterface interface {
	CrudRepositoryInterface[db_models.Store]
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.Store, error)
}

type StoreRepository struct {
	*CrudRepository[db_models.Store]
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	preloads := []Preload{
		{Relation: "Owner", Columns: []string{"id", "name"}},
	}
	return &StoreRepository{
		CrudRepository: NewCrudRepository[db_models.Store](db, db_models.StoreQuery, preloads, nil).
			WithDetailPreloads(Preload{Relation: "Products"}),
		db:             db,
	}
}

func (r *StoreRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.Store, error) {
	var store db_models.Store
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}
