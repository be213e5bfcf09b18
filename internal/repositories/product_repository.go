package repositories

import (
	"gorm.io/gorm"

	"soko/internal/models/db_models"
)

type ProductRepositoryInterface interface {
	CrudRepositoryInterface[db_models.Product]
}

type ProductRepository struct {
	*CrudRepository[db_models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	preloads := []Preload{
		{Relation: "Store", Columns: []string{"id", "name"}},
		{Relation: "Category", Columns: []string{"id", "name"}},
	}
	return &ProductRepository{
		CrudRepository: NewCrudRepository[db_models.Product](db, db_models.ProductQuery, preloads, nil),
	}
}
