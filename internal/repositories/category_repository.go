package repositories

import (
	"gorm.io/gorm"

	"soko/internal/models/db_models"
)

type CategoryRepositoryInterface interface {
	CrudRepositoryInterface[db_models.Category]
}

type CategoryRepository struct {
	*CrudRepository[db_models.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		CrudRepository: NewCrudRepository[db_models.Category](db, db_models.CategoryQuery, nil, nil).
			WithDetailPreloads(Preload{Relation: "Products"}),
	}
}
