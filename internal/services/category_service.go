package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"soko/internal/models/db_models"
	"soko/internal/repositories"
	"soko/pkg/utils"
)

type CategoryServiceInterface interface {
	ResourceServiceInterface[db_models.Category]
}

type CategoryService struct {
	*ResourceService[db_models.Category]
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	service := &CategoryService{
		ResourceService: NewResourceService[db_models.Category](categoryRepo),
	}
	service.beforeCreate = func(ctx context.Context, category *db_models.Category) error {
		category.Name = strings.ToLower(category.Name)
		return nil
	}
	service.beforeUpdate = func(ctx context.Context, id string, changes map[string]any) error {
		if name, ok := changes["name"].(string); ok {
			changes["name"] = strings.ToLower(name)
		}
		return nil
	}
	return service
}

// Create names the clashing value in the duplicate error, which the generic
// path cannot do.
func (s *CategoryService) Create(ctx context.Context, category *db_models.Category) (*db_models.Category, error) {
	created, err := s.ResourceService.Create(ctx, category)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, utils.DuplicateFieldError(category.Name)
	}
	return created, err
}
