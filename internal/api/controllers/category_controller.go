package controllers

import (
	"github.com/gin-gonic/gin"

	"soko/internal/models/db_models"
	"soko/internal/models/request_models"
	"soko/internal/services"
)

type CategoryController struct {
	*ResourceController[db_models.Category]
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		ResourceController: NewResourceController[db_models.Category](categoryService, db_models.CategoryQuery),
		categoryService:    categoryService,
	}
}

func (ct *CategoryController) BindCreate(c *gin.Context) (*db_models.Category, error) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &db_models.Category{
		Name:        req.Name,
		Description: req.Description,
	}, nil
}

func (ct *CategoryController) BindUpdates(c *gin.Context) (map[string]any, error) {
	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return req.Changes(), nil
}
