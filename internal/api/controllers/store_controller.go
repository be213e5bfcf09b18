package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"soko/internal/models/db_models"
	"soko/internal/models/request_models"
	"soko/internal/services"
	"soko/internal/storage"
	"soko/pkg/middleware"
	"soko/pkg/utils"
)

type StoreController struct {
	*ResourceController[db_models.Store]
	storeService services.StoreServiceInterface
	fileStore    storage.FileStoreInterface
}

func NewStoreController(storeService services.StoreServiceInterface, fileStore storage.FileStoreInterface) *StoreController {
	return &StoreController{
		ResourceController: NewResourceController[db_models.Store](storeService, db_models.StoreQuery),
		storeService:       storeService,
		fileStore:          fileStore,
	}
}

// BindCreate builds a store owned by the caller.
func (s *StoreController) BindCreate(c *gin.Context) (*db_models.Store, error) {
	var req request_models.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
	}

	return &db_models.Store{
		Name:        req.Name,
		Description: req.Description,
		Employees:   req.Employees,
		Telephone:   req.Telephone,
		Address:     datatypes.JSON(req.Address),
		Location:    datatypes.JSON(req.Location),
		OwnerID:     user.ID,
	}, nil
}

func (s *StoreController) BindUpdates(c *gin.Context) (map[string]any, error) {
	var req request_models.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return req.Changes(), nil
}

// GuardOwner lets only the store's owner or an admin continue on /:id writes.
func (s *StoreController) GuardOwner(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}
	if user.Role == db_models.RoleAdmin {
		c.Next()
		return
	}

	store, err := s.storeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if store.OwnerID != user.ID {
		fail(c, utils.NewAppError(http.StatusForbidden, "You do not have permission to perform this action"))
		return
	}
	c.Next()
}

func (s *StoreController) MyStore(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	store, err := s.storeService.GetByOwner(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondSuccess(c, store, "")
}

// UploadLogo stores the uploaded image and points the store's logo at it.
// GuardOwner has already vetted the caller.
func (s *StoreController) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		fail(c, utils.NewAppError(http.StatusBadRequest, "Please upload a logo image"))
		return
	}

	src, err := file.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".png"
	}
	name := fmt.Sprintf("logo-%s-%d%s", c.Param("id"), time.Now().Unix(), ext)

	path, err := s.fileStore.Save("stores", name, src)
	if err != nil {
		fail(c, err)
		return
	}

	store, err := s.storeService.SetLogo(c.Request.Context(), c.Param("id"), path)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondSuccess(c, store, "Store logo changed!")
}
