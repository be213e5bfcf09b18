package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"soko/internal/models/db_models"
	"soko/internal/models/request_models"
	"soko/internal/services"
	"soko/internal/storage"
	"soko/pkg/middleware"
	"soko/pkg/utils"
)

type ProductController struct {
	*ResourceController[db_models.Product]
	productService services.ProductServiceInterface
	storeService   services.StoreServiceInterface
	fileStore      storage.FileStoreInterface
}

func NewProductController(
	productService services.ProductServiceInterface,
	storeService services.StoreServiceInterface,
	fileStore storage.FileStoreInterface,
) *ProductController {
	return &ProductController{
		ResourceController: NewResourceController[db_models.Product](productService, db_models.ProductQuery),
		productService:     productService,
		storeService:       storeService,
		fileStore:          fileStore,
	}
}

// StoreScope narrows the nested listing to one store.
func (p *ProductController) StoreScope(c *gin.Context) map[string]any {
	if id := c.Param("id"); id != "" {
		return map[string]any{"store_id": id}
	}
	return nil
}

// BindCreate resolves the owning store from the body, the nested route param
// or the caller's own store, in that order. A merchant can only stock their
// own store, admins can stock any.
func (p *ProductController) BindCreate(c *gin.Context) (*db_models.Product, error) {
	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
	}

	storeID, err := p.resolveStore(c, req.Store, user)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		return nil, utils.InvalidIDError(req.Category)
	}

	return &db_models.Product{
		Name:          req.Name,
		Brand:         req.Brand,
		Price:         req.Price,
		Currency:      req.Currency,
		PriceDiscount: req.PriceDiscount,
		ImageCover:    req.ImageCover,
		Description:   req.Description,
		CategoryID:    categoryID,
		StoreID:       storeID,
	}, nil
}

func (p *ProductController) BindUpdates(c *gin.Context) (map[string]any, error) {
	var req request_models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return req.Changes(), nil
}

// GuardOwner lets only the owner of the product's store or an admin continue
// on /:id writes.
func (p *ProductController) GuardOwner(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}
	if user.Role == db_models.RoleAdmin {
		c.Next()
		return
	}

	product, err := p.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	store, err := p.storeService.Get(c.Request.Context(), product.StoreID.String())
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

// UploadImages replaces the cover and gallery images. GuardOwner has already
// vetted the caller.
func (p *ProductController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, utils.NewAppError(http.StatusBadRequest, "Please upload at least one image"))
		return
	}

	id := c.Param("id")
	stamp := time.Now().Unix()

	var cover string
	if files := form.File["imageCover"]; len(files) > 0 {
		name := fmt.Sprintf("product-%s-%d-cover%s", id, stamp, imageExt(files[0].Filename))
		cover, err = p.saveUpload(files[0], name)
		if err != nil {
			fail(c, err)
			return
		}
	}

	var images []string
	for i, file := range form.File["images"] {
		name := fmt.Sprintf("product-%s-%d-%d%s", id, stamp, i+1, imageExt(file.Filename))
		path, err := p.saveUpload(file, name)
		if err != nil {
			fail(c, err)
			return
		}
		images = append(images, path)
	}

	if cover == "" && len(images) == 0 {
		fail(c, utils.NewAppError(http.StatusBadRequest, "Please upload at least one image"))
		return
	}

	product, err := p.productService.SetImages(c.Request.Context(), id, cover, images)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondSuccess(c, product, "")
}

func (p *ProductController) resolveStore(c *gin.Context, fromBody string, user *db_models.User) (uuid.UUID, error) {
	if fromBody != "" {
		storeID, err := uuid.Parse(fromBody)
		if err != nil {
			return uuid.Nil, utils.InvalidIDError(fromBody)
		}
		return storeID, p.checkStoreOwner(c, storeID, user)
	}

	if param := c.Param("id"); param != "" {
		storeID, err := uuid.Parse(param)
		if err != nil {
			return uuid.Nil, utils.InvalidIDError(param)
		}
		return storeID, p.checkStoreOwner(c, storeID, user)
	}

	store, err := p.storeService.GetByOwner(c.Request.Context(), user.ID)
	if err != nil {
		return uuid.Nil, err
	}
	return store.ID, nil
}

func (p *ProductController) checkStoreOwner(c *gin.Context, storeID uuid.UUID, user *db_models.User) error {
	if user.Role == db_models.RoleAdmin {
		return nil
	}
	store, err := p.storeService.Get(c.Request.Context(), storeID.String())
	if err != nil {
		return err
	}
	if store.OwnerID != user.ID {
		return utils.NewAppError(http.StatusForbidden, "You do not have permission to perform this action")
	}
	return nil
}

func (p *ProductController) saveUpload(file *multipart.FileHeader, name string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return p.fileStore.Save("products", name, src)
}

func imageExt(filename string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return ext
	}
	return ".jpeg"
}
