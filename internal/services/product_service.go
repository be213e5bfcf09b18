package services

import (
	"context"
	"net/http"

	"github.com/lib/pq"

	"soko/internal/models/db_models"
	"soko/internal/repositories"
	"soko/pkg/utils"
)

type ProductServiceInterface interface {
	ResourceServiceInterface[db_models.Product]
	SetImages(ctx context.Context, id, cover string, images []string) (*db_models.Product, error)
}

type ProductService struct {
	*ResourceService[db_models.Product]
	productRepo repositories.ProductRepositoryInterface
}

func NewProductService(productRepo repositories.ProductRepositoryInterface) ProductServiceInterface {
	service := &ProductService{
		ResourceService: NewResourceService[db_models.Product](productRepo),
		productRepo:     productRepo,
	}
	service.beforeCreate = service.applyDiscountOnCreate
	service.beforeUpdate = service.applyDiscountOnUpdate
	return service
}

func (s *ProductService) applyDiscountOnCreate(ctx context.Context, product *db_models.Product) error {
	if product.PriceDiscount > 0 && product.PriceDiscount >= product.Price {
		return errDiscountTooHigh()
	}
	product.PercentageDiscount = db_models.PercentageDiscountFor(product.Price, product.PriceDiscount)
	return nil
}

// applyDiscountOnUpdate merges the pending changes over the stored record so
// the discount invariant holds whichever side of the pair moved.
func (s *ProductService) applyDiscountOnUpdate(ctx context.Context, id string, changes map[string]any) error {
	price, hasPrice := asFloat(changes["price"])
	discount, hasDiscount := asFloat(changes["price_discount"])
	if !hasPrice && !hasDiscount {
		return nil
	}

	current, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !hasPrice {
		price = current.Price
	}
	if !hasDiscount {
		discount = current.PriceDiscount
	}

	if discount > 0 && discount >= price {
		return errDiscountTooHigh()
	}
	changes["percentage_discount"] = db_models.PercentageDiscountFor(price, discount)
	return nil
}

func (s *ProductService) SetImages(ctx context.Context, id, cover string, images []string) (*db_models.Product, error) {
	changes := make(map[string]any)
	if cover != "" {
		changes["image_cover"] = cover
	}
	if len(images) > 0 {
		changes["images"] = pq.StringArray(images)
	}
	if len(changes) == 0 {
		return s.productRepo.FindByID(ctx, id)
	}
	return s.productRepo.UpdateByID(ctx, id, changes)
}

func errDiscountTooHigh() error {
	return utils.NewAppError(http.StatusBadRequest,
		"Discount price must be less than regular price")
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
