package products_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soko/internal/repositories"
	"soko/internal/services"
)

var Module = fx.Provide(
	provideProductRepo, provideProductService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepositoryInterface {
	return repositories.NewProductRepository(db)
}

func provideProductService(productRepo repositories.ProductRepositoryInterface) services.ProductServiceInterface {
	return services.NewProductService(productRepo)
}
