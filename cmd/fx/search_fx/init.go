package search_fx

import (
	"go.uber.org/fx"

	"soko/internal/repositories"
	"soko/internal/services"
)

var Module = fx.Provide(
	provideSearchService)

func provideSearchService(
	productRepo repositories.ProductRepositoryInterface,
	storeRepo repositories.StoreRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) services.SearchServiceInterface {
	return services.NewSearchService(productRepo, storeRepo, categoryRepo)
}
