package stores_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soko/internal/repositories"
	"soko/internal/services"
)

var Module = fx.Provide(
	provideStoreRepo, provideStoreService)

func provideStoreRepo(db *gorm.DB) repositories.StoreRepositoryInterface {
	return repositories.NewStoreRepository(db)
}

func provideStoreService(storeRepo repositories.StoreRepositoryInterface) services.StoreServiceInterface {
	return services.NewStoreService(storeRepo)
}
