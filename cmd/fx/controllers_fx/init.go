package controllers_fx

import (
	"go.uber.org/fx"

	"soko/internal/api/controllers"
	"soko/internal/services"
	"soko/internal/storage"
	"soko/pkg/config"
)

var Module = fx.Provide(
	provideAuthController,
	provideUserController,
	provideStoreController,
	provideProductController,
	provideCategoryController,
	provideSubscriptionController,
	provideSearchController,
)

func provideAuthController(authService services.AuthServiceInterface, cfg *config.Config) *controllers.AuthController {
	return controllers.NewAuthController(authService, cfg.JWTExpires)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}

func provideStoreController(storeService services.StoreServiceInterface, fileStore storage.FileStoreInterface) *controllers.StoreController {
	return controllers.NewStoreController(storeService, fileStore)
}

func provideProductController(
	productService services.ProductServiceInterface,
	storeService services.StoreServiceInterface,
	fileStore storage.FileStoreInterface,
) *controllers.ProductController {
	return controllers.NewProductController(productService, storeService, fileStore)
}

func provideCategoryController(categoryService services.CategoryServiceInterface) *controllers.CategoryController {
	return controllers.NewCategoryController(categoryService)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}

func provideSearchController(searchService services.SearchServiceInterface) *controllers.SearchController {
	return controllers.NewSearchController(searchService)
}
