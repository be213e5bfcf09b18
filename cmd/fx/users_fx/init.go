package users_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soko/internal/repositories"
	"soko/internal/services"
	"soko/pkg/middleware"
)

var Module = fx.Provide(
	provideUserRepo, provideUserService, providePrincipalResolver)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepositoryInterface) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}

func providePrincipalResolver(userRepo repositories.UserRepositoryInterface) middleware.PrincipalResolver {
	return userRepo
}
