package auth_fx

import (
	"go.uber.org/fx"

	"soko/internal/repositories"
	"soko/internal/services"
	"soko/internal/tokens"
	"soko/pkg/config"
	"soko/pkg/utils"
)

var Module = fx.Provide(
	provideTokenMaker, provideAuthService)

func provideTokenMaker(cfg *config.Config) *utils.TokenMaker {
	return utils.NewTokenMaker(cfg.JWTSecret, cfg.JWTExpires)
}

func provideAuthService(
	userRepo repositories.UserRepositoryInterface,
	tokenMaker *utils.TokenMaker,
	refreshStore tokens.RefreshStoreInterface,
	mailService services.IMailService,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, tokenMaker, refreshStore, mailService)
}
