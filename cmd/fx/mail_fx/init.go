package mail_fx

import (
	"go.uber.org/fx"

	"soko/internal/services"
	"soko/pkg/config"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	return services.NewSMTPMailService(cfg)
}
