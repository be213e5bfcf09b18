package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soko/internal/infra"
	"soko/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
