package storage_fx

import (
	"go.uber.org/fx"

	"soko/internal/storage"
	"soko/pkg/config"
)

var Module = fx.Provide(
	provideFileStore)

func provideFileStore(cfg *config.Config) (storage.FileStoreInterface, error) {
	return storage.NewFileStore(cfg.PublicDir)
}
