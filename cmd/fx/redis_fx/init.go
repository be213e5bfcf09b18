package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"soko/internal/infra"
	"soko/internal/tokens"
	"soko/pkg/config"
	"soko/pkg/ratelimit"
)

var Module = fx.Provide(
	provideRedis, provideLimiter, provideRefreshStore)

func provideRedis(cfg *config.Config) *redis.Client {
	return infra.InitRedis(cfg)
}

func provideLimiter(client *redis.Client, cfg *config.Config) (*ratelimit.FixedWindowLimiter, error) {
	return ratelimit.NewFixedWindowLimiter(client, "soko:ratelimit", cfg.RateLimit, cfg.RateWindow)
}

func provideRefreshStore(client *redis.Client, cfg *config.Config) tokens.RefreshStoreInterface {
	return tokens.NewRefreshStore(client, cfg.RefreshExpires)
}
