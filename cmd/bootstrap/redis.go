package bootstrap

import (
	"context"
	"log/slog"

	"therapist-management-saas/internal/infra/cache"
	"therapist-management-saas/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset; the pricing cache then passes through.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("redis disabled, pricing reads go to the database")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
