package bootstrap

import (
	"context"
	"log/slog"

	"therapist-management-saas/internal/infra/db"
	"therapist-management-saas/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly so a bad DSN fails startup instead of the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("database connected",
				slog.String("host", cfg.DB.Host),
				slog.String("database", cfg.DB.DBName),
				slog.Int("max_conns", int(cfg.DB.MaxConns)))
			return nil
		},
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				slog.Int("acquired_conns", int(stat.AcquiredConns())),
				slog.Int64("acquire_count", stat.AcquireCount()))
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
