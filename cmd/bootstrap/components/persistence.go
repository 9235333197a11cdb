package components

import (
	"log/slog"

	"therapist-management-saas/internal/infra/cache"
	"therapist-management-saas/internal/infra/db"
	"therapist-management-saas/internal/infra/export"
	"therapist-management-saas/internal/infra/pgquery"
	"therapist-management-saas/internal/infra/readstore"
	"therapist-management-saas/internal/pkg/config"
	"therapist-management-saas/internal/pkg/metrics"
	"therapist-management-saas/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	exportModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewTxBeginner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Pricing (the cache decorates the database store)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PricingReadQueries)),
		),
		readstore.NewPricingReadStore,
		NewHistoryReadStore,
		NewPricingCache,
		// Schedule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleReadQueries)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
	),
)

var exportModule = fx.Module("persistence/export",
	fx.Provide(
		fx.Annotate(
			export.NewXLSXTimelineExporter,
			fx.As(new(queries.TimelineExporter)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) db.TxBeginner {
	return pool
}

func NewHistoryReadStore(store *readstore.PricingReadStore) queries.HistoryReadStore {
	return store
}

func NewPricingCache(store *readstore.PricingReadStore, client *redis.Client, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) queries.PricingReadStore {
	return cache.NewPricingCache(store, client, cfg.Redis.TTL, m, logger)
}
