package bootstrap

import (
	"therapist-management-saas/internal/pkg/config"
	"therapist-management-saas/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

// nil disables the /metrics route; every recorder call site is nil-safe.
func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New()
}
