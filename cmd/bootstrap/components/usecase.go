package components

import (
	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/pkg/clock"
	"therapist-management-saas/internal/pkg/config"
	"therapist-management-saas/internal/pkg/metrics"
	"therapist-management-saas/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	NewBusinessClock,
	fx.Annotate(
		reservation.NewDefaultFeeResolver,
		fx.As(new(reservation.FeeResolver)),
	),
	fx.Annotate(
		reservation.NewDefaultPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
	NewTimelineSettings,
	NewRecorder,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewDesignationQueries,
		queries.NewAvailabilityQueries,
		queries.NewExportQueries,
	),
)

// NewTimelineSettings rejects a configured granularity that does not divide the operating window.
func NewTimelineSettings(cfg config.Config) (queries.TimelineSettings, error) {
	grid, err := timeline.NewGrid(cfg.Timeline.Granularity)
	if err != nil {
		return queries.TimelineSettings{}, err
	}
	return queries.TimelineSettings{
		Grid:     grid,
		Location: cfg.Timeline.Location(),
	}, nil
}

func NewBusinessClock(cfg config.Config) clock.Clock {
	return clock.NewZonedClock(clock.NewRealClock(), cfg.Timeline.Location())
}

func NewRecorder(m *metrics.Metrics) queries.Recorder {
	if m == nil {
		return nil
	}
	return m
}
