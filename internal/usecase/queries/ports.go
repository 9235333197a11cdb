package queries

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports.go -package=queriesmock

import (
	"context"

	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	FindCourse(ctx context.Context, shopID, courseID uuid.UUID) (*readmodel.CourseRM, error)
	FindOptions(ctx context.Context, shopID uuid.UUID, ids []uuid.UUID) ([]readmodel.OptionRM, error)
}

type PricingReadStore interface {
	FindTherapistPricing(ctx context.Context, shopID, therapistID uuid.UUID) (*readmodel.TherapistPricingRM, error)
	FindShopDefaults(ctx context.Context, shopID uuid.UUID) (*readmodel.ShopDefaultsRM, error)
}

type HistoryReadStore interface {
	HasPriorReservation(ctx context.Context, q readmodel.HistoryQuery) (bool, error)
}

type ScheduleReadStore interface {
	FindDaySchedule(ctx context.Context, q readmodel.DayScheduleQuery) (*readmodel.DayScheduleRM, error)
}

// Recorder receives domain measurements. A nil Recorder is replaced by a no-op.
type Recorder interface {
	ObserveQuote(designation string, classified bool)
	ObserveOverlaps(count int)
	ObserveSkippedRecord(kind string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveQuote(string, bool)   {}
func (nopRecorder) ObserveOverlaps(int)         {}
func (nopRecorder) ObserveSkippedRecord(string) {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
