package readstore

import (
	"context"
	"fmt"

	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/infra"
	"therapist-management-saas/internal/infra/db"
	"therapist-management-saas/internal/infra/pgquery"
	"therapist-management-saas/internal/pkg/pgconv"
	"therapist-management-saas/internal/usecase/readmodel"
	"therapist-management-saas/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	skippedKindShift       = "shift"
	skippedKindReservation = "reservation"
)

type ScheduleReadQueries interface {
	ListTherapists(ctx context.Context, db pgquery.DBTX, arg pgquery.DayScheduleParams) ([]pgquery.TherapistRow, error)
	ListShiftsByDate(ctx context.Context, db pgquery.DBTX, arg pgquery.DayScheduleParams) ([]pgquery.ShiftRow, error)
	ListReservationsByDate(ctx context.Context, db pgquery.DBTX, arg pgquery.DayScheduleParams) ([]pgquery.ReservationSlotRow, error)
}

type ScheduleReadStore struct {
	queries ScheduleReadQueries
	pool    db.TxBeginner
}

func NewScheduleReadStore(queries ScheduleReadQueries, pool db.TxBeginner) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		pool:    pool,
	}
}

// FindDaySchedule reads therapists, shifts and reservations from one snapshot
// so a reservation is never paired with a shift from a different moment.
func (r *ScheduleReadStore) FindDaySchedule(ctx context.Context, q readmodel.DayScheduleQuery) (*readmodel.DayScheduleRM, error) {
	params := pgquery.DayScheduleParams{
		ShopID:      q.ShopID,
		Date:        pgconv.DateToPgtype(q.Date),
		TherapistID: pgconv.UUIDPtrToPgtype(q.TherapistID),
	}

	return shared.WithSnapshot(ctx, r.pool, func(tx db.DBTX) (*readmodel.DayScheduleRM, error) {
		return r.load(ctx, tx, params)
	})
}

func (r *ScheduleReadStore) load(ctx context.Context, tx db.DBTX, params pgquery.DayScheduleParams) (*readmodel.DayScheduleRM, error) {
	therapistRows, err := r.queries.ListTherapists(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list therapists", err)
	}

	shiftRows, err := r.queries.ListShiftsByDate(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shifts", err)
	}

	reservationRows, err := r.queries.ListReservationsByDate(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	rm := &readmodel.DayScheduleRM{
		Therapists:   make([]readmodel.TherapistRM, 0, len(therapistRows)),
		Shifts:       make([]readmodel.ShiftRM, 0, len(shiftRows)),
		Reservations: make([]readmodel.ReservationSlotRM, 0, len(reservationRows)),
	}

	for _, row := range therapistRows {
		rm.Therapists = append(rm.Therapists, readmodel.TherapistRM{ID: row.ID, Name: row.Name})
	}

	for _, row := range shiftRows {
		shift, err := toShiftRM(row)
		if err != nil {
			rm.Skipped = append(rm.Skipped, readmodel.SkippedRecord{ID: row.ID, Kind: skippedKindShift, Reason: err.Error()})
			continue
		}
		rm.Shifts = append(rm.Shifts, shift)
	}

	for _, row := range reservationRows {
		slot, err := toReservationSlotRM(row)
		if err != nil {
			rm.Skipped = append(rm.Skipped, readmodel.SkippedRecord{ID: row.ID, Kind: skippedKindReservation, Reason: err.Error()})
			continue
		}
		rm.Reservations = append(rm.Reservations, slot)
	}

	return rm, nil
}

func toShiftRM(row pgquery.ShiftRow) (readmodel.ShiftRM, error) {
	start, err := timePointFromPgtype(row.StartTime)
	if err != nil {
		return readmodel.ShiftRM{}, fmt.Errorf("start: %w", err)
	}
	end, err := timePointFromPgtype(row.EndTime)
	if err != nil {
		return readmodel.ShiftRM{}, fmt.Errorf("end: %w", err)
	}

	return readmodel.ShiftRM{
		ID:          row.ID,
		TherapistID: row.TherapistID,
		Start:       start,
		End:         end,
	}, nil
}

func toReservationSlotRM(row pgquery.ReservationSlotRow) (readmodel.ReservationSlotRM, error) {
	start, err := timePointFromPgtype(row.StartTime)
	if err != nil {
		return readmodel.ReservationSlotRM{}, fmt.Errorf("start: %w", err)
	}
	if start == nil {
		return readmodel.ReservationSlotRM{}, fmt.Errorf("start: %w", timeline.ErrInvalidTimePoint)
	}
	if row.DurationMinutes < 0 {
		return readmodel.ReservationSlotRM{}, timeline.ErrInvalidInterval
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return readmodel.ReservationSlotRM{}, fmt.Errorf("status %q: %w", row.Status, err)
	}

	return readmodel.ReservationSlotRM{
		ID:              row.ID,
		TherapistID:     row.TherapistID,
		CustomerName:    pgconv.StringFromPgtype(row.CustomerName),
		CourseName:      row.CourseName,
		StartTime:       *start,
		DurationMinutes: int(row.DurationMinutes),
		Designation:     row.Designation,
		Status:          status.String(),
	}, nil
}

// timePointFromPgtype returns nil for a NULL column.
func timePointFromPgtype(pt pgtype.Time) (*timeline.TimePoint, error) {
	hour, minute, ok, err := pgconv.ClockFromPgtype(pt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	tp, err := timeline.NewTimePoint(hour, minute)
	if err != nil {
		return nil, err
	}
	return &tp, nil
}
