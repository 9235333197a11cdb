//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/infra"
	"therapist-management-saas/internal/infra/pgquery"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockScheduleReadQueries struct {
	mock.Mock
}

func (m *MockScheduleReadQueries) ListTherapists(ctx context.Context, db pgquery.DBTX, arg pgquery.DayScheduleParams) ([]pgquery.TherapistRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.TherapistRow), args.Error(1)
}

func (m *MockScheduleReadQueries) ListShiftsByDate(ctx context.Context, db pgquery.DBTX, arg pgquery.DayScheduleParams) ([]pgquery.ShiftRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.ShiftRow), args.Error(1)
}

func (m *MockScheduleReadQueries) ListReservationsByDate(ctx context.Context, db pgquery.DBTX, arg pgquery.DayScheduleParams) ([]pgquery.ReservationSlotRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.ReservationSlotRow), args.Error(1)
}

// fakeTx only implements what the snapshot runner touches.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx   *fakeTx
	opts pgx.TxOptions
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	f.opts = opts
	return f.tx, nil
}

func clockAt(hour, minute int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(hour*60+minute) * int64(time.Minute/time.Microsecond), Valid: true}
}

func TestFindDaySchedule(t *testing.T) {
	shopID := uuid.New()
	therapistID := uuid.New()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	goodShift := pgquery.ShiftRow{ID: uuid.New(), TherapistID: therapistID, StartTime: clockAt(22, 0), EndTime: clockAt(3, 0)}
	openShift := pgquery.ShiftRow{ID: uuid.New(), TherapistID: uuid.New()}
	badShift := pgquery.ShiftRow{ID: uuid.New(), TherapistID: therapistID, StartTime: pgtype.Time{Microseconds: -1, Valid: true}}

	goodReservation := pgquery.ReservationSlotRow{
		ID: uuid.New(), TherapistID: therapistID, CourseName: "60min",
		CustomerName: pgtype.Text{String: "Sato", Valid: true},
		StartTime:    clockAt(23, 30), DurationMinutes: 60, Designation: "nomination", Status: "confirmed",
	}
	badReservation := pgquery.ReservationSlotRow{ID: uuid.New(), TherapistID: therapistID, StartTime: clockAt(12, 0), DurationMinutes: -10}
	unknownStatus := pgquery.ReservationSlotRow{
		ID: uuid.New(), TherapistID: therapistID, CourseName: "90min",
		StartTime: clockAt(1, 0), DurationMinutes: 90, Designation: "free", Status: "tentative",
	}

	t.Run("success with skipped rows", func(t *testing.T) {
		mockQueries := new(MockScheduleReadQueries)
		tx := &fakeTx{}
		beginner := &fakeBeginner{tx: tx}

		mockQueries.On("ListTherapists", mock.Anything, tx, mock.Anything).
			Return([]pgquery.TherapistRow{{ID: therapistID, Name: "Aoi"}}, nil)
		mockQueries.On("ListShiftsByDate", mock.Anything, tx, mock.Anything).
			Return([]pgquery.ShiftRow{goodShift, openShift, badShift}, nil)
		mockQueries.On("ListReservationsByDate", mock.Anything, tx, mock.Anything).
			Return([]pgquery.ReservationSlotRow{goodReservation, badReservation, unknownStatus}, nil)

		store := NewScheduleReadStore(mockQueries, beginner)
		rm, err := store.FindDaySchedule(context.Background(), readmodel.DayScheduleQuery{ShopID: shopID, Date: date})

		require.NoError(t, err)
		assert.True(t, tx.committed)
		assert.Equal(t, pgx.ReadOnly, beginner.opts.AccessMode)
		assert.Equal(t, pgx.RepeatableRead, beginner.opts.IsoLevel)

		require.Len(t, rm.Therapists, 1)
		require.Len(t, rm.Shifts, 2)
		assert.Equal(t, "22:00", rm.Shifts[0].Start.String())
		assert.Equal(t, "03:00", rm.Shifts[0].End.String())
		assert.Nil(t, rm.Shifts[1].Start)
		assert.Nil(t, rm.Shifts[1].End)

		require.Len(t, rm.Reservations, 1)
		assert.Equal(t, timeline.MustParseTimePoint("23:30"), rm.Reservations[0].StartTime)
		assert.Equal(t, "Sato", rm.Reservations[0].CustomerName)

		require.Len(t, rm.Skipped, 3)
		assert.Equal(t, badShift.ID, rm.Skipped[0].ID)
		assert.Equal(t, skippedKindShift, rm.Skipped[0].Kind)
		assert.Equal(t, badReservation.ID, rm.Skipped[1].ID)
		assert.Equal(t, skippedKindReservation, rm.Skipped[1].Kind)
		assert.Equal(t, unknownStatus.ID, rm.Skipped[2].ID)
		assert.Contains(t, rm.Skipped[2].Reason, "invalid reservation status")
	})

	t.Run("therapist filter is passed through", func(t *testing.T) {
		mockQueries := new(MockScheduleReadQueries)
		beginner := &fakeBeginner{tx: &fakeTx{}}
		want := pgquery.DayScheduleParams{
			ShopID:      shopID,
			Date:        pgtype.Date{Time: date, Valid: true},
			TherapistID: pgtype.UUID{Bytes: therapistID, Valid: true},
		}

		mockQueries.On("ListTherapists", mock.Anything, mock.Anything, want).Return([]pgquery.TherapistRow{}, nil)
		mockQueries.On("ListShiftsByDate", mock.Anything, mock.Anything, want).Return([]pgquery.ShiftRow{}, nil)
		mockQueries.On("ListReservationsByDate", mock.Anything, mock.Anything, want).Return([]pgquery.ReservationSlotRow{}, nil)

		store := NewScheduleReadStore(mockQueries, beginner)
		_, err := store.FindDaySchedule(context.Background(), readmodel.DayScheduleQuery{ShopID: shopID, Date: date, TherapistID: &therapistID})

		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("query failure rolls back", func(t *testing.T) {
		mockQueries := new(MockScheduleReadQueries)
		tx := &fakeTx{}

		mockQueries.On("ListTherapists", mock.Anything, mock.Anything, mock.Anything).Return([]pgquery.TherapistRow{}, nil)
		mockQueries.On("ListShiftsByDate", mock.Anything, mock.Anything, mock.Anything).Return([]pgquery.ShiftRow(nil), assert.AnError)

		store := NewScheduleReadStore(mockQueries, &fakeBeginner{tx: tx})
		rm, err := store.FindDaySchedule(context.Background(), readmodel.DayScheduleQuery{ShopID: shopID, Date: date})

		assert.Nil(t, rm)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		mockQueries.AssertNotCalled(t, "ListReservationsByDate", mock.Anything, mock.Anything, mock.Anything)
	})
}
