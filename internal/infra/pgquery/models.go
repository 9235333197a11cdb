package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CourseRow struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	Name            string
	DurationMinutes int32
	BasePrice       int64
}

type OptionRow struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	Name            string
	DurationMinutes int32
	Price           int64
}

type TherapistPricingRow struct {
	TherapistID            uuid.UUID
	NominationFee          pgtype.Int8
	ConfirmedNominationFee pgtype.Int8
	PrincessFee            pgtype.Int8
}

type ShopSettingsRow struct {
	ShopID                        uuid.UUID
	DefaultNominationFee          pgtype.Int8
	DefaultConfirmedNominationFee pgtype.Int8
	DefaultPrincessFee            pgtype.Int8
}

type TherapistRow struct {
	ID   uuid.UUID
	Name string
}

type ShiftRow struct {
	ID          uuid.UUID
	TherapistID uuid.UUID
	Date        pgtype.Date
	StartTime   pgtype.Time
	EndTime     pgtype.Time
}

type ReservationSlotRow struct {
	ID              uuid.UUID
	TherapistID     uuid.UUID
	CustomerName    pgtype.Text
	CourseName      string
	StartTime       pgtype.Time
	DurationMinutes int32
	Designation     string
	Status          string
}

type PriorReservationParams struct {
	ShopID               uuid.UUID
	CustomerID           uuid.UUID
	TherapistID          uuid.UUID
	Statuses             []string
	ExcludeReservationID pgtype.UUID
}

type DayScheduleParams struct {
	ShopID      uuid.UUID
	Date        pgtype.Date
	TherapistID pgtype.UUID
}
