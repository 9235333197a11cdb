package readmodel

import (
	"time"

	"therapist-management-saas/internal/domain/timeline"

	"github.com/google/uuid"
)

type TherapistRM struct {
	ID   uuid.UUID
	Name string
}

// ShiftRM bounds are nil when the shift has no recorded hours.
type ShiftRM struct {
	ID          uuid.UUID
	TherapistID uuid.UUID
	Start       *timeline.TimePoint
	End         *timeline.TimePoint
}

type ReservationSlotRM struct {
	ID              uuid.UUID
	TherapistID     uuid.UUID
	CustomerName    string
	CourseName      string
	StartTime       timeline.TimePoint
	DurationMinutes int
	Designation     string
	Status          string
}

type DayScheduleQuery struct {
	ShopID      uuid.UUID
	Date        time.Time
	TherapistID *uuid.UUID
}

// DayScheduleRM is read from a single snapshot. Rows that could not be
// decoded are counted in Skipped rather than failing the whole day.
type DayScheduleRM struct {
	Therapists   []TherapistRM
	Shifts       []ShiftRM
	Reservations []ReservationSlotRM
	Skipped      []SkippedRecord
}

type SkippedRecord struct {
	ID     uuid.UUID
	Kind   string
	Reason string
}
