package reservation

import (
	"errors"
	"slices"
)

var (
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrNegativeDuration   = errors.New("duration cannot be negative")
	ErrNegativeDiscount   = errors.New("discount amount cannot be negative")
	ErrInvalidDesignation = errors.New("invalid designation type")
	ErrCourseRequired     = errors.New("course is required")
	ErrInvalidStatus      = errors.New("invalid reservation status")
)

type Status string

const (
	StatusTentative Status = "tentative"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func AllStatuses() []Status {
	return []Status{StatusTentative, StatusConfirmed, StatusCompleted, StatusCanceled}
}

// CountsAsHistory reports whether a past reservation with this status makes
// the customer a repeat customer of the therapist.
func (s Status) CountsAsHistory() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// HistoryStatuses lists every status for which CountsAsHistory holds.
func HistoryStatuses() []Status {
	var out []Status
	for _, s := range AllStatuses() {
		if s.CountsAsHistory() {
			out = append(out, s)
		}
	}
	return out
}

type DesignationType string

const (
	DesignationFree       DesignationType = "free"
	DesignationNomination DesignationType = "nomination"
	DesignationConfirmed  DesignationType = "confirmed"
	DesignationPrincess   DesignationType = "princess"
)

func ParseDesignationType(s string) (DesignationType, error) {
	d := DesignationType(s)
	if !d.IsValid() {
		return "", ErrInvalidDesignation
	}
	return d, nil
}

func (d DesignationType) String() string {
	return string(d)
}

func (d DesignationType) IsValid() bool {
	return slices.Contains(AllDesignationTypes(), d)
}

func AllDesignationTypes() []DesignationType {
	return []DesignationType{DesignationFree, DesignationNomination, DesignationConfirmed, DesignationPrincess}
}
