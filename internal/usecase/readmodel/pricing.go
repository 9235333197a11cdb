package readmodel

import (
	"github.com/google/uuid"
)

type CourseRM struct {
	ID              uuid.UUID `json:"id"`
	ShopID          uuid.UUID `json:"shop_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	BasePrice       int64     `json:"base_price"`
}

type OptionRM struct {
	ID              uuid.UUID `json:"id"`
	ShopID          uuid.UUID `json:"shop_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           int64     `json:"price"`
}

// TherapistPricingRM holds per-therapist overrides. nil or 0 falls back to the shop default.
type TherapistPricingRM struct {
	TherapistID            uuid.UUID `json:"therapist_id"`
	NominationFee          *int64    `json:"nomination_fee,omitempty"`
	ConfirmedNominationFee *int64    `json:"confirmed_nomination_fee,omitempty"`
	PrincessFee            *int64    `json:"princess_fee,omitempty"`
}

type ShopDefaultsRM struct {
	ShopID                        uuid.UUID `json:"shop_id"`
	DefaultNominationFee          *int64    `json:"default_nomination_fee,omitempty"`
	DefaultConfirmedNominationFee *int64    `json:"default_confirmed_nomination_fee,omitempty"`
	DefaultPrincessFee            *int64    `json:"default_princess_fee,omitempty"`
}

type HistoryQuery struct {
	ShopID               uuid.UUID
	CustomerID           uuid.UUID
	TherapistID          uuid.UUID
	ExcludeReservationID *uuid.UUID
}
