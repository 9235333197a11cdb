package request

import (
	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuotePriceRequest struct {
	CourseID             uuid.UUID   `json:"course_id" binding:"required"`
	OptionIDs            []uuid.UUID `json:"option_ids,omitempty" binding:"omitempty,max=20,dive,required"`
	TherapistID          *uuid.UUID  `json:"therapist_id,omitempty"`
	CustomerID           *uuid.UUID  `json:"customer_id,omitempty"`
	ExcludeReservationID *uuid.UUID  `json:"exclude_reservation_id,omitempty"`
	Designation          string      `json:"designation" binding:"required,designation"`
	DiscountAmount       int64       `json:"discount_amount" binding:"min=0"`
	StartTime            *string     `json:"start_time,omitempty" binding:"omitempty,timepoint"`
	AutoClassify         bool        `json:"auto_classify"`
}

// ToParams assumes the request already passed binding validation.
func (r QuotePriceRequest) ToParams(shopID uuid.UUID) (queries.QuoteParams, error) {
	designation, err := reservation.ParseDesignationType(r.Designation)
	if err != nil {
		return queries.QuoteParams{}, err
	}

	params := queries.QuoteParams{
		ShopID:               shopID,
		CourseID:             r.CourseID,
		OptionIDs:            r.OptionIDs,
		TherapistID:          r.TherapistID,
		CustomerID:           r.CustomerID,
		ExcludeReservationID: r.ExcludeReservationID,
		Designation:          designation,
		DiscountAmount:       r.DiscountAmount,
		AutoClassify:         r.AutoClassify,
	}
	if r.StartTime != nil {
		start, err := timeline.ParseTimePoint(*r.StartTime)
		if err != nil {
			return queries.QuoteParams{}, err
		}
		params.StartTime = &start
	}
	return params, nil
}
