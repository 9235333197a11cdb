package response

import (
	"therapist-management-saas/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PriceQuoteResponse struct {
	Designation          string  `json:"designation"`
	RequestedDesignation string  `json:"requested_designation"`
	Classified           bool    `json:"classified"`
	BasePrice            int64   `json:"base_price"`
	OptionsPrice         int64   `json:"options_price"`
	NominationFee        int64   `json:"nomination_fee"`
	DiscountAmount       int64   `json:"discount_amount"`
	TotalPrice           int64   `json:"total_price"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
	StartTime            *string `json:"start_time,omitempty"`
	EndTime              *string `json:"end_time,omitempty"`
}

func FromPriceQuoteView(v *queries.PriceQuoteView) (*PriceQuoteResponse, error) {
	res := &PriceQuoteResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

type DesignationSuggestionResponse struct {
	Designation         string `json:"designation"`
	HasPriorReservation bool   `json:"has_prior_reservation"`
}

func FromDesignationSuggestionView(v *queries.DesignationSuggestionView) *DesignationSuggestionResponse {
	return &DesignationSuggestionResponse{
		Designation:         v.Designation,
		HasPriorReservation: v.HasPriorReservation,
	}
}
