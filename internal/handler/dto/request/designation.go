package request

import (
	"therapist-management-saas/internal/usecase/queries"

	"github.com/google/uuid"
)

type DesignationQuery struct {
	CustomerID           string `form:"customer_id" binding:"required,uuid"`
	TherapistID          string `form:"therapist_id" binding:"required,uuid"`
	ExcludeReservationID string `form:"exclude_reservation_id" binding:"omitempty,uuid"`
}

func (q DesignationQuery) ToParams(shopID uuid.UUID) (queries.SuggestParams, error) {
	customerID, err := uuid.Parse(q.CustomerID)
	if err != nil {
		return queries.SuggestParams{}, err
	}
	therapistID, err := uuid.Parse(q.TherapistID)
	if err != nil {
		return queries.SuggestParams{}, err
	}
	params := queries.SuggestParams{
		ShopID:      shopID,
		CustomerID:  customerID,
		TherapistID: therapistID,
	}
	if q.ExcludeReservationID != "" {
		id, err := uuid.Parse(q.ExcludeReservationID)
		if err != nil {
			return queries.SuggestParams{}, err
		}
		params.ExcludeReservationID = &id
	}
	return params, nil
}
