package queries

//go:generate mockgen -source=designation.go -destination=../../../tests/mock/queries/designation.go -package=queriesmock

import (
	"context"

	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SuggestParams struct {
	ShopID               uuid.UUID
	CustomerID           uuid.UUID
	TherapistID          uuid.UUID
	ExcludeReservationID *uuid.UUID
}

type DesignationSuggestionView struct {
	Designation         string `json:"designation"`
	HasPriorReservation bool   `json:"has_prior_reservation"`
}

type DesignationQueries interface {
	Suggest(ctx context.Context, p SuggestParams) (*DesignationSuggestionView, error)
}

type designationQueriesImpl struct {
	history HistoryReadStore
}

func NewDesignationQueries(history HistoryReadStore) DesignationQueries {
	return &designationQueriesImpl{history: history}
}

func (q *designationQueriesImpl) Suggest(ctx context.Context, p SuggestParams) (*DesignationSuggestionView, error) {
	hasPrior, err := q.history.HasPriorReservation(ctx, readmodel.HistoryQuery{
		ShopID:               p.ShopID,
		CustomerID:           p.CustomerID,
		TherapistID:          p.TherapistID,
		ExcludeReservationID: p.ExcludeReservationID,
	})
	if err != nil {
		return nil, err
	}

	return &DesignationSuggestionView{
		Designation:         reservation.SuggestDesignation(hasPrior).String(),
		HasPriorReservation: hasPrior,
	}, nil
}
