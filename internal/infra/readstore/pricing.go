package readstore

import (
	"context"

	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/infra"
	"therapist-management-saas/internal/infra/pgquery"
	"therapist-management-saas/internal/pkg/pgconv"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PricingReadQueries interface {
	GetTherapistPricing(ctx context.Context, db pgquery.DBTX, shopID, therapistID uuid.UUID) (pgquery.TherapistPricingRow, error)
	GetShopSettings(ctx context.Context, db pgquery.DBTX, shopID uuid.UUID) (pgquery.ShopSettingsRow, error)
	ExistsPriorReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.PriorReservationParams) (bool, error)
}

type PricingReadStore struct {
	queries PricingReadQueries
	db      pgquery.DBTX
}

func NewPricingReadStore(queries PricingReadQueries, db pgquery.DBTX) *PricingReadStore {
	return &PricingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindTherapistPricing only sees therapists of shopID, so another shop's
// override can never leak into a quote.
func (r *PricingReadStore) FindTherapistPricing(ctx context.Context, shopID, therapistID uuid.UUID) (*readmodel.TherapistPricingRM, error) {
	row, err := r.queries.GetTherapistPricing(ctx, r.db, shopID, therapistID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("therapist pricing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find therapist pricing", err)
	}

	return &readmodel.TherapistPricingRM{
		TherapistID:            row.TherapistID,
		NominationFee:          pgconv.Int64PtrFromPgtype(row.NominationFee),
		ConfirmedNominationFee: pgconv.Int64PtrFromPgtype(row.ConfirmedNominationFee),
		PrincessFee:            pgconv.Int64PtrFromPgtype(row.PrincessFee),
	}, nil
}

// FindShopDefaults returns empty defaults for a shop without a settings row.
func (r *PricingReadStore) FindShopDefaults(ctx context.Context, shopID uuid.UUID) (*readmodel.ShopDefaultsRM, error) {
	row, err := r.queries.GetShopSettings(ctx, r.db, shopID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &readmodel.ShopDefaultsRM{ShopID: shopID}, nil
		}
		return nil, infra.WrapRepoErr("failed to find shop settings", err)
	}

	return &readmodel.ShopDefaultsRM{
		ShopID:                        row.ShopID,
		DefaultNominationFee:          pgconv.Int64PtrFromPgtype(row.DefaultNominationFee),
		DefaultConfirmedNominationFee: pgconv.Int64PtrFromPgtype(row.DefaultConfirmedNominationFee),
		DefaultPrincessFee:            pgconv.Int64PtrFromPgtype(row.DefaultPrincessFee),
	}, nil
}

// HasPriorReservation counts only reservations whose status CountsAsHistory.
func (r *PricingReadStore) HasPriorReservation(ctx context.Context, q readmodel.HistoryQuery) (bool, error) {
	exists, err := r.queries.ExistsPriorReservation(ctx, r.db, pgquery.PriorReservationParams{
		ShopID:               q.ShopID,
		CustomerID:           q.CustomerID,
		TherapistID:          q.TherapistID,
		Statuses:             historyStatuses(),
		ExcludeReservationID: pgconv.UUIDPtrToPgtype(q.ExcludeReservationID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation history", err)
	}
	return exists, nil
}

func historyStatuses() []string {
	statuses := reservation.HistoryStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
