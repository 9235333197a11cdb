package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const getTherapistPricing = `
SELECT tp.therapist_id, tp.nomination_fee, tp.confirmed_nomination_fee, tp.princess_fee
FROM therapist_pricing tp
JOIN therapists t ON t.id = tp.therapist_id
WHERE t.shop_id = $1
  AND tp.therapist_id = $2
`

func (q *Queries) GetTherapistPricing(ctx context.Context, db DBTX, shopID, therapistID uuid.UUID) (TherapistPricingRow, error) {
	row := db.QueryRow(ctx, getTherapistPricing, shopID, therapistID)
	var r TherapistPricingRow
	err := row.Scan(&r.TherapistID, &r.NominationFee, &r.ConfirmedNominationFee, &r.PrincessFee)
	return r, err
}

const getShopSettings = `
SELECT shop_id, default_nomination_fee, default_confirmed_nomination_fee, default_princess_fee
FROM shop_settings
WHERE shop_id = $1
`

func (q *Queries) GetShopSettings(ctx context.Context, db DBTX, shopID uuid.UUID) (ShopSettingsRow, error) {
	row := db.QueryRow(ctx, getShopSettings, shopID)
	var r ShopSettingsRow
	err := row.Scan(&r.ShopID, &r.DefaultNominationFee, &r.DefaultConfirmedNominationFee, &r.DefaultPrincessFee)
	return r, err
}

const existsPriorReservation = `
SELECT EXISTS (
    SELECT 1
    FROM reservations
    WHERE shop_id = $1
      AND customer_id = $2
      AND therapist_id = $3
      AND status = ANY($4::text[])
      AND ($5::uuid IS NULL OR id <> $5::uuid)
)
`

func (q *Queries) ExistsPriorReservation(ctx context.Context, db DBTX, arg PriorReservationParams) (bool, error) {
	row := db.QueryRow(ctx, existsPriorReservation, arg.ShopID, arg.CustomerID, arg.TherapistID, arg.Statuses, arg.ExcludeReservationID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
