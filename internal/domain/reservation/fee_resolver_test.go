//go:build unit

package reservation_test

import (
	"testing"

	"therapist-management-saas/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func yen(v int64) *int64 { return &v }

func TestResolveNominationFee(t *testing.T) {
	defaults := reservation.ShopDefaults{
		NominationFee:          yen(2000),
		ConfirmedNominationFee: yen(1000),
		PrincessFee:            yen(3000),
	}
	overrides := &reservation.TherapistPricing{
		TherapistID:            uuid.New(),
		NominationFee:          yen(2500),
		ConfirmedNominationFee: yen(1500),
		PrincessFee:            yen(5000),
	}
	zeroOverrides := &reservation.TherapistPricing{
		TherapistID:            uuid.New(),
		NominationFee:          yen(0),
		ConfirmedNominationFee: yen(0),
		PrincessFee:            yen(0),
	}

	testCases := []struct {
		name        string
		designation reservation.DesignationType
		pricing     *reservation.TherapistPricing
		defaults    reservation.ShopDefaults
		want        int64
	}{
		{name: "free ignores everything", designation: reservation.DesignationFree, pricing: overrides, defaults: defaults, want: 0},
		{name: "nomination override wins", designation: reservation.DesignationNomination, pricing: overrides, defaults: defaults, want: 2500},
		{name: "confirmed override wins", designation: reservation.DesignationConfirmed, pricing: overrides, defaults: defaults, want: 1500},
		{name: "princess override wins", designation: reservation.DesignationPrincess, pricing: overrides, defaults: defaults, want: 5000},
		{name: "zero override falls back", designation: reservation.DesignationNomination, pricing: zeroOverrides, defaults: defaults, want: 2000},
		{name: "nil pricing falls back", designation: reservation.DesignationConfirmed, pricing: nil, defaults: defaults, want: 1000},
		{name: "absent override field falls back", designation: reservation.DesignationPrincess, pricing: &reservation.TherapistPricing{}, defaults: defaults, want: 3000},
		{name: "nothing configured", designation: reservation.DesignationNomination, pricing: nil, defaults: reservation.ShopDefaults{}, want: 0},
		{name: "negative default clamps", designation: reservation.DesignationNomination, pricing: nil, defaults: reservation.ShopDefaults{NominationFee: yen(-100)}, want: 0},
		{name: "unknown designation", designation: reservation.DesignationType("vip"), pricing: overrides, defaults: defaults, want: 0},
	}

	resolver := reservation.NewDefaultFeeResolver()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := reservation.ResolveNominationFee(tc.designation, tc.pricing, tc.defaults)
			assert.Equal(t, tc.want, actual.Yen())
			assert.Equal(t, actual, resolver.Resolve(tc.designation, tc.pricing, tc.defaults))
		})
	}
}

func TestResolveNominationFee_Precedence(t *testing.T) {
	overrideValues := []*int64{nil, yen(0), yen(700)}
	defaultValues := []*int64{nil, yen(0), yen(400)}

	for _, d := range reservation.AllDesignationTypes() {
		for _, o := range overrideValues {
			for _, dv := range defaultValues {
				pricing := &reservation.TherapistPricing{NominationFee: o, ConfirmedNominationFee: o, PrincessFee: o}
				defaults := reservation.ShopDefaults{NominationFee: dv, ConfirmedNominationFee: dv, PrincessFee: dv}
				got := reservation.ResolveNominationFee(d, pricing, defaults).Yen()

				var want int64
				switch {
				case d == reservation.DesignationFree:
					want = 0
				case o != nil && *o > 0:
					want = *o
				case dv != nil:
					want = *dv
				}
				assert.Equal(t, want, got, "designation=%s", d)
			}
		}
	}
}
