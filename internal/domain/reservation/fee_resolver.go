package reservation

import "github.com/google/uuid"

// TherapistPricing holds per-therapist fee overrides. A nil or zero field
// falls back to the shop default.
type TherapistPricing struct {
	TherapistID            uuid.UUID
	NominationFee          *int64
	ConfirmedNominationFee *int64
	PrincessFee            *int64
}

type ShopDefaults struct {
	NominationFee          *int64
	ConfirmedNominationFee *int64
	PrincessFee            *int64
}

func (p *TherapistPricing) feeFor(d DesignationType) *int64 {
	if p == nil {
		return nil
	}
	switch d {
	case DesignationNomination:
		return p.NominationFee
	case DesignationConfirmed:
		return p.ConfirmedNominationFee
	case DesignationPrincess:
		return p.PrincessFee
	default:
		return nil
	}
}

func (s ShopDefaults) feeFor(d DesignationType) *int64 {
	switch d {
	case DesignationNomination:
		return s.NominationFee
	case DesignationConfirmed:
		return s.ConfirmedNominationFee
	case DesignationPrincess:
		return s.PrincessFee
	default:
		return nil
	}
}

type FeeResolver interface {
	Resolve(d DesignationType, pricing *TherapistPricing, defaults ShopDefaults) Money
}

type DefaultFeeResolver struct{}

func NewDefaultFeeResolver() *DefaultFeeResolver {
	return &DefaultFeeResolver{}
}

func (DefaultFeeResolver) Resolve(d DesignationType, pricing *TherapistPricing, defaults ShopDefaults) Money {
	return ResolveNominationFee(d, pricing, defaults)
}

// ResolveNominationFee walks therapist override -> shop default -> zero.
// Free designations always resolve to zero.
func ResolveNominationFee(d DesignationType, pricing *TherapistPricing, defaults ShopDefaults) Money {
	if d == DesignationFree || !d.IsValid() {
		return Money{}
	}
	if override := pricing.feeFor(d); override != nil && *override > 0 {
		return Money{yen: *override}
	}
	return MoneyOrZero(defaults.feeFor(d))
}
