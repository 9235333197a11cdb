package reservation

import "therapist-management-saas/internal/domain/timeline"

type PriceBreakdown struct {
	Designation          DesignationType
	BasePrice            int64
	OptionsPrice         int64
	NominationFee        int64
	DiscountAmount       int64
	TotalPrice           int64
	TotalDurationMinutes int
}

// EndTime adds the total duration to start on the wall clock.
func (b PriceBreakdown) EndTime(start timeline.TimePoint) (timeline.TimePoint, error) {
	return timeline.AddMinutes(start, b.TotalDurationMinutes)
}

type PriceInput struct {
	Course        *Course
	Options       []*Option
	Designation   DesignationType
	NominationFee Money
	Discount      Discount
}

type PriceCalculator interface {
	Calculate(in PriceInput) PriceBreakdown
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (DefaultPriceCalculator) Calculate(in PriceInput) PriceBreakdown {
	return Calculate(in.Course, in.Options, in.Designation, in.NominationFee, in.Discount)
}

// Calculate composes course, options and the pre-resolved nomination fee,
// then applies the discount. The total never drops below zero.
func Calculate(course *Course, options []*Option, designation DesignationType, nominationFee Money, discount Discount) PriceBreakdown {
	var base Money
	duration := 0
	if course != nil {
		base = course.Price()
		duration = course.DurationMinutes()
	}

	var optionsPrice Money
	for _, o := range options {
		if o == nil {
			continue
		}
		optionsPrice = optionsPrice.Add(o.Price())
		duration += o.DurationMinutes()
	}

	total := base.Add(optionsPrice).Add(nominationFee).ApplyDiscount(discount)

	return PriceBreakdown{
		Designation:          designation,
		BasePrice:            base.Yen(),
		OptionsPrice:         optionsPrice.Yen(),
		NominationFee:        nominationFee.Yen(),
		DiscountAmount:       discount.Amount(),
		TotalPrice:           total.Yen(),
		TotalDurationMinutes: duration,
	}
}
