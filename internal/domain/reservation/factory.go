package reservation

import "therapist-management-saas/internal/domain/timeline"

type QuoteRequest struct {
	Course              *Course
	Options             []*Option
	Requested           DesignationType
	AutoClassify        bool
	HasPriorReservation bool
	TherapistPricing    *TherapistPricing
	ShopDefaults        ShopDefaults
	Discount            Discount
	Start               *timeline.TimePoint
}

type Quote struct {
	Breakdown  PriceBreakdown
	Classified bool
	EndTime    *timeline.TimePoint
}

// Factory runs classification, fee resolution and price calculation in order.
type Factory struct {
	FeeResolver     FeeResolver
	PriceCalculator PriceCalculator
}

func NewFactory(feeResolver FeeResolver, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		FeeResolver:     feeResolver,
		PriceCalculator: priceCalculator,
	}
}

func (f *Factory) Quote(req QuoteRequest) (*Quote, error) {
	if req.Course == nil {
		return nil, ErrCourseRequired
	}
	if !req.Requested.IsValid() {
		return nil, ErrInvalidDesignation
	}

	designation := req.Requested
	if req.AutoClassify {
		designation = Classify(req.HasPriorReservation, req.Requested)
	}

	fee := f.FeeResolver.Resolve(designation, req.TherapistPricing, req.ShopDefaults)
	breakdown := f.PriceCalculator.Calculate(PriceInput{
		Course:        req.Course,
		Options:       req.Options,
		Designation:   designation,
		NominationFee: fee,
		Discount:      req.Discount,
	})

	quote := &Quote{
		Breakdown:  breakdown,
		Classified: designation != req.Requested,
	}
	if req.Start != nil {
		if _, err := timeline.ToOffset(*req.Start); err != nil {
			return nil, err
		}
		end, err := breakdown.EndTime(*req.Start)
		if err != nil {
			return nil, err
		}
		quote.EndTime = &end
	}
	return quote, nil
}
