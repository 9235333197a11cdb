package queries

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

import (
	"context"
	"log/slog"

	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/infra"
	"therapist-management-saas/internal/pkg/errs"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound = errs.New("course not found")
	ErrOptionNotFound = errs.New("option not found")
	ErrInvalidQuote   = errs.New("invalid quote request")
)

type QuoteParams struct {
	ShopID               uuid.UUID
	CourseID             uuid.UUID
	OptionIDs            []uuid.UUID
	TherapistID          *uuid.UUID
	CustomerID           *uuid.UUID
	ExcludeReservationID *uuid.UUID
	Designation          reservation.DesignationType
	DiscountAmount       int64
	StartTime            *timeline.TimePoint
	AutoClassify         bool
}

type PriceQuoteView struct {
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

type PricingQueries interface {
	Quote(ctx context.Context, p QuoteParams) (*PriceQuoteView, error)
}

type pricingQueriesImpl struct {
	catalog  CatalogReadStore
	pricing  PricingReadStore
	history  HistoryReadStore
	factory  *reservation.Factory
	recorder Recorder
	logger   *slog.Logger
}

func NewPricingQueries(
	catalog CatalogReadStore,
	pricing PricingReadStore,
	history HistoryReadStore,
	factory *reservation.Factory,
	recorder Recorder,
	logger *slog.Logger,
) PricingQueries {
	return &pricingQueriesImpl{
		catalog:  catalog,
		pricing:  pricing,
		history:  history,
		factory:  factory,
		recorder: recorderOrNop(recorder),
		logger:   logger,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, p QuoteParams) (*PriceQuoteView, error) {
	if !p.Designation.IsValid() {
		return nil, reservation.ErrInvalidDesignation
	}
	discount, err := reservation.NewDiscount(p.DiscountAmount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuote)
	}

	course, err := q.loadCourse(ctx, p.ShopID, p.CourseID)
	if err != nil {
		return nil, err
	}
	options, err := q.loadOptions(ctx, p.ShopID, p.OptionIDs)
	if err != nil {
		return nil, err
	}

	req := reservation.QuoteRequest{
		Course:       course,
		Options:      options,
		Requested:    p.Designation,
		AutoClassify: p.AutoClassify,
		Discount:     discount,
		Start:        p.StartTime,
	}

	if p.Designation != reservation.DesignationFree {
		defaults, err := q.pricing.FindShopDefaults(ctx, p.ShopID)
		if err != nil {
			return nil, err
		}
		req.ShopDefaults = toShopDefaults(defaults)

		if p.TherapistID != nil {
			req.TherapistPricing, err = q.loadTherapistPricing(ctx, p.ShopID, *p.TherapistID)
			if err != nil {
				return nil, err
			}
		}
	}

	if p.AutoClassify && p.TherapistID != nil && p.CustomerID != nil {
		req.HasPriorReservation, err = q.history.HasPriorReservation(ctx, readmodel.HistoryQuery{
			ShopID:               p.ShopID,
			CustomerID:           *p.CustomerID,
			TherapistID:          *p.TherapistID,
			ExcludeReservationID: p.ExcludeReservationID,
		})
		if err != nil {
			return nil, err
		}
	}

	quote, err := q.factory.Quote(req)
	if err != nil {
		return nil, err
	}

	q.recorder.ObserveQuote(quote.Breakdown.Designation.String(), quote.Classified)
	if quote.Classified {
		q.logger.DebugContext(ctx, "designation auto-classified",
			slog.String("requested", p.Designation.String()),
			slog.String("resolved", quote.Breakdown.Designation.String()))
	}

	return toPriceQuoteView(p, quote), nil
}

func (q *pricingQueriesImpl) loadCourse(ctx context.Context, shopID, courseID uuid.UUID) (*reservation.Course, error) {
	rm, err := q.catalog.FindCourse(ctx, shopID, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return reservation.NewCourse(rm.ID, rm.Name, rm.DurationMinutes, rm.BasePrice)
}

func (q *pricingQueriesImpl) loadOptions(ctx context.Context, shopID uuid.UUID, ids []uuid.UUID) ([]*reservation.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rms, err := q.catalog.FindOptions(ctx, shopID, ids)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	options := make([]*reservation.Option, 0, len(rms))
	for _, rm := range rms {
		o, err := reservation.NewOption(rm.ID, rm.Name, rm.DurationMinutes, rm.Price)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, nil
}

// loadTherapistPricing treats a therapist without a pricing row as having no overrides.
// A therapist of another shop is not found either, so its overrides never apply here.
func (q *pricingQueriesImpl) loadTherapistPricing(ctx context.Context, shopID, therapistID uuid.UUID) (*reservation.TherapistPricing, error) {
	rm, err := q.pricing.FindTherapistPricing(ctx, shopID, therapistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reservation.TherapistPricing{
		TherapistID:            rm.TherapistID,
		NominationFee:          rm.NominationFee,
		ConfirmedNominationFee: rm.ConfirmedNominationFee,
		PrincessFee:            rm.PrincessFee,
	}, nil
}

func toShopDefaults(rm *readmodel.ShopDefaultsRM) reservation.ShopDefaults {
	if rm == nil {
		return reservation.ShopDefaults{}
	}
	return reservation.ShopDefaults{
		NominationFee:          rm.DefaultNominationFee,
		ConfirmedNominationFee: rm.DefaultConfirmedNominationFee,
		PrincessFee:            rm.DefaultPrincessFee,
	}
}

func toPriceQuoteView(p QuoteParams, quote *reservation.Quote) *PriceQuoteView {
	b := quote.Breakdown
	view := &PriceQuoteView{
		Designation:          b.Designation.String(),
		RequestedDesignation: p.Designation.String(),
		Classified:           quote.Classified,
		BasePrice:            b.BasePrice,
		OptionsPrice:         b.OptionsPrice,
		NominationFee:        b.NominationFee,
		DiscountAmount:       b.DiscountAmount,
		TotalPrice:           b.TotalPrice,
		TotalDurationMinutes: b.TotalDurationMinutes,
	}
	if p.StartTime != nil {
		start := p.StartTime.String()
		view.StartTime = &start
	}
	if quote.EndTime != nil {
		end := quote.EndTime.String()
		view.EndTime = &end
	}
	return view
}
