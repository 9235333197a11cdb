//go:build unit || e2e

package builder

import (
	reqdto "therapist-management-saas/internal/handler/dto/request"
	"therapist-management-saas/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteBuilder struct {
	CourseID       uuid.UUID
	OptionIDs      []uuid.UUID
	TherapistID    *uuid.UUID
	CustomerID     *uuid.UUID
	Designation    string
	DiscountAmount int64
	StartTime      *string
	AutoClassify   bool

	BasePrice       int64
	OptionsPrice    int64
	NominationFee   int64
	DurationMinutes int
}

func NewQuoteBuilder() *QuoteBuilder {
	therapistID := uuid.New()
	start := "22:00"
	return &QuoteBuilder{
		CourseID:        uuid.New(),
		OptionIDs:       []uuid.UUID{uuid.New()},
		TherapistID:     &therapistID,
		Designation:     "nomination",
		StartTime:       &start,
		BasePrice:       10000,
		OptionsPrice:    2000,
		NominationFee:   1000,
		DurationMinutes: 90,
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildRequestDTO() reqdto.QuotePriceRequest {
	return reqdto.QuotePriceRequest{
		CourseID:       b.CourseID,
		OptionIDs:      b.OptionIDs,
		TherapistID:    b.TherapistID,
		CustomerID:     b.CustomerID,
		Designation:    b.Designation,
		DiscountAmount: b.DiscountAmount,
		StartTime:      b.StartTime,
		AutoClassify:   b.AutoClassify,
	}
}

func (b *QuoteBuilder) BuildView() *queries.PriceQuoteView {
	total := b.BasePrice + b.OptionsPrice + b.NominationFee - b.DiscountAmount
	if total < 0 {
		total = 0
	}
	view := &queries.PriceQuoteView{
		Designation:          b.Designation,
		RequestedDesignation: b.Designation,
		BasePrice:            b.BasePrice,
		OptionsPrice:         b.OptionsPrice,
		NominationFee:        b.NominationFee,
		DiscountAmount:       b.DiscountAmount,
		TotalPrice:           total,
		TotalDurationMinutes: b.DurationMinutes,
	}
	if b.StartTime != nil {
		start := *b.StartTime
		end := "23:30"
		view.StartTime = &start
		view.EndTime = &end
	}
	return view
}
