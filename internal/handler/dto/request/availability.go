package request

import (
	"time"

	"therapist-management-saas/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type DayTimelineQuery struct {
	Date         string `form:"date" binding:"required,datetime=2006-01-02"`
	TherapistID  string `form:"therapist_id" binding:"omitempty,uuid"`
	IncludeSlots bool   `form:"slots"`
}

func (q DayTimelineQuery) ToParams(shopID uuid.UUID) (queries.DayTimelineParams, error) {
	date, err := time.Parse(dateLayout, q.Date)
	if err != nil {
		return queries.DayTimelineParams{}, err
	}
	params := queries.DayTimelineParams{
		ShopID:       shopID,
		Date:         date,
		IncludeSlots: q.IncludeSlots,
	}
	if q.TherapistID != "" {
		id, err := uuid.Parse(q.TherapistID)
		if err != nil {
			return queries.DayTimelineParams{}, err
		}
		params.TherapistID = &id
	}
	return params, nil
}

type GridQuery struct {
	Granularity int `form:"granularity" binding:"omitempty,min=1,max=60"`
}
