package response

import (
	"therapist-management-saas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DayTimelineResponse struct {
	Date           string              `json:"date"`
	Granularity    int                 `json:"granularity"`
	SlotCount      int                 `json:"slot_count"`
	NowOffset      *int                `json:"now_offset,omitempty"`
	NowSlot        *int                `json:"now_slot,omitempty"`
	Slots          []SlotResponse      `json:"slots,omitempty"`
	Therapists     []TherapistTimeline `json:"therapists"`
	Overlaps       []OverlapResponse   `json:"overlaps"`
	SkippedRecords int                 `json:"skipped_records"`
}

type TherapistTimeline struct {
	TherapistID     uuid.UUID        `json:"therapist_id"`
	Name            string           `json:"name"`
	HasShift        bool             `json:"has_shift"`
	ShiftStart      *string          `json:"shift_start,omitempty"`
	ShiftEnd        *string          `json:"shift_end,omitempty"`
	ShiftMinutes    int              `json:"shift_minutes"`
	AlwaysAvailable bool             `json:"always_available"`
	Mask            []bool           `json:"mask,omitempty"`
	Entities        []EntityResponse `json:"entities"`
}

type EntityResponse struct {
	ID           uuid.UUID         `json:"id"`
	Kind         string            `json:"kind"`
	Label        string            `json:"label"`
	StartOffset  int               `json:"start_offset"`
	EndOffset    int               `json:"end_offset"`
	StartSlot    int               `json:"start_slot"`
	SlotSpan     int               `json:"slot_span"`
	StartTime    string            `json:"start_time"`
	EndTime      string            `json:"end_time"`
	Overlapping  bool              `json:"overlapping"`
	OutsideShift bool              `json:"outside_shift"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type OverlapResponse struct {
	TherapistID uuid.UUID `json:"therapist_id"`
	Kind        string    `json:"kind"`
	FirstID     uuid.UUID `json:"first_id"`
	SecondID    uuid.UUID `json:"second_id"`
}

type SlotResponse struct {
	Index     int    `json:"index"`
	Offset    int    `json:"offset"`
	Label     string `json:"label"`
	HourStart bool   `json:"hour_start"`
}

type GridResponse struct {
	Granularity int            `json:"granularity"`
	SlotCount   int            `json:"slot_count"`
	Slots       []SlotResponse `json:"slots"`
}

func FromDayTimelineView(v *queries.DayTimelineView) (*DayTimelineResponse, error) {
	res := &DayTimelineResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	// keep empty collections as [] on the wire
	if res.Therapists == nil {
		res.Therapists = []TherapistTimeline{}
	}
	if res.Overlaps == nil {
		res.Overlaps = []OverlapResponse{}
	}
	for i := range res.Therapists {
		if res.Therapists[i].Entities == nil {
			res.Therapists[i].Entities = []EntityResponse{}
		}
	}
	return res, nil
}

func FromGridView(v *queries.GridView) (*GridResponse, error) {
	res := &GridResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return res, nil
}
