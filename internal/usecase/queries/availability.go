package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/pkg/clock"
	"therapist-management-saas/internal/pkg/errs"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidGranularity = errs.New("granularity must divide the operating window")
	ErrInvalidDate        = errs.New("invalid business date")
)

// TimelineSettings is the grid and business timezone every layout uses.
type TimelineSettings struct {
	Grid     timeline.Grid
	Location *time.Location
}

type DayTimelineParams struct {
	ShopID       uuid.UUID
	Date         time.Time
	TherapistID  *uuid.UUID
	IncludeSlots bool
}

type DayTimelineView struct {
	Date           string                  `json:"date"`
	Granularity    int                     `json:"granularity"`
	SlotCount      int                     `json:"slot_count"`
	NowOffset      *int                    `json:"now_offset,omitempty"`
	NowSlot        *int                    `json:"now_slot,omitempty"`
	Slots          []SlotView              `json:"slots,omitempty"`
	Therapists     []TherapistTimelineView `json:"therapists"`
	Overlaps       []OverlapView           `json:"overlaps"`
	SkippedRecords int                     `json:"skipped_records"`
}

type TherapistTimelineView struct {
	TherapistID     uuid.UUID    `json:"therapist_id"`
	Name            string       `json:"name"`
	HasShift        bool         `json:"has_shift"`
	ShiftStart      *string      `json:"shift_start,omitempty"`
	ShiftEnd        *string      `json:"shift_end,omitempty"`
	ShiftMinutes    int          `json:"shift_minutes"`
	AlwaysAvailable bool         `json:"always_available"`
	Mask            []bool       `json:"mask,omitempty"`
	Entities        []EntityView `json:"entities"`
}

type EntityView struct {
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

type OverlapView struct {
	TherapistID uuid.UUID `json:"therapist_id"`
	Kind        string    `json:"kind"`
	FirstID     uuid.UUID `json:"first_id"`
	SecondID    uuid.UUID `json:"second_id"`
}

type SlotView struct {
	Index     int    `json:"index"`
	Offset    int    `json:"offset"`
	Label     string `json:"label"`
	HourStart bool   `json:"hour_start"`
}

type GridView struct {
	Granularity int        `json:"granularity"`
	SlotCount   int        `json:"slot_count"`
	Slots       []SlotView `json:"slots"`
}

type AvailabilityQueries interface {
	GetDayTimeline(ctx context.Context, p DayTimelineParams) (*DayTimelineView, error)
	GetGrid(granularity int) (*GridView, error)
}

type availabilityQueriesImpl struct {
	schedule ScheduleReadStore
	settings TimelineSettings
	clock    clock.Clock
	recorder Recorder
	logger   *slog.Logger
}

func NewAvailabilityQueries(
	schedule ScheduleReadStore,
	settings TimelineSettings,
	clk clock.Clock,
	recorder Recorder,
	logger *slog.Logger,
) AvailabilityQueries {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &availabilityQueriesImpl{
		schedule: schedule,
		settings: settings,
		clock:    clk,
		recorder: recorderOrNop(recorder),
		logger:   logger,
	}
}

func (q *availabilityQueriesImpl) GetGrid(granularity int) (*GridView, error) {
	g := q.settings.Grid
	if granularity != 0 {
		var err error
		if g, err = timeline.NewGrid(granularity); err != nil {
			return nil, errs.Mark(err, ErrInvalidGranularity)
		}
	}
	return &GridView{
		Granularity: g.Granularity(),
		SlotCount:   g.SlotCount(),
		Slots:       toSlotViews(g),
	}, nil
}

func (q *availabilityQueriesImpl) GetDayTimeline(ctx context.Context, p DayTimelineParams) (*DayTimelineView, error) {
	if p.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	rm, err := q.schedule.FindDaySchedule(ctx, readmodel.DayScheduleQuery{
		ShopID:      p.ShopID,
		Date:        p.Date,
		TherapistID: p.TherapistID,
	})
	if err != nil {
		return nil, err
	}

	for _, s := range rm.Skipped {
		q.skip(ctx, s.Kind, s.ID, s.Reason)
	}

	grid := q.settings.Grid
	view := &DayTimelineView{
		Date:           p.Date.Format(dateLayout),
		Granularity:    grid.Granularity(),
		SlotCount:      grid.SlotCount(),
		Therapists:     make([]TherapistTimelineView, 0, len(rm.Therapists)),
		SkippedRecords: len(rm.Skipped),
	}
	if p.IncludeSlots {
		view.Slots = toSlotViews(grid)
	}
	q.attachNow(view, p.Date)

	layout := newDayLayout(rm.Therapists)
	for _, s := range rm.Shifts {
		if err := layout.addShift(s); err != nil {
			q.skip(ctx, string(timeline.KindShift), s.ID, err.Error())
			view.SkippedRecords++
		}
	}
	for _, r := range rm.Reservations {
		if err := layout.addReservation(r); err != nil {
			q.skip(ctx, string(timeline.KindReservation), r.ID, err.Error())
			view.SkippedRecords++
		}
	}

	// entities without a grid slot (starting 05:00-05:59) are dropped before
	// overlap detection so every reported pair is visible in the view
	placer := timeline.NewPlacer(grid)
	placed := make(map[uuid.UUID][]timeline.Placement, len(layout.therapists))
	onGrid := make([]timeline.ScheduleEntity, 0, len(layout.entities))
	for _, t := range layout.therapists {
		for _, e := range layout.byTherapist[t.ID] {
			pl, err := placer.Place(e)
			if err != nil {
				if errors.Is(err, timeline.ErrOutOfRange) {
					q.skip(ctx, string(e.Kind), e.ID, err.Error())
					view.SkippedRecords++
					continue
				}
				return nil, err
			}
			placed[t.ID] = append(placed[t.ID], pl)
			onGrid = append(onGrid, e)
		}
	}

	pairs := timeline.FindOverlaps(onGrid)
	overlapping := timeline.OverlappingIDs(pairs)
	q.recorder.ObserveOverlaps(len(pairs))

	view.Overlaps = make([]OverlapView, 0, len(pairs))
	for _, pair := range pairs {
		view.Overlaps = append(view.Overlaps, OverlapView{
			TherapistID: pair.First.ResourceID,
			Kind:        string(pair.First.Kind),
			FirstID:     pair.First.ID,
			SecondID:    pair.Second.ID,
		})
	}

	for _, t := range layout.therapists {
		tv, err := therapistView(layout, t, placed[t.ID], grid, overlapping, p.IncludeSlots)
		if err != nil {
			return nil, err
		}
		view.Therapists = append(view.Therapists, tv)
	}

	return view, nil
}

func therapistView(
	layout *dayLayout,
	t readmodel.TherapistRM,
	placements []timeline.Placement,
	grid timeline.Grid,
	overlapping map[uuid.UUID]struct{},
	includeSlots bool,
) (TherapistTimelineView, error) {
	window := layout.windows[t.ID]
	tv := TherapistTimelineView{
		TherapistID:     t.ID,
		Name:            t.Name,
		HasShift:        layout.hasShift[t.ID],
		ShiftMinutes:    window.Minutes(),
		AlwaysAvailable: !window.Bounded(),
		Entities:        make([]EntityView, 0, len(placements)),
	}
	if shift, ok := layout.shifts[t.ID]; ok && shift.HasBounds() {
		start, end := shift.Start.String(), shift.End.String()
		tv.ShiftStart, tv.ShiftEnd = &start, &end
	}
	if includeSlots {
		tv.Mask = window.Mask(grid)
	}

	for _, pl := range placements {
		ev, err := toEntityView(pl, grid)
		if err != nil {
			return TherapistTimelineView{}, err
		}
		e := pl.Entity
		_, ev.Overlapping = overlapping[e.ID]
		if e.Kind == timeline.KindReservation {
			ev.OutsideShift = !window.Covers(e.StartOffset, e.EndOffset)
		}
		tv.Entities = append(tv.Entities, ev)
	}
	return tv, nil
}

// attachNow sets the current-time marker only when the requested date is the
// business day that is in progress.
func (q *availabilityQueriesImpl) attachNow(view *DayTimelineView, date time.Time) {
	if q.clock == nil {
		return
	}
	now := q.clock.Now().In(q.settings.Location)
	if timeline.BusinessDate(now).Format(dateLayout) != date.Format(dateLayout) {
		return
	}
	off, ok := timeline.NowIndicator(now)
	if !ok {
		return
	}
	offset := off.Minutes()
	view.NowOffset = &offset
	if slot, err := q.settings.Grid.SlotIndex(off); err == nil {
		view.NowSlot = &slot
	}
}

func (q *availabilityQueriesImpl) skip(ctx context.Context, kind string, id uuid.UUID, reason string) {
	q.recorder.ObserveSkippedRecord(kind)
	q.logger.WarnContext(ctx, "schedule record skipped",
		slog.String("kind", kind),
		slog.String("id", id.String()),
		slog.String("reason", reason))
}

func toSlotViews(g timeline.Grid) []SlotView {
	slots := g.Slots()
	out := make([]SlotView, len(slots))
	for i, s := range slots {
		out[i] = SlotView{Index: s.Index, Offset: s.Offset.Minutes(), Label: s.Label, HourStart: s.HourStart}
	}
	return out
}

// toEntityView clips the span at the window end; the offsets keep the real length.
func toEntityView(pl timeline.Placement, g timeline.Grid) (EntityView, error) {
	start, err := timeline.FromOffset(pl.StartOffset())
	if err != nil {
		return EntityView{}, err
	}
	end, err := timeline.AddMinutes(start, pl.Entity.Duration())
	if err != nil {
		return EntityView{}, err
	}
	span := pl.SlotSpan
	if limit := g.SlotCount() - pl.StartSlot; span > limit {
		span = limit
	}
	return EntityView{
		ID:          pl.Entity.ID,
		Kind:        string(pl.Entity.Kind),
		Label:       pl.Entity.Label,
		StartOffset: pl.StartOffset().Minutes(),
		EndOffset:   pl.EndOffset().Minutes(),
		StartSlot:   pl.StartSlot,
		SlotSpan:    span,
		StartTime:   start.String(),
		EndTime:     end.String(),
		Metadata:    pl.Entity.Metadata,
	}, nil
}
