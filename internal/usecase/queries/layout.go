package queries

import (
	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/pkg/errs"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var errUnknownTherapist = errs.New("therapist is not on the day's roster")

// dayLayout collects one day's entities per therapist in roster order.
type dayLayout struct {
	therapists  []readmodel.TherapistRM
	known       map[uuid.UUID]struct{}
	shifts      map[uuid.UUID]timeline.ShiftInterval
	windows     map[uuid.UUID]timeline.ShiftWindow
	hasShift    map[uuid.UUID]bool
	byTherapist map[uuid.UUID][]timeline.ScheduleEntity
	entities    []timeline.ScheduleEntity
}

func newDayLayout(therapists []readmodel.TherapistRM) *dayLayout {
	l := &dayLayout{
		therapists:  therapists,
		known:       make(map[uuid.UUID]struct{}, len(therapists)),
		shifts:      make(map[uuid.UUID]timeline.ShiftInterval, len(therapists)),
		windows:     make(map[uuid.UUID]timeline.ShiftWindow, len(therapists)),
		hasShift:    make(map[uuid.UUID]bool, len(therapists)),
		byTherapist: make(map[uuid.UUID][]timeline.ScheduleEntity, len(therapists)),
	}
	for _, t := range therapists {
		l.known[t.ID] = struct{}{}
	}
	return l
}

func (l *dayLayout) addShift(s readmodel.ShiftRM) error {
	if _, ok := l.known[s.TherapistID]; !ok {
		return errUnknownTherapist
	}
	shift := timeline.ShiftInterval{ResourceID: s.TherapistID, Start: s.Start, End: s.End}
	window, err := shift.Window()
	if err != nil {
		return err
	}
	entities, err := timeline.EntitiesFromShift(s.ID, shift, "shift")
	if err != nil {
		return err
	}

	l.shifts[s.TherapistID] = shift
	l.windows[s.TherapistID] = window
	l.hasShift[s.TherapistID] = true
	l.append(s.TherapistID, entities...)
	return nil
}

func (l *dayLayout) addReservation(r readmodel.ReservationSlotRM) error {
	if _, ok := l.known[r.TherapistID]; !ok {
		return errUnknownTherapist
	}
	e, err := timeline.NewEntity(r.ID, r.TherapistID, timeline.KindReservation, r.StartTime, r.DurationMinutes, r.CourseName)
	if err != nil {
		return err
	}
	e.Metadata = map[string]string{
		"customer":    r.CustomerName,
		"course":      r.CourseName,
		"designation": r.Designation,
		"status":      r.Status,
	}
	l.append(r.TherapistID, e)
	return nil
}

func (l *dayLayout) append(therapistID uuid.UUID, entities ...timeline.ScheduleEntity) {
	l.byTherapist[therapistID] = append(l.byTherapist[therapistID], entities...)
	l.entities = append(l.entities, entities...)
}
