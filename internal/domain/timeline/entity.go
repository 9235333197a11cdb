package timeline

import "github.com/google/uuid"

type EntityKind string

const (
	KindShift       EntityKind = "shift"
	KindReservation EntityKind = "reservation"
)

func (k EntityKind) IsValid() bool {
	return k == KindShift || k == KindReservation
}

// ScheduleEntity is a shift or reservation laid out as [StartOffset, EndOffset).
// It is derived on every layout pass and never stored.
type ScheduleEntity struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	Kind        EntityKind
	StartOffset Offset
	EndOffset   Offset
	Label       string
	Metadata    map[string]string
}

func (e ScheduleEntity) Duration() int {
	return int(e.EndOffset - e.StartOffset)
}

func (e ScheduleEntity) IsEmpty() bool {
	return e.EndOffset <= e.StartOffset
}

// Overlaps is the half-open intersection test between two entities of the
// same resource. Empty entities never overlap.
func (e ScheduleEntity) Overlaps(o ScheduleEntity) bool {
	if e.ResourceID != o.ResourceID || e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return e.StartOffset < o.EndOffset && o.StartOffset < e.EndOffset
}

// NewEntity places an entity that starts at start and lasts durationMinutes.
func NewEntity(id, resourceID uuid.UUID, kind EntityKind, start TimePoint, durationMinutes int, label string) (ScheduleEntity, error) {
	if durationMinutes < 0 {
		return ScheduleEntity{}, ErrInvalidInterval
	}
	off, err := ToOffset(start)
	if err != nil {
		return ScheduleEntity{}, err
	}
	return ScheduleEntity{
		ID:          id,
		ResourceID:  resourceID,
		Kind:        kind,
		StartOffset: off,
		EndOffset:   off + Offset(durationMinutes),
		Label:       label,
	}, nil
}

// EntitiesFromShift lays a shift out on the timeline. A wrapping shift is
// split at the window boundary so every returned entity is non-wrapping.
// Unbounded and zero-length shifts produce no entities.
func EntitiesFromShift(id uuid.UUID, shift ShiftInterval, label string) ([]ScheduleEntity, error) {
	w, err := shift.Window()
	if err != nil {
		return nil, err
	}
	if !w.Bounded() || w.Start() == w.End() {
		return nil, nil
	}
	base := ScheduleEntity{ID: id, ResourceID: shift.ResourceID, Kind: KindShift, Label: label}
	if !w.Wraps() {
		e := base
		e.StartOffset, e.EndOffset = w.Start(), w.End()
		return []ScheduleEntity{e}, nil
	}

	out := make([]ScheduleEntity, 0, 2)
	if w.Start() < Offset(WindowMinutes) {
		late := base
		late.StartOffset, late.EndOffset = w.Start(), Offset(WindowMinutes)
		out = append(out, late)
	}
	if w.End() > 0 {
		early := base
		early.StartOffset, early.EndOffset = 0, w.End()
		out = append(out, early)
	}
	return out, nil
}
