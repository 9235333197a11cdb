package timeline

import "github.com/google/uuid"

// ShiftInterval is a therapist's working hours for one business day.
// A nil bound means no shift was recorded.
type ShiftInterval struct {
	ResourceID uuid.UUID
	Start      *TimePoint
	End        *TimePoint
}

func (s ShiftInterval) HasBounds() bool {
	return s.Start != nil && s.End != nil
}

// ShiftWindow is a ShiftInterval resolved to offsets.
type ShiftWindow struct {
	bounded bool
	start   Offset
	end     Offset
}

func (s ShiftInterval) Window() (ShiftWindow, error) {
	if !s.HasBounds() {
		return ShiftWindow{}, nil
	}
	start, err := ToOffset(*s.Start)
	if err != nil {
		return ShiftWindow{}, err
	}
	end, err := ToOffset(*s.End)
	if err != nil {
		return ShiftWindow{}, err
	}
	return ShiftWindow{bounded: true, start: start, end: end}, nil
}

func (w ShiftWindow) Bounded() bool { return w.bounded }
func (w ShiftWindow) Start() Offset { return w.start }
func (w ShiftWindow) End() Offset   { return w.end }

// Wraps reports whether the shift runs past the window end and resumes at its start.
func (w ShiftWindow) Wraps() bool {
	return w.bounded && w.end < w.start
}

// Contains applies the half-open membership rule. Unbounded windows contain
// everything; a zero-length window contains nothing.
func (w ShiftWindow) Contains(o Offset) bool {
	if !w.bounded {
		return true
	}
	switch {
	case w.start == w.end:
		return false
	case w.end < w.start:
		return o >= w.start || o < w.end
	default:
		return o >= w.start && o < w.end
	}
}

// Minutes is the covered arc length inside the operating window.
func (w ShiftWindow) Minutes() int {
	switch {
	case !w.bounded:
		return WindowMinutes
	case w.end < w.start:
		return WindowMinutes - int(w.start-w.end)
	default:
		return int(w.end - w.start)
	}
}

// Covers reports whether every minute of [start, end) is inside the window.
func (w ShiftWindow) Covers(start, end Offset) bool {
	if !w.bounded {
		return true
	}
	if end <= start {
		return w.Contains(start)
	}
	if w.end < w.start {
		return (start >= w.start && end <= Offset(WindowMinutes)) || end <= w.end
	}
	return start >= w.start && end <= w.end
}

// Mask marks each grid slot whose start lies inside the window.
func (w ShiftWindow) Mask(g Grid) []bool {
	out := make([]bool, g.SlotCount())
	for i := range out {
		out[i] = w.Contains(Offset(i * g.Granularity()))
	}
	return out
}

func IsWithinShift(shift ShiftInterval, at TimePoint) (bool, error) {
	w, err := shift.Window()
	if err != nil {
		return false, err
	}
	if !w.Bounded() {
		return true, nil
	}
	p, err := ToOffset(at)
	if err != nil {
		return false, err
	}
	return w.Contains(p), nil
}
