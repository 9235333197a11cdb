package timeline

import "fmt"

func SlotCount(granularity int) (int, error) {
	if granularity <= 0 || WindowMinutes%granularity != 0 {
		return 0, fmt.Errorf("granularity %d: %w", granularity, ErrOutOfRange)
	}
	return WindowMinutes / granularity, nil
}

func SlotIndex(offset Offset, granularity int) (int, error) {
	count, err := SlotCount(granularity)
	if err != nil {
		return 0, err
	}
	if offset < 0 {
		return 0, fmt.Errorf("offset %d: %w", offset, ErrOutOfRange)
	}
	idx := int(offset) / granularity
	if idx >= count {
		return 0, fmt.Errorf("offset %d: %w", offset, ErrOutOfRange)
	}
	return idx, nil
}

func SlotToOffset(index, granularity int) (Offset, error) {
	count, err := SlotCount(granularity)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= count {
		return 0, fmt.Errorf("slot %d: %w", index, ErrOutOfRange)
	}
	return Offset(index * granularity), nil
}

// Grid is the operating window cut into equal slots.
type Grid struct {
	granularity int
	slots       int
}

type Slot struct {
	Index     int
	Offset    Offset
	Label     string
	HourStart bool
}

func NewGrid(granularity int) (Grid, error) {
	count, err := SlotCount(granularity)
	if err != nil {
		return Grid{}, err
	}
	return Grid{granularity: granularity, slots: count}, nil
}

func DefaultGrid() Grid {
	return Grid{granularity: DefaultGranularity, slots: WindowMinutes / DefaultGranularity}
}

func (g Grid) Granularity() int { return g.granularity }
func (g Grid) SlotCount() int   { return g.slots }

func (g Grid) SlotIndex(offset Offset) (int, error) {
	return SlotIndex(offset, g.granularity)
}

func (g Grid) SlotToOffset(index int) (Offset, error) {
	return SlotToOffset(index, g.granularity)
}

func (g Grid) Slots() []Slot {
	out := make([]Slot, g.slots)
	for i := range out {
		off := Offset(i * g.granularity)
		tp, _ := FromOffset(off)
		out[i] = Slot{
			Index:     i,
			Offset:    off,
			Label:     tp.String(),
			HourStart: int(off)%60 == 0,
		}
	}
	return out
}

// Span returns the first slot of [start, end) and the number of slots it
// covers, rounding a partial trailing slot up.
func (g Grid) Span(start, end Offset) (startSlot, span int, err error) {
	if end < start {
		return 0, 0, ErrInvalidInterval
	}
	startSlot, err = g.SlotIndex(start)
	if err != nil {
		return 0, 0, err
	}
	dur := int(end - start)
	span = (dur + g.granularity - 1) / g.granularity
	return startSlot, span, nil
}
