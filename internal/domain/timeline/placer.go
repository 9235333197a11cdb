package timeline

type Placement struct {
	Entity    ScheduleEntity
	StartSlot int
	SlotSpan  int
}

func (p Placement) StartOffset() Offset { return p.Entity.StartOffset }
func (p Placement) EndOffset() Offset   { return p.Entity.EndOffset }

type Placer struct {
	grid Grid
}

func NewPlacer(g Grid) *Placer {
	return &Placer{grid: g}
}

func (p *Placer) Grid() Grid { return p.grid }

// Place resolves the grid cells an entity occupies.
func (p *Placer) Place(e ScheduleEntity) (Placement, error) {
	if e.EndOffset < e.StartOffset {
		return Placement{}, ErrInvalidInterval
	}
	startSlot, span, err := p.grid.Span(e.StartOffset, e.EndOffset)
	if err != nil {
		return Placement{}, err
	}
	return Placement{Entity: e, StartSlot: startSlot, SlotSpan: span}, nil
}

func (p *Placer) PlaceAll(entities []ScheduleEntity) ([]Placement, error) {
	out := make([]Placement, 0, len(entities))
	for _, e := range entities {
		pl, err := p.Place(e)
		if err != nil {
			return nil, err
		}
		out = append(out, pl)
	}
	return out, nil
}
