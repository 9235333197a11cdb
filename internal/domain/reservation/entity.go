package reservation

import "github.com/google/uuid"

// Course is the base menu item of a reservation.
type Course struct {
	id              uuid.UUID
	name            string
	durationMinutes int
	price           Money
}

func NewCourse(id uuid.UUID, name string, durationMinutes int, basePrice int64) (*Course, error) {
	if durationMinutes < 0 {
		return nil, ErrNegativeDuration
	}
	price, err := NewMoney(basePrice)
	if err != nil {
		return nil, err
	}
	return &Course{id: id, name: name, durationMinutes: durationMinutes, price: price}, nil
}

func (c *Course) ID() uuid.UUID        { return c.id }
func (c *Course) Name() string         { return c.name }
func (c *Course) DurationMinutes() int { return c.durationMinutes }
func (c *Course) Price() Money         { return c.price }

// Option is an add-on; each one adds to both duration and price.
type Option struct {
	id              uuid.UUID
	name            string
	durationMinutes int
	price           Money
}

func NewOption(id uuid.UUID, name string, durationMinutes int, price int64) (*Option, error) {
	if durationMinutes < 0 {
		return nil, ErrNegativeDuration
	}
	p, err := NewMoney(price)
	if err != nil {
		return nil, err
	}
	return &Option{id: id, name: name, durationMinutes: durationMinutes, price: p}, nil
}

func (o *Option) ID() uuid.UUID        { return o.id }
func (o *Option) Name() string         { return o.name }
func (o *Option) DurationMinutes() int { return o.durationMinutes }
func (o *Option) Price() Money         { return o.price }
