package reservation

// Money is a whole-yen amount. No fractional currency is modelled.
type Money struct {
	yen int64
}

func NewMoney(yen int64) (Money, error) {
	if yen < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{yen: yen}, nil
}

// MoneyOrZero treats absent and negative amounts as zero.
func MoneyOrZero(yen *int64) Money {
	if yen == nil || *yen < 0 {
		return Money{}
	}
	return Money{yen: *yen}
}

func (m Money) Yen() int64 {
	return m.yen
}

func (m Money) IsZero() bool {
	return m.yen == 0
}

func (m Money) Add(other Money) Money {
	return Money{yen: m.yen + other.yen}
}

// ApplyDiscount subtracts the discount and clamps at zero.
func (m Money) ApplyDiscount(discount Discount) Money {
	remaining := m.yen - discount.amount
	if remaining < 0 {
		remaining = 0
	}
	return Money{yen: remaining}
}

type Discount struct {
	amount int64
}

func NewDiscount(amount int64) (Discount, error) {
	if amount < 0 {
		return Discount{}, ErrNegativeDiscount
	}
	return Discount{amount: amount}, nil
}

func (d Discount) Amount() int64 {
	return d.amount
}
