//go:build unit

package reservation_test

import (
	"testing"

	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/domain/timeline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCourse(t *testing.T, minutes int, price int64) *reservation.Course {
	t.Helper()
	c, err := reservation.NewCourse(uuid.New(), "course", minutes, price)
	require.NoError(t, err)
	return c
}

func mustOption(t *testing.T, minutes int, price int64) *reservation.Option {
	t.Helper()
	o, err := reservation.NewOption(uuid.New(), "option", minutes, price)
	require.NoError(t, err)
	return o
}

func mustMoney(t *testing.T, yen int64) reservation.Money {
	t.Helper()
	m, err := reservation.NewMoney(yen)
	require.NoError(t, err)
	return m
}

func mustDiscount(t *testing.T, yen int64) reservation.Discount {
	t.Helper()
	d, err := reservation.NewDiscount(yen)
	require.NoError(t, err)
	return d
}

func TestCalculate(t *testing.T) {
	course := mustCourse(t, 60, 6000)
	extension := mustOption(t, 30, 3000)

	testCases := []struct {
		name     string
		course   *reservation.Course
		options  []*reservation.Option
		fee      int64
		discount int64
		want     reservation.PriceBreakdown
	}{
		{
			name:    "course option and nomination fee",
			course:  course,
			options: []*reservation.Option{extension},
			fee:     1000,
			want: reservation.PriceBreakdown{
				Designation: reservation.DesignationNomination,
				BasePrice:   6000, OptionsPrice: 3000, NominationFee: 1000,
				TotalPrice: 10000, TotalDurationMinutes: 90,
			},
		},
		{
			name:     "discount larger than total clamps to zero",
			course:   course,
			options:  []*reservation.Option{extension},
			fee:      1000,
			discount: 15000,
			want: reservation.PriceBreakdown{
				Designation: reservation.DesignationNomination,
				BasePrice:   6000, OptionsPrice: 3000, NominationFee: 1000, DiscountAmount: 15000,
				TotalPrice: 0, TotalDurationMinutes: 90,
			},
		},
		{
			name:     "discount equal to total",
			course:   course,
			discount: 6000,
			want: reservation.PriceBreakdown{
				Designation: reservation.DesignationNomination,
				BasePrice:   6000, DiscountAmount: 6000,
				TotalPrice: 0, TotalDurationMinutes: 60,
			},
		},
		{
			name:    "nil course and nil option",
			options: []*reservation.Option{nil, extension},
			want: reservation.PriceBreakdown{
				Designation:  reservation.DesignationNomination,
				OptionsPrice: 3000, TotalPrice: 3000, TotalDurationMinutes: 30,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := reservation.Calculate(tc.course, tc.options, reservation.DesignationNomination,
				mustMoney(t, tc.fee), mustDiscount(t, tc.discount))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculateMonotonicity(t *testing.T) {
	course := mustCourse(t, 60, 6000)
	fee := mustMoney(t, 1000)
	pool := []*reservation.Option{
		mustOption(t, 30, 3000),
		mustOption(t, 0, 500),
		mustOption(t, 15, 0),
		mustOption(t, 45, 4500),
	}

	t.Run("adding options never decreases price or duration", func(t *testing.T) {
		var selected []*reservation.Option
		prev := reservation.Calculate(course, selected, reservation.DesignationFree, fee, reservation.Discount{})
		for _, o := range pool {
			selected = append(selected, o)
			next := reservation.Calculate(course, selected, reservation.DesignationFree, fee, reservation.Discount{})
			assert.GreaterOrEqual(t, next.OptionsPrice, prev.OptionsPrice)
			assert.GreaterOrEqual(t, next.TotalDurationMinutes, prev.TotalDurationMinutes)
			prev = next
		}
	})

	t.Run("raising the discount never raises the total", func(t *testing.T) {
		prevTotal := int64(-1)
		for amount := int64(20000); amount >= 0; amount -= 250 {
			got := reservation.Calculate(course, pool, reservation.DesignationFree, fee, mustDiscount(t, amount))
			assert.GreaterOrEqual(t, got.TotalPrice, int64(0))
			if prevTotal >= 0 {
				assert.GreaterOrEqual(t, got.TotalPrice, prevTotal)
			}
			prevTotal = got.TotalPrice
		}
	})
}

func TestPriceBreakdownEndTime(t *testing.T) {
	b := reservation.PriceBreakdown{TotalDurationMinutes: 90}

	end, err := b.EndTime(timeline.MustParseTimePoint("23:30"))

	require.NoError(t, err)
	assert.Equal(t, "01:00", end.String())
}

func TestNewValueObjectsRejectNegatives(t *testing.T) {
	_, err := reservation.NewMoney(-1)
	assert.ErrorIs(t, err, reservation.ErrNegativePrice)

	_, err = reservation.NewDiscount(-1)
	assert.ErrorIs(t, err, reservation.ErrNegativeDiscount)

	_, err = reservation.NewCourse(uuid.New(), "x", -5, 100)
	assert.ErrorIs(t, err, reservation.ErrNegativeDuration)

	_, err = reservation.NewOption(uuid.New(), "x", 10, -100)
	assert.ErrorIs(t, err, reservation.ErrNegativePrice)
}
