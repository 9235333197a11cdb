//go:build unit

package timeline_test

import (
	"testing"

	"therapist-management-saas/internal/domain/timeline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// windowOf resolves a shift given directly as offsets.
func windowOf(t *testing.T, start, end timeline.Offset) timeline.ShiftWindow {
	t.Helper()
	s, err := timeline.FromOffset(start)
	require.NoError(t, err)
	e, err := timeline.FromOffset(end)
	require.NoError(t, err)
	w, err := timeline.ShiftInterval{ResourceID: uuid.New(), Start: &s, End: &e}.Window()
	require.NoError(t, err)
	return w
}

func shiftOf(start, end string) timeline.ShiftInterval {
	s := timeline.MustParseTimePoint(start)
	e := timeline.MustParseTimePoint(end)
	return timeline.ShiftInterval{ResourceID: uuid.New(), Start: &s, End: &e}
}

func TestIsWithinShift(t *testing.T) {
	testCases := []struct {
		name  string
		shift timeline.ShiftInterval
		at    string
		want  bool
		errIs error
	}{
		{name: "late shift covers 23:30", shift: shiftOf("22:00", "03:00"), at: "23:30", want: true},
		{name: "late shift covers 02:59", shift: shiftOf("22:00", "03:00"), at: "02:59", want: true},
		{name: "late shift ends before 04:00", shift: shiftOf("22:00", "03:00"), at: "04:00", want: false},
		{name: "late shift excludes noon", shift: shiftOf("22:00", "03:00"), at: "12:00", want: false},
		{name: "end is exclusive", shift: shiftOf("12:00", "18:00"), at: "18:00", want: false},
		{name: "start is inclusive", shift: shiftOf("12:00", "18:00"), at: "12:00", want: true},
		{name: "wrapping shift covers a late time", shift: shiftOf("03:00", "12:00"), at: "04:30", want: true},
		{name: "wrapping shift covers an early time", shift: shiftOf("03:00", "12:00"), at: "11:00", want: true},
		{name: "wrapping shift excludes middle", shift: shiftOf("03:00", "12:00"), at: "20:00", want: false},
		{name: "zero length shift is never available", shift: shiftOf("15:00", "15:00"), at: "15:00", want: false},
		{name: "no shift recorded is always available", shift: timeline.ShiftInterval{ResourceID: uuid.New()}, at: "04:00", want: true},
		{name: "time in closed hours", shift: shiftOf("12:00", "18:00"), at: "08:00", errIs: timeline.ErrOutOfOperatingWindow},
		{name: "shift bound in closed hours", shift: shiftOf("07:00", "18:00"), at: "12:00", errIs: timeline.ErrOutOfOperatingWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := timeline.IsWithinShift(tc.shift, timeline.MustParseTimePoint(tc.at))
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, actual)
		})
	}
}

func TestShiftWindow_MembershipTotality(t *testing.T) {
	samples := []struct{ start, end timeline.Offset }{
		{0, 60},
		{120, 1140},
		{720, 1020},
		{1020, 120},
		{1139, 0},
		{600, 599},
		{5, 1100},
	}

	for _, s := range samples {
		w := windowOf(t, s.start, s.end)
		want := int(s.end - s.start)
		if s.end < s.start {
			want = timeline.WindowMinutes - int(s.start-s.end)
		}

		got := 0
		for p := 0; p < timeline.WindowMinutes; p++ {
			if w.Contains(timeline.Offset(p)) {
				got++
			}
		}
		assert.Equal(t, want, got, "shift [%d,%d)", s.start, s.end)
		assert.Equal(t, want, w.Minutes(), "shift [%d,%d)", s.start, s.end)
	}
}

func TestShiftWindow_ZeroLength(t *testing.T) {
	w := windowOf(t, 300, 300)
	for p := 0; p < timeline.WindowMinutes; p++ {
		require.False(t, w.Contains(timeline.Offset(p)))
	}
	assert.Equal(t, 0, w.Minutes())
}

func TestShiftWindow_Covers(t *testing.T) {
	plain := windowOf(t, 120, 600)
	assert.True(t, plain.Covers(120, 600))
	assert.True(t, plain.Covers(200, 260))
	assert.False(t, plain.Covers(90, 150))
	assert.False(t, plain.Covers(580, 620))

	wrap := windowOf(t, 1000, 60)
	assert.True(t, wrap.Covers(1000, 1100))
	assert.True(t, wrap.Covers(0, 60))
	assert.False(t, wrap.Covers(30, 90))

	var unbounded timeline.ShiftWindow
	assert.True(t, unbounded.Covers(0, 1140))
}

func TestShiftWindow_Mask(t *testing.T) {
	w := windowOf(t, 60, 120)
	mask := w.Mask(timeline.DefaultGrid())
	require.Len(t, mask, 228)

	in := 0
	for i, v := range mask {
		if v {
			in++
			assert.True(t, i >= 12 && i < 24, "slot %d", i)
		}
	}
	assert.Equal(t, 12, in)
}
