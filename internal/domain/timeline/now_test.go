//go:build unit

package timeline_test

import (
	"testing"
	"time"

	"therapist-management-saas/internal/domain/timeline"

	"github.com/stretchr/testify/assert"
)

func TestNowIndicator(t *testing.T) {
	jst := time.FixedZone("Asia/Tokyo", 9*60*60)

	testCases := []struct {
		name   string
		now    time.Time
		want   timeline.Offset
		inside bool
	}{
		{name: "opening", now: time.Date(2025, 4, 1, 10, 0, 0, 0, jst), want: 0, inside: true},
		{name: "evening", now: time.Date(2025, 4, 1, 21, 42, 30, 0, jst), want: 702, inside: true},
		{name: "after midnight", now: time.Date(2025, 4, 2, 1, 15, 0, 0, jst), want: 915, inside: true},
		{name: "closing", now: time.Date(2025, 4, 2, 5, 0, 0, 0, jst), inside: false},
		{name: "closed morning", now: time.Date(2025, 4, 2, 8, 0, 0, 0, jst), inside: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			off, ok := timeline.NowIndicator(tc.now)
			assert.Equal(t, tc.inside, ok)
			if tc.inside {
				assert.Equal(t, tc.want, off)
			}
		})
	}
}

func TestBusinessDate(t *testing.T) {
	jst := time.FixedZone("Asia/Tokyo", 9*60*60)

	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, jst), timeline.BusinessDate(time.Date(2025, 4, 1, 23, 0, 0, 0, jst)))
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, jst), timeline.BusinessDate(time.Date(2025, 4, 2, 3, 30, 0, 0, jst)))
	assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, jst), timeline.BusinessDate(time.Date(2025, 4, 2, 8, 0, 0, 0, jst)))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, jst), timeline.BusinessDate(time.Date(2025, 3, 1, 1, 0, 0, 0, jst)))
}
