//go:build unit

package timeline_test

import (
	"testing"

	"therapist-management-saas/internal/domain/timeline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idPair struct{ a, b uuid.UUID }

func pairKey(a, b uuid.UUID) idPair {
	if a.String() > b.String() {
		a, b = b, a
	}
	return idPair{a, b}
}

func pairSet(pairs []timeline.OverlapPair) map[idPair]struct{} {
	set := make(map[idPair]struct{}, len(pairs))
	for _, p := range pairs {
		set[pairKey(p.First.ID, p.Second.ID)] = struct{}{}
	}
	return set
}

func TestFindOverlaps(t *testing.T) {
	therapist := uuid.New()

	t.Run("intersecting reservations form one pair", func(t *testing.T) {
		a := entity(therapist, timeline.KindReservation, 0, 60)
		b := entity(therapist, timeline.KindReservation, 30, 90)

		pairs := timeline.FindOverlaps([]timeline.ScheduleEntity{b, a})
		require.Len(t, pairs, 1)
		assert.Equal(t, a.ID, pairs[0].First.ID)
		assert.Equal(t, b.ID, pairs[0].Second.ID)
	})

	t.Run("back to back reservations do not overlap", func(t *testing.T) {
		a := entity(therapist, timeline.KindReservation, 0, 60)
		b := entity(therapist, timeline.KindReservation, 60, 120)
		assert.Empty(t, timeline.FindOverlaps([]timeline.ScheduleEntity{a, b}))
	})

	t.Run("long reservation overlapping a non-adjacent one", func(t *testing.T) {
		long := entity(therapist, timeline.KindReservation, 0, 300)
		short := entity(therapist, timeline.KindReservation, 10, 20)
		later := entity(therapist, timeline.KindReservation, 100, 160)

		set := pairSet(timeline.FindOverlaps([]timeline.ScheduleEntity{later, short, long}))
		assert.Len(t, set, 2)
		assert.Contains(t, set, pairKey(long.ID, later.ID))
		assert.Contains(t, set, pairKey(long.ID, short.ID))
	})

	t.Run("zero length entities never overlap", func(t *testing.T) {
		a := entity(therapist, timeline.KindReservation, 0, 60)
		z := entity(therapist, timeline.KindReservation, 30, 30)
		assert.Empty(t, timeline.FindOverlaps([]timeline.ScheduleEntity{a, z}))
	})

	t.Run("different resources and kinds are separate groups", func(t *testing.T) {
		a := entity(therapist, timeline.KindReservation, 0, 60)
		other := entity(uuid.New(), timeline.KindReservation, 0, 60)
		shift := entity(therapist, timeline.KindShift, 0, 600)
		assert.Empty(t, timeline.FindOverlaps([]timeline.ScheduleEntity{a, other, shift}))
	})

	t.Run("identical intervals are reported once", func(t *testing.T) {
		a := entity(therapist, timeline.KindReservation, 0, 60)
		b := entity(therapist, timeline.KindReservation, 0, 60)
		pairs := timeline.FindOverlaps([]timeline.ScheduleEntity{a, b})
		require.Len(t, pairs, 1)
		assert.NotEqual(t, pairs[0].First.ID, pairs[0].Second.ID)
	})
}

func TestFindOverlaps_Symmetry(t *testing.T) {
	therapist := uuid.New()
	entities := []timeline.ScheduleEntity{
		entity(therapist, timeline.KindReservation, 0, 90),
		entity(therapist, timeline.KindReservation, 45, 100),
		entity(therapist, timeline.KindReservation, 95, 180),
		entity(therapist, timeline.KindReservation, 180, 240),
		entity(therapist, timeline.KindReservation, 200, 210),
		entity(therapist, timeline.KindReservation, 600, 600),
	}

	reversed := make([]timeline.ScheduleEntity, len(entities))
	for i, e := range entities {
		reversed[len(entities)-1-i] = e
	}

	forward := pairSet(timeline.FindOverlaps(entities))
	backward := pairSet(timeline.FindOverlaps(reversed))
	assert.Equal(t, forward, backward)

	// brute force agreement
	expected := 0
	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			if entities[i].Overlaps(entities[j]) {
				require.True(t, entities[j].Overlaps(entities[i]))
				expected++
			}
		}
	}
	assert.Len(t, forward, expected)
	assert.Equal(t, 3, expected)

	ids := timeline.OverlappingIDs(timeline.FindOverlaps(entities))
	assert.Len(t, ids, 5)
}
