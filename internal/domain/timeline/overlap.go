package timeline

import (
	"sort"

	"github.com/google/uuid"
)

// OverlapPair holds two intersecting entities, earlier start first.
type OverlapPair struct {
	First  ScheduleEntity
	Second ScheduleEntity
}

type groupKey struct {
	resource uuid.UUID
	kind     EntityKind
}

type indexed struct {
	pos int
	e   ScheduleEntity
}

// FindOverlaps reports every intersecting pair among entities that share a
// resource and kind. Each group is sorted by start and swept once, keeping
// the entities still open at the current start.
func FindOverlaps(entities []ScheduleEntity) []OverlapPair {
	groups := make(map[groupKey][]indexed)
	var order []groupKey
	for i, e := range entities {
		if e.IsEmpty() {
			continue
		}
		k := groupKey{resource: e.ResourceID, kind: e.Kind}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], indexed{pos: i, e: e})
	}

	var pairs []OverlapPair
	for _, k := range order {
		pairs = append(pairs, sweep(groups[k])...)
	}
	return pairs
}

func sweep(group []indexed) []OverlapPair {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i].e, group[j].e
		if a.StartOffset != b.StartOffset {
			return a.StartOffset < b.StartOffset
		}
		if a.EndOffset != b.EndOffset {
			return a.EndOffset < b.EndOffset
		}
		return group[i].pos < group[j].pos
	})

	var pairs []OverlapPair
	active := make([]indexed, 0, len(group))
	for _, cur := range group {
		kept := active[:0]
		for _, a := range active {
			if a.e.EndOffset > cur.e.StartOffset {
				kept = append(kept, a)
			}
		}
		active = kept
		for _, a := range active {
			pairs = append(pairs, OverlapPair{First: a.e, Second: cur.e})
		}
		active = append(active, cur)
	}
	return pairs
}

// OverlappingIDs collects the ids of entities that appear in any pair.
func OverlappingIDs(pairs []OverlapPair) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(pairs)*2)
	for _, p := range pairs {
		ids[p.First.ID] = struct{}{}
		ids[p.Second.ID] = struct{}{}
	}
	return ids
}
