// Package layer assigns each date-ranged entity an integer lane so that
// temporally overlapping entities never share one, staying as close as
// possible to a caller-declared preferred lane. The sweep is greedy and
// deterministic: stable under small incremental changes rather than a
// globally optimal interval coloring.
package layer

import (
	"math"
	"sort"

	"github.com/penwyp/go-timeline-core/internal/core/constants"
	"github.com/penwyp/go-timeline-core/internal/core/model"
)

// Assignment pairs an entity identity with its computed lane. Assign returns
// assignments instead of mutating the caller's entities; the caller merges
// them back, which keeps the sweep free of aliasing hazards.
type Assignment struct {
	Identity string `json:"identity"`
	Layer    int    `json:"layer"`
}

// Overlaps tests two closed day intervals; touching endpoints count as
// overlap.
func Overlaps(s1, e1, s2, e2 int64) bool {
	return !(e1 < s2) && !(e2 < s1)
}

// SortForAssignment returns a copy sorted stably ascending by start date,
// ties broken by end date so shorter ranges come first.
func SortForAssignment(entities []model.Entity) []model.Entity {
	sorted := make([]model.Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].Start.DayOffset(), sorted[j].Start.DayOffset()
		if si != sj {
			return si < sj
		}
		return sorted[i].End.DayOffset() < sorted[j].End.DayOffset()
	})
	return sorted
}

type placed struct {
	start, end int64
	layer      int
}

// Assign computes a lane for each entity of a sorted batch, left to right.
// Each entity first tries its preferred lane, then alternating offsets
// +1, -1, +2, -2, ... up to a bounded distance. When the search is
// exhausted the entity falls back to its preferred lane and accepts the
// visual overlap: dropping an entity is worse than an occasional collision.
func Assign(sorted []model.Entity) []Assignment {
	bound := 2 * len(sorted)
	if bound < constants.LaneSearchBoundFloor {
		bound = constants.LaneSearchBoundFloor
	}

	assignments := make([]Assignment, 0, len(sorted))
	occupied := make([]placed, 0, len(sorted))

	for _, e := range sorted {
		start, end := e.Start.DayOffset(), e.End.DayOffset()
		lane := e.PreferredLayer

		for step := 0; step <= bound; step++ {
			var candidate int
			if step%2 == 1 {
				candidate = e.PreferredLayer + (step+1)/2
			} else if step == 0 {
				candidate = e.PreferredLayer
			} else {
				candidate = e.PreferredLayer - step/2
			}
			if laneFree(occupied, candidate, start, end) {
				lane = candidate
				break
			}
		}

		occupied = append(occupied, placed{start: start, end: end, layer: lane})
		assignments = append(assignments, Assignment{Identity: e.Identity, Layer: lane})
	}
	return assignments
}

// laneFree reports whether no already-placed entity on the candidate lane
// overlaps the interval.
func laneFree(occupied []placed, lane int, start, end int64) bool {
	for _, p := range occupied {
		if p.layer == lane && Overlaps(start, end, p.start, p.end) {
			return false
		}
	}
	return true
}

// Merge writes assignments back onto a copy of the caller's entities,
// matching by identity; entities without an assignment are left unchanged.
func Merge(entities []model.Entity, assignments []Assignment) []model.Entity {
	byIdentity := make(map[string]int, len(assignments))
	for _, a := range assignments {
		byIdentity[a.Identity] = a.Layer
	}
	merged := make([]model.Entity, len(entities))
	copy(merged, entities)
	for i := range merged {
		if lane, ok := byIdentity[merged[i].Identity]; ok {
			merged[i].AssignedLayer = lane
		}
	}
	return merged
}

// LayerToOffset maps a lane to its vertical world position: lane 0 sits on
// the base axis, positive and negative lanes fan out in opposite directions
// at fixed spacing.
func LayerToOffset(lane int) float64 {
	return constants.LaneBasePx + float64(lane)*constants.LaneSpacingPx
}

// OffsetToLayer recovers the candidate lane for a dropped vertical position,
// snapped to the nearest integer lane.
func OffsetToLayer(offset float64) int {
	return int(math.Round((offset - constants.LaneBasePx) / constants.LaneSpacingPx))
}
