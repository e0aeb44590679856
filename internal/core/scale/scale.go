// Package scale maps day-index to world position to screen position and
// derives a discrete scale level from zoom density. The time axis applies
// only translation between world and screen so that large world magnitudes
// are never multiplied by a large zoom, which would compound precision loss.
package scale

import (
	"math"

	"github.com/penwyp/go-timeline-core/internal/core/constants"
)

// DayToWorld converts a day index to a world coordinate.
func DayToWorld(day, pxPerDay float64) float64 {
	return day * pxPerDay
}

// WorldToDay is the exact inverse of DayToWorld. Degenerate pxPerDay
// yields 0 rather than Inf so one bad frame cannot poison the camera.
func WorldToDay(world, pxPerDay float64) float64 {
	if pxPerDay <= 0 {
		return 0
	}
	return world / pxPerDay
}

// WorldToScreen translates a world coordinate into screen space.
func WorldToScreen(world, pan float64) float64 {
	return world + pan
}

// ScreenToWorld is the exact inverse of WorldToScreen.
func ScreenToWorld(screen, pan float64) float64 {
	return screen - pan
}

// DaysPerUnit returns the day span of one ruler unit at the given level:
// day, month, year, decade, century, then powers of ten years.
func DaysPerUnit(level int) float64 {
	switch {
	case level <= 0:
		return 1
	case level == 1:
		return 30
	case level == 2:
		return 365
	case level == 3:
		return 3650
	case level == 4:
		return 36500
	default:
		return 365 * math.Pow(10, float64(level-2))
	}
}

// ChooseLevel picks the smallest level whose units are at least the minimum
// legible marker spacing apart at the given density. Non-decreasing as
// pxPerDay shrinks; capped so degenerate densities cannot loop unboundedly.
func ChooseLevel(pxPerDay float64) int {
	if pxPerDay <= 0 {
		return constants.MaxScaleLevel
	}
	for level := 0; level < constants.MaxScaleLevel; level++ {
		if pxPerDay*DaysPerUnit(level) >= constants.MinMarkerSpacingPx {
			return level
		}
	}
	return constants.MaxScaleLevel
}

// MinResizeWidth returns the smallest legal resize width in pixels: one
// ruler unit at the current level, so a drag cannot create a duration below
// grid resolution.
func MinResizeWidth(pxPerDay float64) float64 {
	if pxPerDay <= 0 {
		return 0
	}
	return DaysPerUnit(ChooseLevel(pxPerDay)) * pxPerDay
}

// unitYears returns the year span of one unit for levels >= 2.
func unitYears(level int) int64 {
	uy := int64(1)
	for i := 2; i < level; i++ {
		uy *= 10
	}
	return uy
}

// floorDiv rounds toward negative infinity; plain / truncates toward zero,
// which mis-aligns unit starts for negative years.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
