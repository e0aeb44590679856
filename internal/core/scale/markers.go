package scale

import (
	"math"

	"github.com/penwyp/go-timeline-core/internal/core/calendar"
	"github.com/penwyp/go-timeline-core/internal/core/constants"
	"github.com/penwyp/go-timeline-core/internal/core/model"
)

// GenerateMarkers produces the ruler ticks visible in the viewport at the
// given level and camera.
//
// Each unit's start day is computed directly with calendar arithmetic, never
// by multiplying an approximate unit length by a loop counter, so marker
// positions do not drift over spans of billions of years. Generated screen
// positions always fall within [-1, viewportWidth+1]. Degenerate zoom or a
// zero-width viewport yields an empty result, never a panic.
func GenerateMarkers(level int, pxPerDay, pan, viewportWidth float64) []model.Marker {
	if pxPerDay <= 0 || viewportWidth <= 0 || math.IsNaN(pxPerDay) || math.IsNaN(pan) {
		return nil
	}

	dayLeft := clampDay((-1 - pan) / pxPerDay)
	dayRight := clampDay((viewportWidth + 1 - pan) / pxPerDay)

	switch {
	case level <= 0:
		return dayMarkers(dayLeft, dayRight, pxPerDay, pan, viewportWidth)
	case level == 1:
		return monthMarkers(dayLeft, pxPerDay, pan, viewportWidth)
	default:
		return yearMarkers(level, dayLeft, pxPerDay, pan, viewportWidth)
	}
}

// dayMarkers emits one marker per day, major on the 1st of each month.
func dayMarkers(dayLeft, dayRight, pxPerDay, pan, viewportWidth float64) []model.Marker {
	var markers []model.Marker
	day := int64(math.Floor(dayLeft))
	for i := 0; i < constants.MarkerIterationCap && float64(day) <= dayRight; i++ {
		screen := float64(day)*pxPerDay + pan
		if screen >= -1 && screen <= viewportWidth+1 {
			_, _, dom := calendar.FromDayOffset(day).Decompose()
			markers = append(markers, model.Marker{
				ScreenPosition: screen,
				UnitIndex:      day,
				IsMajor:        dom == 1,
			})
		}
		day++
	}
	return markers
}

// monthMarkers emits one marker per month at the month's true start day,
// major on January.
func monthMarkers(dayLeft, pxPerDay, pan, viewportWidth float64) []model.Marker {
	var markers []model.Marker
	year, month, _ := calendar.FromDayOffset(int64(math.Floor(dayLeft))).Decompose()
	idx := year*12 + int64(month-1)
	for i := 0; i < constants.MarkerIterationCap; i++ {
		y := floorDiv(idx, 12)
		m := int(idx-y*12) + 1
		screen := float64(calendar.MonthStart(y, m))*pxPerDay + pan
		if screen > viewportWidth+1 {
			break
		}
		if screen >= -1 {
			markers = append(markers, model.Marker{
				ScreenPosition: screen,
				UnitIndex:      idx,
				IsMajor:        m == 1,
			})
		}
		idx++
	}
	return markers
}

// yearMarkers emits one marker per 10^(level-2) years at the unit's true
// January 1st, major on every tenth unit.
func yearMarkers(level int, dayLeft, pxPerDay, pan, viewportWidth float64) []model.Marker {
	var markers []model.Marker
	uy := unitYears(level)
	unit := floorDiv(calendar.FromDayOffset(int64(math.Floor(dayLeft))).Year(), uy)
	for i := 0; i < constants.MarkerIterationCap; i++ {
		screen := float64(calendar.YearStart(unit*uy))*pxPerDay + pan
		if screen > viewportWidth+1 {
			break
		}
		if screen >= -1 {
			markers = append(markers, model.Marker{
				ScreenPosition: screen,
				UnitIndex:      unit,
				IsMajor:        unit%10 == 0,
			})
		}
		unit++
	}
	return markers
}

// maxDayMagnitude comfortably exceeds the day span of the supported year
// range (~7.3e12 days) while staying safely convertible to int64.
const maxDayMagnitude = 1e15

// clampDay bounds a day index so float-to-int conversion stays defined even
// for pathological cameras.
func clampDay(day float64) float64 {
	if math.IsNaN(day) {
		return 0
	}
	return math.Max(-maxDayMagnitude, math.Min(maxDayMagnitude, day))
}

// UnitStart recovers the day-offset a marker's unit index refers to: the
// day itself at level 0, the month start at level 1, the aligned year start
// above that.
func UnitStart(level int, unitIndex int64) int64 {
	switch {
	case level <= 0:
		return unitIndex
	case level == 1:
		y := floorDiv(unitIndex, 12)
		return calendar.MonthStart(y, int(unitIndex-y*12)+1)
	default:
		return calendar.YearStart(unitIndex * unitYears(level))
	}
}

// SnapToUnit returns the start day of the unit containing the given day at
// the given level: the nearest day, the 1st of the month, January 1st, or
// the start of the containing decade/century/... block.
func SnapToUnit(day float64, level int) int64 {
	d := int64(math.Round(clampDay(day)))
	switch {
	case level <= 0:
		return d
	case level == 1:
		y, m, _ := calendar.FromDayOffset(d).Decompose()
		return calendar.MonthStart(y, m)
	default:
		uy := unitYears(level)
		year := calendar.FromDayOffset(d).Year()
		return calendar.YearStart(floorDiv(year, uy) * uy)
	}
}
