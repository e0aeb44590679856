package calendar

import (
	"fmt"
	"strings"
)

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// CanonicalString renders the round-trip/persisted form: [±]YYYY-MM-DD in
// astronomical numbering, year zero-padded to four digits, no sign for
// non-negative years. Parse(CanonicalString(d)) always succeeds.
func CanonicalString(d Date) string {
	year, month, day := d.Decompose()
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// FormatForLevel renders a date for display at the given scale level:
// level 0 full day precision (day/month order per opts), level 1 month and
// year, level 2 and up year only, abbreviated to k/M/B once the year
// magnitude passes 10,000. Era translation happens only here and in Parse.
func FormatForLevel(d Date, level int, opts Options) string {
	year, month, day := d.Decompose()
	displayYear, bce := eraYear(year)

	switch {
	case level <= 0:
		var s string
		if opts.DayFirst {
			s = fmt.Sprintf("%02d/%02d/%d", day, month, displayYear)
		} else {
			s = fmt.Sprintf("%02d/%02d/%d", month, day, displayYear)
		}
		if bce {
			s += " BCE"
		}
		return s
	case level == 1:
		s := fmt.Sprintf("%s %d", monthNames[month-1], displayYear)
		if bce {
			s += " BCE"
		}
		return s
	default:
		return formatYear(displayYear, bce)
	}
}

// eraYear translates an astronomical year into historical numbering:
// year 0 is 1 BCE, -1 is 2 BCE.
func eraYear(year int64) (displayYear int64, bce bool) {
	if year <= 0 {
		return 1 - year, true
	}
	return year, false
}

// formatYear renders a historical year, switching to k/M/B abbreviations
// past 10,000 so axis labels stay short at deep zoom-out.
func formatYear(displayYear int64, bce bool) string {
	if displayYear <= 10000 {
		if bce {
			return fmt.Sprintf("%d BCE", displayYear)
		}
		return fmt.Sprintf("%d", displayYear)
	}

	var scaled float64
	var suffix string
	switch {
	case displayYear >= 1_000_000_000:
		scaled, suffix = float64(displayYear)/1e9, "B"
	case displayYear >= 1_000_000:
		scaled, suffix = float64(displayYear)/1e6, "M"
	default:
		scaled, suffix = float64(displayYear)/1e3, "k"
	}

	s := strings.TrimSuffix(fmt.Sprintf("%.1f", scaled), ".0")
	era := "CE"
	if bce {
		era = "BCE"
	}
	return fmt.Sprintf("%s%s %s", s, suffix, era)
}
