package calendar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/penwyp/go-timeline-core/internal/core/constants"
)

// Options controls parsing and display behavior. It is passed explicitly so
// the package stays referentially transparent; there is no process-wide
// format state.
type Options struct {
	// DayFirst selects DD/MM/YYYY day-precision display instead of
	// MM/DD/YYYY. It has no effect on parsing or canonical output.
	DayFirst bool
}

// Grammar: [±]YYYY[ ERA]-MM-DD with ERA one of BCE, BC, CE, AD.
// Year digits are capped at 11 so the magnitude check below cannot overflow.
var dateRe = regexp.MustCompile(`^([+-]?)(\d{1,11})(?:\s+(BCE|BC|CE|AD))?-(\d{1,2})-(\d{1,2})$`)

// Parse converts date text to a Date. The second result is false for any
// violation: bad grammar, month or day out of range for the (leap-aware)
// year, or year magnitude beyond the supported ceiling. It never panics;
// callers iterate over potentially malformed host records and skip failures.
//
// Era years are remapped into astronomical numbering at this boundary:
// 1 BCE becomes year 0, 2 BCE year -1, and so on. Everything downstream is
// plain integer arithmetic.
func Parse(text string, opts Options) (Date, bool) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Date{}, false
	}

	year, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Date{}, false
	}
	if m[1] == "-" {
		year = -year
	}

	switch m[3] {
	case "BCE", "BC":
		year = 1 - year
	case "CE", "AD", "":
		// astronomical already
	}

	if year > constants.MaxAbsYear || year < -constants.MaxAbsYear {
		return Date{}, false
	}

	month, err := strconv.Atoi(m[4])
	if err != nil || month < 1 || month > 12 {
		return Date{}, false
	}
	day, err := strconv.Atoi(m[5])
	if err != nil || day < 1 || day > DaysInMonth(year, month) {
		return Date{}, false
	}

	return FromYMD(year, month, day), true
}
