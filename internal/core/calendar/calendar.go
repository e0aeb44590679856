// Package calendar implements arbitrary-range proleptic-Gregorian date
// arithmetic on a single integer day-offset from 1970-01-01. It deliberately
// avoids time.Time, whose range is far too small for timeline spans measured
// in billions of years; all conversions go through a Julian-Day-Number style
// round trip so decomposition stays O(1) at any magnitude.
package calendar

// Date is an immutable calendar value. The day-offset is the sole canonical
// representation; the year/month/day decomposition is derived lazily and
// cached in a cell shared by all copies of the value. Equality must go
// through DayOffset or Equal, never struct comparison.
type Date struct {
	offset int64
	memo   *ymd
}

type ymd struct {
	valid bool
	year  int64
	month int
	day   int
}

// FromDayOffset builds a Date from a day count relative to 1970-01-01.
// Total: every int64 input yields a usable value.
func FromDayOffset(n int64) Date {
	return Date{offset: n, memo: &ymd{}}
}

// FromYMD builds a Date from an astronomical-numbering year, month and day.
// The caller is responsible for field validity; Parse is the validating path.
func FromYMD(year int64, month, day int) Date {
	return Date{
		offset: daysFromCivil(year, month, day),
		memo:   &ymd{valid: true, year: year, month: month, day: day},
	}
}

// DayOffset returns the canonical day count from 1970-01-01.
func (d Date) DayOffset() int64 { return d.offset }

// AddDays returns a new Date shifted by n days.
func (d Date) AddDays(n int64) Date { return FromDayOffset(d.offset + n) }

// Compare returns -1, 0 or 1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.offset < other.offset:
		return -1
	case d.offset > other.offset:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two dates name the same day.
func (d Date) Equal(other Date) bool { return d.offset == other.offset }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.offset < other.offset }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.offset > other.offset }

// Decompose returns the astronomical {year, month, day} for the offset.
// The result is memoized; repeated calls on copies of the same value share
// the cached cell.
func (d Date) Decompose() (year int64, month, day int) {
	if d.memo != nil && d.memo.valid {
		return d.memo.year, d.memo.month, d.memo.day
	}
	year, month, day = civilFromDays(d.offset)
	if d.memo != nil {
		d.memo.year, d.memo.month, d.memo.day = year, month, day
		d.memo.valid = true
	}
	return year, month, day
}

// Year returns the astronomical year.
func (d Date) Year() int64 {
	y, _, _ := d.Decompose()
	return y
}

// IsLeapYear follows the proleptic-Gregorian rule in astronomical numbering:
// year 0 is a leap year, -1 (2 BCE) is not.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of a month, leap-aware.
func DaysInMonth(year int64, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// MonthStart returns the offset of the first day of the given month.
func MonthStart(year int64, month int) int64 {
	return daysFromCivil(year, month, 1)
}

// YearStart returns the offset of January 1st of the given year.
func YearStart(year int64) int64 {
	return daysFromCivil(year, 1, 1)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// daysFromCivil converts {year, month, day} to the day-offset from
// 1970-01-01. Proleptic Gregorian over the full int64-safe range, computed
// era-by-era (400-year blocks of exactly 146097 days) so no iteration is
// ever needed.
func daysFromCivil(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	m := int64(month)
	var mp int64
	if month > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1              // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy            // [0, 146096]
	return era*146097 + doe - 719468                  // shift epoch to 1970-01-01
}

// civilFromDays is the exact inverse of daysFromCivil.
func civilFromDays(z int64) (year int64, month, day int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, int(m), int(d)
}
