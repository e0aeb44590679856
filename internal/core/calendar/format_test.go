package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForLevel(t *testing.T) {
	tests := []struct {
		name  string
		date  Date
		level int
		opts  Options
		want  string
	}{
		{name: "day_month_first", date: FromYMD(2024, 3, 5), level: 0, opts: Options{}, want: "03/05/2024"},
		{name: "day_day_first", date: FromYMD(2024, 3, 5), level: 0, opts: Options{DayFirst: true}, want: "05/03/2024"},
		{name: "day_bce", date: FromYMD(-4999, 1, 2), level: 0, opts: Options{}, want: "01/02/5000 BCE"},
		{name: "month_year", date: FromYMD(2024, 1, 15), level: 1, want: "Jan 2024"},
		{name: "month_year_bce", date: FromYMD(0, 12, 1), level: 1, want: "Dec 1 BCE"},
		{name: "year_only", date: FromYMD(2024, 6, 1), level: 2, want: "2024"},
		{name: "year_only_bce", date: FromYMD(-499, 1, 1), level: 3, want: "500 BCE"},
		{name: "kiloyear", date: FromYMD(50000, 1, 1), level: 5, want: "50k CE"},
		{name: "kiloyear_fraction", date: FromYMD(10500, 1, 1), level: 4, want: "10.5k CE"},
		{name: "megayear_bce", date: FromYMD(-1_499_999, 1, 1), level: 8, want: "1.5M BCE"},
		{name: "gigayear", date: FromYMD(2_000_000_000, 1, 1), level: 12, want: "2B CE"},
		{name: "boundary_stays_plain", date: FromYMD(10000, 1, 1), level: 3, want: "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForLevel(tt.date, tt.level, tt.opts))
		})
	}
}

func TestCanonicalString(t *testing.T) {
	assert.Equal(t, "1970-01-01", CanonicalString(FromDayOffset(0)))
	assert.Equal(t, "-4999-01-01", CanonicalString(FromYMD(-4999, 1, 1)))
	assert.Equal(t, "0000-02-29", CanonicalString(FromYMD(0, 2, 29)))
}
