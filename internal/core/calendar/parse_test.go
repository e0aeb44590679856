package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		ok       bool
		wantYear int64
		wantMon  int
		wantDay  int
	}{
		{name: "epoch", text: "1970-01-01", ok: true, wantYear: 1970, wantMon: 1, wantDay: 1},
		{name: "leap_day_valid", text: "2024-02-29", ok: true, wantYear: 2024, wantMon: 2, wantDay: 29},
		{name: "leap_day_invalid", text: "2023-02-29", ok: false},
		{name: "year_zero_leap", text: "0000-02-29", ok: true, wantYear: 0, wantMon: 2, wantDay: 29},
		{name: "bce_remap", text: "5000 BCE-01-01", ok: true, wantYear: -4999, wantMon: 1, wantDay: 1},
		{name: "bc_remap", text: "1 BC-06-15", ok: true, wantYear: 0, wantMon: 6, wantDay: 15},
		{name: "ce_era", text: "2024 CE-07-04", ok: true, wantYear: 2024, wantMon: 7, wantDay: 4},
		{name: "ad_era", text: "800 AD-12-25", ok: true, wantYear: 800, wantMon: 12, wantDay: 25},
		{name: "negative_astronomical", text: "-4999-01-01", ok: true, wantYear: -4999, wantMon: 1, wantDay: 1},
		{name: "explicit_plus", text: "+2024-01-02", ok: true, wantYear: 2024, wantMon: 1, wantDay: 2},
		{name: "single_digit_fields", text: "2024-1-2", ok: true, wantYear: 2024, wantMon: 1, wantDay: 2},
		{name: "surrounding_space", text: "  1970-01-01  ", ok: true, wantYear: 1970, wantMon: 1, wantDay: 1},
		{name: "month_zero", text: "2024-00-10", ok: false},
		{name: "month_thirteen", text: "2024-13-10", ok: false},
		{name: "day_zero", text: "2024-01-00", ok: false},
		{name: "day_overflow", text: "2024-04-31", ok: false},
		{name: "garbage", text: "not a date", ok: false},
		{name: "empty", text: "", ok: false},
		{name: "missing_day", text: "2024-01", ok: false},
		{name: "unknown_era", text: "2024 XY-01-01", ok: false},
		{name: "year_beyond_ceiling", text: "30000000000-01-01", ok: false},
		{name: "year_at_extreme", text: "19999999999-01-01", ok: true, wantYear: 19999999999, wantMon: 1, wantDay: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Parse(tt.text, Options{})
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			y, m, dd := d.Decompose()
			assert.Equal(t, tt.wantYear, y)
			assert.Equal(t, tt.wantMon, m)
			assert.Equal(t, tt.wantDay, dd)
		})
	}
}

func TestParseEpochAnchor(t *testing.T) {
	d, ok := Parse("1970-01-01", Options{})
	require.True(t, ok)
	assert.Equal(t, int64(0), d.DayOffset())
}

func TestCanonicalRoundTrip(t *testing.T) {
	texts := []string{
		"1970-01-01",
		"2024-02-29",
		"0000-01-01",
		"-4999-01-01",
		"-0001-12-31",
		"0800-06-15",
		"19999999999-12-31",
		"-19999999999-01-01",
	}
	for _, text := range texts {
		d, ok := Parse(text, Options{})
		require.True(t, ok, "parse %q", text)
		assert.Equal(t, text, CanonicalString(d), "round trip %q", text)
	}
}
