package util

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// FormatCount renders an integer with thousands separators for table cells.
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	start := 0
	negative := s[0] == '-'
	if negative {
		start = 1
	}

	var result []byte
	for i := start; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, s[i])
	}
	if negative {
		return "-" + string(result)
	}
	return string(result)
}

// FormatPx renders a pixel quantity with one decimal, dropping noise digits.
func FormatPx(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// PadString pads a string to a specific display width, handling wide
// Unicode characters correctly.
func PadString(s string, width int, leftAlign bool) string {
	actualWidth := runewidth.StringWidth(s)
	if actualWidth >= width {
		return s
	}
	padding := make([]byte, width-actualWidth)
	for i := range padding {
		padding[i] = ' '
	}
	if leftAlign {
		return s + string(padding)
	}
	return string(padding) + s
}

// TruncateString shortens a string to a display width, ellipsizing overflow.
func TruncateString(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
