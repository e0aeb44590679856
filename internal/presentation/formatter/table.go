package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/penwyp/go-timeline-core/internal/util"
)

// TableFormatter renders a layout as a bordered terminal table.
type TableFormatter struct {
	writer  io.Writer
	headers []string
}

func NewTableFormatter(writer io.Writer) *TableFormatter {
	return &TableFormatter{
		writer: writer,
		headers: []string{
			"Identity", "Start", "End", "Layer", "Screen X", "Width", "Visible",
		},
	}
}

func (f *TableFormatter) Format(data LayoutData) error {
	rows := make([][]string, 0, len(data.Entities))
	for _, e := range data.Entities {
		rows = append(rows, []string{
			util.TruncateString(e.Identity, f.identityWidthCap()),
			e.Start,
			e.End,
			fmt.Sprintf("%d", e.Layer),
			util.FormatPx(e.ScreenX),
			util.FormatPx(e.Width),
			formatVisible(e.Visible),
		})
	}

	widths := f.calculateColumnWidths(rows)
	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, row := range rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths, "bottom")

	fmt.Fprintf(f.writer, "Scale level %d, %d markers", data.Level, len(data.Markers))
	if len(data.Skipped) > 0 {
		fmt.Fprintf(f.writer, ", %d records skipped", len(data.Skipped))
	}
	fmt.Fprintln(f.writer)
	return nil
}

// identityWidthCap bounds the identity column so one long title cannot blow
// past the terminal.
func (f *TableFormatter) identityWidthCap() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 80 {
		termWidth = 100
	}
	return termWidth - 60
}

// calculateColumnWidths sizes each column to its widest cell.
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string
	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Fprint(f.writer, left)
	for i, width := range widths {
		for j := 0; j < width+2; j++ {
			fmt.Fprint(f.writer, separator)
		}
		if i < len(widths)-1 {
			fmt.Fprint(f.writer, middle)
		}
	}
	fmt.Fprintln(f.writer, right)
}

func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Fprint(f.writer, "│")
	for i, value := range values {
		// Text columns left-aligned, numeric columns right-aligned.
		leftAlign := i <= 2
		fmt.Fprintf(f.writer, " %s │", util.PadString(value, widths[i], leftAlign))
	}
	fmt.Fprintln(f.writer)
}

func formatVisible(visible bool) string {
	if visible {
		return "yes"
	}
	return "no"
}
