package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-timeline-core/internal/util"
)

// SummaryFormatter prints a compact digest of a layout instead of rows.
type SummaryFormatter struct {
	writer io.Writer
}

func NewSummaryFormatter(writer io.Writer) *SummaryFormatter {
	return &SummaryFormatter{writer: writer}
}

func (f *SummaryFormatter) Format(data LayoutData) error {
	visible := 0
	minLayer, maxLayer := 0, 0
	for _, e := range data.Entities {
		if e.Visible {
			visible++
		}
		if e.Layer < minLayer {
			minLayer = e.Layer
		}
		if e.Layer > maxLayer {
			maxLayer = e.Layer
		}
	}

	fmt.Fprintf(f.writer, "Entities:   %s (%s visible)\n",
		util.FormatCount(len(data.Entities)), util.FormatCount(visible))
	fmt.Fprintf(f.writer, "Layers:     %d to %d\n", minLayer, maxLayer)
	fmt.Fprintf(f.writer, "Scale:      level %d\n", data.Level)
	fmt.Fprintf(f.writer, "Markers:    %s\n", util.FormatCount(len(data.Markers)))
	if len(data.Skipped) > 0 {
		fmt.Fprintf(f.writer, "Skipped:    %s\n", util.FormatCount(len(data.Skipped)))
		for _, s := range data.Skipped {
			fmt.Fprintf(f.writer, "  - %s: unparseable %s %q\n", s.Identity, s.Field, s.Text)
		}
	}
	return nil
}
