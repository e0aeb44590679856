package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFormatter renders the entity rows as CSV for spreadsheet import.
type CSVFormatter struct {
	writer io.Writer
}

func NewCSVFormatter(writer io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: writer}
}

func (f *CSVFormatter) Format(data LayoutData) error {
	w := csv.NewWriter(f.writer)
	defer w.Flush()

	headers := []string{"Identity", "Start", "End", "Layer", "ScreenX", "Width", "Visible"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, e := range data.Entities {
		record := []string{
			e.Identity,
			e.Start,
			e.End,
			fmt.Sprintf("%d", e.Layer),
			fmt.Sprintf("%.2f", e.ScreenX),
			fmt.Sprintf("%.2f", e.Width),
			formatVisible(e.Visible),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}
