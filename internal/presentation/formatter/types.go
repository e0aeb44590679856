package formatter

import (
	"github.com/penwyp/go-timeline-core/internal/core/model"
	"github.com/penwyp/go-timeline-core/internal/engine"
)

// LayoutData is the formatter-facing projection of a computed layout.
type LayoutData struct {
	Level    int                   `json:"level"`
	Entities []EntityRow           `json:"entities"`
	Markers  []model.Marker        `json:"markers,omitempty"`
	Skipped  []model.SkippedRecord `json:"skipped,omitempty"`
}

// EntityRow is one placed entity flattened for tabular output.
type EntityRow struct {
	Identity   string  `json:"identity"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	StartLabel string  `json:"startLabel"`
	Layer      int     `json:"layer"`
	Visible    bool    `json:"visible"`
	ScreenX    float64 `json:"screenX"`
	Width      float64 `json:"width"`
	Color      string  `json:"color,omitempty"`
}

// FromLayout flattens an engine layout for the formatters.
func FromLayout(l *engine.Layout) LayoutData {
	data := LayoutData{
		Level:    l.Level,
		Entities: make([]EntityRow, 0, len(l.Entities)),
		Markers:  l.Markers,
		Skipped:  l.Skipped,
	}
	for _, e := range l.Entities {
		data.Entities = append(data.Entities, EntityRow{
			Identity:   e.Identity,
			Start:      e.Start,
			End:        e.End,
			StartLabel: e.StartLabel,
			Layer:      e.Layer,
			Visible:    e.Placement.Visible,
			ScreenX:    e.Placement.ScreenX,
			Width:      e.Placement.Width,
			Color:      e.Color,
		})
	}
	return data
}

// Formatter renders a layout to its output.
type Formatter interface {
	Format(data LayoutData) error
}
