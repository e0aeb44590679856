package model

import (
	"github.com/penwyp/go-timeline-core/internal/core/calendar"
)

// RawRecord is one date-ranged record as supplied by the host, before any
// validation. Date fields are free text; the engine parses and drops what
// it cannot read.
type RawRecord struct {
	Identity       string `json:"identity" yaml:"identity"`
	DateStart      string `json:"dateStart" yaml:"dateStart"`
	DateEnd        string `json:"dateEnd" yaml:"dateEnd"`
	PreferredLayer *int   `json:"preferredLayer,omitempty" yaml:"preferredLayer,omitempty"`
	Color          string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Entity is a validated timeline entity. Entities are rebuilt wholesale from
// host records on every recompute pass; AssignedLayer is the only field the
// lane assignment step produces.
type Entity struct {
	Identity       string
	Start          calendar.Date
	End            calendar.Date
	AssignedLayer  int
	PreferredLayer int
	Color          string
}

// Duration returns the closed-interval day span of the entity.
func (e Entity) Duration() int64 {
	return e.End.DayOffset() - e.Start.DayOffset()
}

// Marker is one tick of the time ruler at the current scale level. Markers
// are regenerated every frame and never persisted.
type Marker struct {
	ScreenPosition float64 `json:"screenPosition"`
	UnitIndex      int64   `json:"unitIndex"`
	IsMajor        bool    `json:"isMajor"`
}

// ViewportState is the live camera: mutated by user interaction, read by
// the scale and viewport math each render pass.
type ViewportState struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	PanX   float64 `json:"panX"`
	PanY   float64 `json:"panY"`
	Zoom   float64 `json:"zoom"`
}

// SkippedRecord reports a host record excluded from a recompute pass,
// so the host can surface the failures; the engine itself never raises.
type SkippedRecord struct {
	Identity string `json:"identity"`
	Field    string `json:"field"`
	Text     string `json:"text"`
}
