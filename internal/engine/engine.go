// Package engine coordinates one full recompute pass: raw host records in,
// positioned timeline layout out. The host supplies a fresh batch on every
// pass and runs passes serially; nothing here suspends or blocks.
package engine

import (
	"github.com/penwyp/go-timeline-core/internal/core/calendar"
	"github.com/penwyp/go-timeline-core/internal/core/layer"
	"github.com/penwyp/go-timeline-core/internal/core/model"
	"github.com/penwyp/go-timeline-core/internal/core/scale"
	"github.com/penwyp/go-timeline-core/internal/core/viewport"
	"github.com/penwyp/go-timeline-core/internal/util"
)

// Config holds the knobs a host tunes once and reuses across passes.
type Config struct {
	// BasePxPerDay is the world-space width of one day at zoom 1.
	BasePxPerDay float64
	// Format controls display-date rendering for labels.
	Format calendar.Options
}

// DefaultConfig returns the config used when the host has no opinion.
func DefaultConfig() Config {
	return Config{BasePxPerDay: 2.0}
}

// Engine computes timeline layouts. It holds no per-pass state; a single
// Engine can serve any number of sequential recomputes.
type Engine struct {
	cfg Config
}

// New creates an Engine, falling back to a sane day width for degenerate
// configs so one bad setting cannot zero out the whole timeline.
func New(cfg Config) *Engine {
	if cfg.BasePxPerDay <= 0 {
		cfg.BasePxPerDay = DefaultConfig().BasePxPerDay
	}
	return &Engine{cfg: cfg}
}

// PlacedEntity is one entity with its computed lane and screen placement.
type PlacedEntity struct {
	Identity   string             `json:"identity"`
	Start      string             `json:"start"`
	End        string             `json:"end"`
	StartLabel string             `json:"startLabel"`
	EndLabel   string             `json:"endLabel"`
	Layer      int                `json:"layer"`
	LaneOffset float64            `json:"laneOffset"`
	Color      string             `json:"color,omitempty"`
	Placement  viewport.Placement `json:"placement"`
}

// Layout is the output of one recompute pass.
type Layout struct {
	Level    int                   `json:"level"`
	Entities []PlacedEntity        `json:"entities"`
	Markers  []model.Marker        `json:"markers"`
	Skipped  []model.SkippedRecord `json:"skipped,omitempty"`
}

// BuildEntities parses a raw record batch into entities, skipping records
// whose date text does not parse. Skips are reported, never raised; a start
// after its end is passed through undefined-but-non-crashing, matching the
// lane sweep's tolerance.
func (e *Engine) BuildEntities(records []model.RawRecord) ([]model.Entity, []model.SkippedRecord) {
	entities := make([]model.Entity, 0, len(records))
	var skipped []model.SkippedRecord

	for _, r := range records {
		start, ok := calendar.Parse(r.DateStart, e.cfg.Format)
		if !ok {
			skipped = append(skipped, model.SkippedRecord{Identity: r.Identity, Field: "dateStart", Text: r.DateStart})
			continue
		}
		end, ok := calendar.Parse(r.DateEnd, e.cfg.Format)
		if !ok {
			skipped = append(skipped, model.SkippedRecord{Identity: r.Identity, Field: "dateEnd", Text: r.DateEnd})
			continue
		}

		preferred := 0
		if r.PreferredLayer != nil {
			preferred = *r.PreferredLayer
		}
		entities = append(entities, model.Entity{
			Identity:       r.Identity,
			Start:          start,
			End:            end,
			PreferredLayer: preferred,
			Color:          r.Color,
		})
	}

	if len(skipped) > 0 {
		util.LogDebugf("Entity build skipped %d of %d records", len(skipped), len(records))
	}
	return entities, skipped
}

// Recompute runs the full pass: parse, lane-assign, position against the
// camera, and generate ruler markers. persisted maps identity to the layer
// saved by the host from an earlier session; it seeds the preferred lane for
// records that declare none.
func (e *Engine) Recompute(records []model.RawRecord, view model.ViewportState, persisted map[string]int) *Layout {
	entities, skipped := e.BuildEntities(records)

	for i := range entities {
		if lane, ok := persisted[entities[i].Identity]; ok && recordHasNoPreference(records, entities[i].Identity) {
			entities[i].PreferredLayer = lane
		}
	}

	sorted := layer.SortForAssignment(entities)
	assignments := layer.Assign(sorted)
	placedEntities := layer.Merge(sorted, assignments)

	pxPerDay := e.cfg.BasePxPerDay * view.Zoom
	level := scale.ChooseLevel(pxPerDay)

	out := &Layout{
		Level:    level,
		Entities: make([]PlacedEntity, 0, len(placedEntities)),
		Markers:  scale.GenerateMarkers(level, pxPerDay, view.PanX, view.Width),
		Skipped:  skipped,
	}

	for _, ent := range placedEntities {
		card := viewport.Card{
			WorldX: scale.DayToWorld(float64(ent.Start.DayOffset()), e.cfg.BasePxPerDay),
			Width:  float64(ent.Duration()+1) * e.cfg.BasePxPerDay,
		}
		out.Entities = append(out.Entities, PlacedEntity{
			Identity:   ent.Identity,
			Start:      calendar.CanonicalString(ent.Start),
			End:        calendar.CanonicalString(ent.End),
			StartLabel: calendar.FormatForLevel(ent.Start, level, e.cfg.Format),
			EndLabel:   calendar.FormatForLevel(ent.End, level, e.cfg.Format),
			Layer:      ent.AssignedLayer,
			LaneOffset: layer.LayerToOffset(ent.AssignedLayer),
			Color:      ent.Color,
			Placement:  viewport.RenderPosition(card, view),
		})
	}

	util.LogDebugf("Recompute placed %d entities at level %d with %d markers",
		len(out.Entities), out.Level, len(out.Markers))
	return out
}

// Layers extracts the identity-to-lane map the host persists between
// sessions.
func (l *Layout) Layers() map[string]int {
	layers := make(map[string]int, len(l.Entities))
	for _, e := range l.Entities {
		layers[e.Identity] = e.Layer
	}
	return layers
}

func recordHasNoPreference(records []model.RawRecord, identity string) bool {
	for _, r := range records {
		if r.Identity == identity {
			return r.PreferredLayer == nil
		}
	}
	return true
}
