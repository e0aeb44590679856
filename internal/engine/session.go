package engine

import (
	"github.com/penwyp/go-timeline-core/internal/core/history"
	"github.com/penwyp/go-timeline-core/internal/util"
)

// Geometry is the undoable per-entity state: the date range in day-offsets
// plus the assigned lane.
type Geometry struct {
	StartOffset int64 `json:"startOffset"`
	EndOffset   int64 `json:"endOffset"`
	Layer       int   `json:"layer"`
}

// EditSession owns the undo/redo log for one editing surface and keeps the
// current geometry of every tracked entity. The host applies the returned
// geometry and re-runs Recompute to re-derive dependent layout.
//
// A session belongs to exactly one surface; it is not safe for concurrent
// use.
type EditSession struct {
	log        *history.Log[Geometry]
	geometries map[string]Geometry
}

// NewEditSession creates an empty session.
func NewEditSession() *EditSession {
	return &EditSession{
		log:        history.NewLog[Geometry](),
		geometries: make(map[string]Geometry),
	}
}

// Track seeds or refreshes the current geometry of an entity, typically
// after a recompute pass. Tracking records nothing.
func (s *EditSession) Track(identity string, geom Geometry) {
	s.geometries[identity] = geom
}

// Geometry returns the current geometry of a tracked entity.
func (s *EditSession) Geometry(identity string) (Geometry, bool) {
	geom, ok := s.geometries[identity]
	return geom, ok
}

// Resize records a date-range change for a tracked entity. Unknown
// identities are ignored: an edit against a stale surface is a no-op, not
// an error.
func (s *EditSession) Resize(identity string, startOffset, endOffset int64) {
	s.apply(identity, history.KindResize, func(geom Geometry) Geometry {
		geom.StartOffset = startOffset
		geom.EndOffset = endOffset
		return geom
	})
}

// Move records a whole-range shift by a day delta.
func (s *EditSession) Move(identity string, deltaDays int64) {
	s.apply(identity, history.KindMove, func(geom Geometry) Geometry {
		geom.StartOffset += deltaDays
		geom.EndOffset += deltaDays
		return geom
	})
}

// SetLayer records a lane change.
func (s *EditSession) SetLayer(identity string, lane int) {
	s.apply(identity, history.KindLayerChange, func(geom Geometry) Geometry {
		geom.Layer = lane
		return geom
	})
}

func (s *EditSession) apply(identity string, kind history.Kind, mutate func(Geometry) Geometry) {
	previous, ok := s.geometries[identity]
	if !ok {
		util.LogDebugf("Edit %s ignored for untracked entity %s", kind, identity)
		return
	}
	next := mutate(previous)
	if next == previous {
		return
	}
	s.geometries[identity] = next
	s.log.Record(identity, previous, next, kind)
}

// Undo reverts the most recent edit and returns the identity plus the
// geometry the host should apply. False when there is nothing to undo.
func (s *EditSession) Undo() (string, Geometry, bool) {
	entry, ok := s.log.Undo()
	if !ok {
		return "", Geometry{}, false
	}
	s.geometries[entry.TargetIdentity] = entry.PreviousState
	return entry.TargetIdentity, entry.PreviousState, true
}

// Redo re-applies the most recently undone edit.
func (s *EditSession) Redo() (string, Geometry, bool) {
	entry, ok := s.log.Redo()
	if !ok {
		return "", Geometry{}, false
	}
	s.geometries[entry.TargetIdentity] = entry.NewState
	return entry.TargetIdentity, entry.NewState, true
}

// CanUndo drives the host's undo affordance.
func (s *EditSession) CanUndo() bool { return s.log.CanUndo() }

// CanRedo drives the host's redo affordance.
func (s *EditSession) CanRedo() bool { return s.log.CanRedo() }
