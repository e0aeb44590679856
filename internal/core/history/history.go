// Package history implements a bounded linear undo/redo log for
// geometry-affecting edits. It is generic over the edited state shape and
// independent of whatever persists entity state; the caller applies
// PreviousState or NewState and re-derives dependent geometry itself.
package history

import (
	"time"

	"github.com/penwyp/go-timeline-core/internal/core/constants"
)

// Kind labels what sort of edit an entry records.
type Kind string

const (
	KindResize      Kind = "resize"
	KindMove        Kind = "move"
	KindLayerChange Kind = "layer-change"
)

// Entry is one recorded edit. Immutable once recorded.
type Entry[S any] struct {
	TargetIdentity string    `json:"targetIdentity"`
	PreviousState  S         `json:"previousState"`
	NewState       S         `json:"newState"`
	Kind           Kind      `json:"kind"`
	Timestamp      time.Time `json:"timestamp"`
}

// Log is a bounded linear edit log owned by exactly one logical session.
// Cursor invariant: -1 <= cursor <= len(entries)-1; -1 means nothing to
// undo, cursor == len(entries)-1 means nothing to redo.
type Log[S any] struct {
	entries  []Entry[S]
	cursor   int
	capacity int
	now      func() time.Time
}

// NewLog creates an empty log bounded at the default capacity.
func NewLog[S any]() *Log[S] {
	return &Log[S]{cursor: -1, capacity: constants.HistoryCapacity, now: time.Now}
}

// Len returns the number of retained entries.
func (l *Log[S]) Len() int { return len(l.entries) }

// CanUndo reports whether Undo would return an entry.
func (l *Log[S]) CanUndo() bool { return l.cursor >= 0 }

// CanRedo reports whether Redo would return an entry.
func (l *Log[S]) CanRedo() bool { return l.cursor < len(l.entries)-1 }

// Record appends a new edit. Anything past the cursor is truncated first:
// recording after an undo discards the redo branch, standard linear-history
// semantics. Once length exceeds the bound the oldest entry is evicted and
// the cursor shifts down with it.
func (l *Log[S]) Record(target string, previous, next S, kind Kind) {
	l.entries = l.entries[:l.cursor+1]
	l.entries = append(l.entries, Entry[S]{
		TargetIdentity: target,
		PreviousState:  previous,
		NewState:       next,
		Kind:           kind,
		Timestamp:      l.now(),
	})
	l.cursor++

	if len(l.entries) > l.capacity {
		l.entries = l.entries[1:]
		l.cursor--
	}
}

// Undo returns the entry at the cursor and steps back. The caller applies
// PreviousState. Returns false with nothing to undo.
func (l *Log[S]) Undo() (Entry[S], bool) {
	if l.cursor < 0 {
		var zero Entry[S]
		return zero, false
	}
	e := l.entries[l.cursor]
	l.cursor--
	return e, true
}

// Redo steps forward and returns the entry now at the cursor. The caller
// applies NewState. Returns false with nothing to redo.
func (l *Log[S]) Redo() (Entry[S], bool) {
	if l.cursor >= len(l.entries)-1 {
		var zero Entry[S]
		return zero, false
	}
	l.cursor++
	return l.entries[l.cursor], true
}

// PeekUndo is a non-mutating lookahead for enabling an undo affordance.
func (l *Log[S]) PeekUndo() (Entry[S], bool) {
	if l.cursor < 0 {
		var zero Entry[S]
		return zero, false
	}
	return l.entries[l.cursor], true
}

// PeekRedo is a non-mutating lookahead for enabling a redo affordance.
func (l *Log[S]) PeekRedo() (Entry[S], bool) {
	if l.cursor >= len(l.entries)-1 {
		var zero Entry[S]
		return zero, false
	}
	return l.entries[l.cursor+1], true
}
