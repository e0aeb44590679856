package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditSessionMoveAndUndo(t *testing.T) {
	s := NewEditSession()
	s.Track("rome", Geometry{StartOffset: -994059, EndOffset: -800000, Layer: 0})

	s.Move("rome", 10)
	geom, ok := s.Geometry("rome")
	assert.True(t, ok)
	assert.Equal(t, int64(-994049), geom.StartOffset)
	assert.Equal(t, int64(-799990), geom.EndOffset)
	assert.True(t, s.CanUndo())

	identity, geom, ok := s.Undo()
	assert.True(t, ok)
	assert.Equal(t, "rome", identity)
	assert.Equal(t, int64(-994059), geom.StartOffset)

	current, _ := s.Geometry("rome")
	assert.Equal(t, geom, current, "undo should restore the tracked geometry")
	assert.True(t, s.CanRedo())
}

func TestEditSessionResizeThenLayer(t *testing.T) {
	s := NewEditSession()
	s.Track("a", Geometry{StartOffset: 0, EndOffset: 30, Layer: 0})

	s.Resize("a", 0, 60)
	s.SetLayer("a", 2)

	geom, _ := s.Geometry("a")
	assert.Equal(t, Geometry{StartOffset: 0, EndOffset: 60, Layer: 2}, geom)

	_, geom, _ = s.Undo()
	assert.Equal(t, 0, geom.Layer, "first undo reverts the lane change only")
	assert.Equal(t, int64(60), geom.EndOffset)

	_, geom, _ = s.Undo()
	assert.Equal(t, int64(30), geom.EndOffset, "second undo reverts the resize")
	assert.False(t, s.CanUndo())
}

func TestEditSessionRedoAfterUndo(t *testing.T) {
	s := NewEditSession()
	s.Track("a", Geometry{StartOffset: 0, EndOffset: 10})

	s.Move("a", 5)
	s.Undo()

	identity, geom, ok := s.Redo()
	assert.True(t, ok)
	assert.Equal(t, "a", identity)
	assert.Equal(t, int64(5), geom.StartOffset)
	assert.False(t, s.CanRedo())
}

func TestEditSessionIgnoresUntrackedAndNoop(t *testing.T) {
	s := NewEditSession()
	s.Track("a", Geometry{StartOffset: 0, EndOffset: 10})

	s.Move("ghost", 5)
	assert.False(t, s.CanUndo(), "edits to untracked entities record nothing")

	s.Move("a", 0)
	s.SetLayer("a", 0)
	assert.False(t, s.CanUndo(), "edits that change nothing record nothing")

	_, _, ok := s.Undo()
	assert.False(t, ok)
	_, _, ok = s.Redo()
	assert.False(t, ok)
}
