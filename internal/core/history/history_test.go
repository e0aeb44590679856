package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geomState struct {
	Start int64
	End   int64
	Layer int
}

func TestEmptyLog(t *testing.T) {
	log := NewLog[geomState]()

	assert.False(t, log.CanUndo())
	assert.False(t, log.CanRedo())

	_, ok := log.Undo()
	assert.False(t, ok)
	_, ok = log.Redo()
	assert.False(t, ok)
	_, ok = log.PeekUndo()
	assert.False(t, ok)
	_, ok = log.PeekRedo()
	assert.False(t, ok)
}

func TestRecordUndoRedoWalk(t *testing.T) {
	log := NewLog[geomState]()
	log.Record("card", geomState{Start: 0, End: 10}, geomState{Start: 0, End: 20}, KindResize)
	log.Record("card", geomState{Start: 0, End: 20}, geomState{Start: 5, End: 25}, KindMove)

	require.True(t, log.CanUndo())
	assert.False(t, log.CanRedo())

	e, ok := log.Undo()
	require.True(t, ok)
	assert.Equal(t, KindMove, e.Kind)
	assert.Equal(t, geomState{Start: 0, End: 20}, e.PreviousState)

	e, ok = log.Undo()
	require.True(t, ok)
	assert.Equal(t, KindResize, e.Kind)
	assert.False(t, log.CanUndo())

	e, ok = log.Redo()
	require.True(t, ok)
	assert.Equal(t, KindResize, e.Kind)
	assert.Equal(t, geomState{Start: 0, End: 20}, e.NewState)

	e, ok = log.Redo()
	require.True(t, ok)
	assert.Equal(t, KindMove, e.Kind)
	assert.False(t, log.CanRedo())
}

func TestPeekDoesNotMove(t *testing.T) {
	log := NewLog[geomState]()
	log.Record("a", geomState{}, geomState{Layer: 1}, KindLayerChange)

	p1, ok := log.PeekUndo()
	require.True(t, ok)
	p2, ok := log.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, p1, p2)
	assert.True(t, log.CanUndo())

	_, ok = log.Undo()
	require.True(t, ok)
	p3, ok := log.PeekRedo()
	require.True(t, ok)
	assert.Equal(t, p1, p3)
	assert.False(t, log.CanUndo())
}

func TestRedoBranchDiscardedOnRecord(t *testing.T) {
	log := NewLog[geomState]()
	log.Record("a", geomState{End: 1}, geomState{End: 2}, KindResize)

	_, ok := log.Undo()
	require.True(t, ok)

	// Recording a different edit makes the old redo entry unreachable.
	log.Record("a", geomState{End: 1}, geomState{End: 9}, KindResize)
	assert.False(t, log.CanRedo())
	assert.Equal(t, 1, log.Len())

	e, ok := log.Undo()
	require.True(t, ok)
	assert.Equal(t, geomState{End: 9}, e.NewState)
	_, ok = log.Redo()
	require.True(t, ok)
	_, ok = log.Redo()
	assert.False(t, ok)
}

func TestBoundedEviction(t *testing.T) {
	log := NewLog[geomState]()
	for i := 0; i <= 50; i++ {
		log.Record(fmt.Sprintf("e%d", i), geomState{End: int64(i)}, geomState{End: int64(i + 1)}, KindMove)
	}
	assert.Equal(t, 50, log.Len())

	// Walking all the way back never reaches the first record: after 51
	// records into a log bounded at 50, the oldest entry is gone.
	var last Entry[geomState]
	undos := 0
	for {
		e, ok := log.Undo()
		if !ok {
			break
		}
		last = e
		undos++
	}
	assert.Equal(t, 50, undos)
	assert.Equal(t, "e1", last.TargetIdentity)
}
