package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-timeline-core/internal/core/model"
)

func TestRange(t *testing.T) {
	r, ok := Range(0, 1, 800)
	require.True(t, ok)
	assert.Equal(t, 0.0, r.Left)
	assert.Equal(t, 800.0, r.Right)

	r, ok = Range(-200, 2, 800)
	require.True(t, ok)
	assert.Equal(t, 100.0, r.Left)
	assert.Equal(t, 500.0, r.Right)
}

func TestRangeDegenerateZoom(t *testing.T) {
	_, ok := Range(0, 0, 800)
	assert.False(t, ok)
	_, ok = Range(0, -1, 800)
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	r := WorldRange{Left: 0, Right: 800}

	tests := []struct {
		name string
		card Card
		want Visibility
	}{
		{name: "outside_right", card: Card{WorldX: 900, Width: 100}, want: FullyOutside},
		{name: "outside_left", card: Card{WorldX: -300, Width: 100}, want: FullyOutside},
		{name: "inside", card: Card{WorldX: 100, Width: 200}, want: FullyInside},
		{name: "clipped_left", card: Card{WorldX: -50, Width: 200}, want: ClippedLeft},
		{name: "clipped_right", card: Card{WorldX: 700, Width: 300}, want: ClippedRight},
		{name: "spans_viewport", card: Card{WorldX: -100, Width: 1200}, want: ClippedBoth},
		{name: "touching_left_edge", card: Card{WorldX: -100, Width: 100}, want: ClippedLeft},
		{name: "exactly_viewport", card: Card{WorldX: 0, Width: 800}, want: FullyInside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.card, r))
		})
	}
}

// Regression: world coordinates around 1e10 with zoom 1e6 put the naive
// world*zoom product past 2^53; world-space comparison must still see the
// card.
func TestClassifyExtremeMagnitude(t *testing.T) {
	const world = 1e10
	const zoom = 1e6
	pan := -world*zoom + 100

	r, ok := Range(pan, zoom, 800)
	require.True(t, ok)

	card := Card{WorldX: world, Width: 500 / zoom}
	assert.Equal(t, FullyInside, Classify(card, r))

	p := RenderPosition(card, model.ViewportState{Width: 800, PanX: pan, Zoom: zoom})
	require.True(t, p.Visible)
	assert.InDelta(t, 100, p.ScreenX, 2.5)
	assert.InDelta(t, 500, p.Width, 2.5)
}

func TestClampedBounds(t *testing.T) {
	r := WorldRange{Left: 0, Right: 800}

	// Idempotent on a fully-inside card.
	left, right := ClampedBounds(Card{WorldX: 100, Width: 200}, r)
	assert.Equal(t, 100.0, left)
	assert.Equal(t, 300.0, right)

	left, right = ClampedBounds(Card{WorldX: -50, Width: 200}, r)
	assert.Equal(t, 0.0, left)
	assert.Equal(t, 150.0, right)

	left, right = ClampedBounds(Card{WorldX: 700, Width: 300}, r)
	assert.Equal(t, 700.0, left)
	assert.Equal(t, 800.0, right)

	left, right = ClampedBounds(Card{WorldX: -100, Width: 1200}, r)
	assert.Equal(t, 0.0, left)
	assert.Equal(t, 800.0, right)

	// Fully-outside collapses to a zero-width interval at the nearer edge.
	left, right = ClampedBounds(Card{WorldX: 2000, Width: 10}, r)
	assert.Equal(t, left, right)
}

func TestRenderPosition(t *testing.T) {
	cam := model.ViewportState{Width: 800, PanX: 0, Zoom: 1}

	p := RenderPosition(Card{WorldX: 100, Width: 200}, cam)
	require.True(t, p.Visible)
	assert.InDelta(t, 100, p.ScreenX, 1e-9)
	assert.InDelta(t, 200, p.Width, 1e-9)

	// Card at x 900 width 100 sits entirely past an 800px viewport.
	p = RenderPosition(Card{WorldX: 900, Width: 100}, cam)
	assert.False(t, p.Visible)

	// Sub-threshold widths are culled.
	p = RenderPosition(Card{WorldX: 100, Width: 10}, cam)
	assert.False(t, p.Visible)

	// Degenerate zoom never panics, only hides.
	p = RenderPosition(Card{WorldX: 100, Width: 200}, model.ViewportState{Width: 800, Zoom: 0})
	assert.False(t, p.Visible)
}
