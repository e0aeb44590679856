// Package viewport decides which part of a world-space card is visible for
// a camera and computes clamped render coordinates.
//
// The screen mapping is screen = world*zoom + pan. When world magnitude and
// zoom are both large that product exceeds the float64 mantissa budget and
// silently corrupts visibility, so every visibility comparison here happens
// in WORLD space: the two small, fixed screen edges are divided into world
// coordinates instead of multiplying large card coordinates up into screen
// space.
package viewport

import (
	"math"

	"github.com/penwyp/go-timeline-core/internal/core/constants"
	"github.com/penwyp/go-timeline-core/internal/core/model"
)

// Card is a world-space rectangle slice along the time axis.
type Card struct {
	WorldX float64
	Width  float64
}

// Right returns the card's right edge in world space.
func (c Card) Right() float64 { return c.WorldX + c.Width }

// WorldRange is the world-space interval the camera can see.
type WorldRange struct {
	Left  float64
	Right float64
}

// Visibility classifies a card against the visible world range.
type Visibility int

const (
	FullyOutside Visibility = iota
	FullyInside
	ClippedLeft
	ClippedRight
	ClippedBoth
)

func (v Visibility) String() string {
	switch v {
	case FullyOutside:
		return "fully-outside"
	case FullyInside:
		return "fully-inside"
	case ClippedLeft:
		return "clipped-left"
	case ClippedRight:
		return "clipped-right"
	case ClippedBoth:
		return "clipped-both"
	default:
		return "unknown"
	}
}

// Range converts the two fixed screen edges into world coordinates via
// division, which stays numerically stable at any world magnitude. The
// second result is false for degenerate zoom.
func Range(pan, zoom, viewportWidth float64) (WorldRange, bool) {
	if zoom <= 0 || math.IsNaN(zoom) || math.IsNaN(pan) {
		return WorldRange{}, false
	}
	return WorldRange{
		Left:  (0 - pan) / zoom,
		Right: (viewportWidth - pan) / zoom,
	}, true
}

// Classify compares only the card's world edges against the world range.
func Classify(card Card, r WorldRange) Visibility {
	left, right := card.WorldX, card.Right()
	switch {
	case right < r.Left || left > r.Right:
		return FullyOutside
	case left < r.Left && right > r.Right:
		return ClippedBoth
	case left < r.Left:
		return ClippedLeft
	case right > r.Right:
		return ClippedRight
	default:
		return FullyInside
	}
}

// ClampedBounds returns the visible sub-interval of the card in world space:
// the full card when inside, the intersection when clipped at one edge, or
// the viewport range itself when the card spans it entirely. A fully-outside
// card yields an empty interval at the nearer viewport edge.
func ClampedBounds(card Card, r WorldRange) (left, right float64) {
	switch Classify(card, r) {
	case FullyInside:
		return card.WorldX, card.Right()
	case ClippedLeft:
		return r.Left, card.Right()
	case ClippedRight:
		return card.WorldX, r.Right
	case ClippedBoth:
		return r.Left, r.Right
	default:
		if card.Right() < r.Left {
			return r.Left, r.Left
		}
		return r.Right, r.Right
	}
}

// Placement is the final screen-space position of a card's visible portion.
type Placement struct {
	ScreenX float64 `json:"screenX"`
	Width   float64 `json:"width"`
	Visible bool    `json:"visible"`
}

// RenderPosition computes small-magnitude screen coordinates for the
// clamped portion of a card. The camera's left world edge is subtracted
// before any multiplication so multiplied operands stay small. Cards
// narrower on screen than the minimum visible width come back not-visible,
// as do all cards under a degenerate camera.
func RenderPosition(card Card, cam model.ViewportState) Placement {
	r, ok := Range(cam.PanX, cam.Zoom, cam.Width)
	if !ok {
		return Placement{}
	}
	if Classify(card, r) == FullyOutside {
		return Placement{}
	}

	left, right := ClampedBounds(card, r)
	screenX := (left - r.Left) * cam.Zoom
	width := (right - left) * cam.Zoom
	if width < constants.MinVisibleCardPx {
		return Placement{}
	}
	return Placement{ScreenX: screenX, Width: width, Visible: true}
}
