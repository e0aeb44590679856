package constants

const (
	// Calendar limits
	MaxAbsYear = int64(20_000_000_000) // parse ceiling, roughly ±20 billion years

	// Scale level selection
	MinMarkerSpacingPx = 8.0
	MaxScaleLevel      = 20

	// Marker generation guard for unit types without a closed form
	MarkerIterationCap = 10000

	// Lane geometry
	LaneSearchBoundFloor = 100
	LaneSpacingPx        = 120.0
	LaneBasePx           = 0.0

	// Cards narrower than this on screen are not worth drawing
	MinVisibleCardPx = 15.0

	// Undo/redo retention
	HistoryCapacity = 50
)
