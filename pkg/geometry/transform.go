package geometry

// Transform is one of the eight symmetries of a square grid (the dihedral
// group D4), expressed as an optional swap of the axes followed by
// optional flips. Test cases run under all eight to confirm the drag
// state machine has no directional bias baked in by accident.
type Transform struct {
	FlipX  bool
	FlipY  bool
	SwapXY bool
}

// Identity is the no-op transform.
var Identity = Transform{}

// NewTransform builds a Transform from its three flags.
func NewTransform(flipX, flipY, swapXY bool) Transform {
	return Transform{FlipX: flipX, FlipY: flipY, SwapXY: swapXY}
}

// TransformPosition applies t to a tile position: swap first, then flip
// each axis.
func (t Transform) TransformPosition(p TilePosition) TilePosition {
	result := p

	if t.SwapXY {
		result = TilePosition{X: result.Y, Y: result.X}
	}
	if t.FlipX {
		result = TilePosition{X: -result.X, Y: result.Y}
	}
	if t.FlipY {
		result = TilePosition{X: result.X, Y: -result.Y}
	}

	return result
}

// TransformDirection applies t to a Direction, consistent with
// TransformPosition: a belt pointing East under the identity points
// wherever East's unit vector lands after the same swap/flip sequence.
func (t Transform) TransformDirection(d Direction) Direction {
	ordinal := uint8(d)

	if t.SwapXY {
		// North(0,-1)->West, East(1,0)->South, South(0,1)->East, West(-1,0)->North
		switch ordinal {
		case 0:
			ordinal = 3
		case 1:
			ordinal = 2
		case 2:
			ordinal = 1
		case 3:
			ordinal = 0
		}
	}
	if t.FlipX {
		switch ordinal {
		case 1:
			ordinal = 3
		case 3:
			ordinal = 1
		}
	}
	if t.FlipY {
		switch ordinal {
		case 0:
			ordinal = 2
		case 2:
			ordinal = 0
		}
	}

	result, ok := DirectionFromOrdinal(ordinal)
	if !ok {
		panic("geometry: transform produced invalid direction ordinal")
	}
	return result
}

// AllUniqueTransforms returns the eight distinct grid symmetries, identity
// first.
func AllUniqueTransforms() []Transform {
	return []Transform{
		NewTransform(false, false, false), // identity
		NewTransform(true, false, true),   // 90 deg CW
		NewTransform(true, true, false),   // 180 deg
		NewTransform(false, true, true),   // 90 deg CCW
		NewTransform(true, false, false),  // flip X
		NewTransform(true, true, true),    // flip X then 90 deg CW
		NewTransform(false, true, false),  // flip Y
		NewTransform(false, false, true),  // flip Y then 90 deg CW (swap only)
	}
}
