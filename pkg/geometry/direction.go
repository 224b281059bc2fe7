package geometry

import "fmt"

// Direction is one of the four cardinal directions a belt or drag can
// face. South is +Y, East is +X.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Axis is the grid axis a Direction runs along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the string representation of an Axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ToVector returns the unit offset a step in this direction applies to a
// TilePosition.
func (d Direction) ToVector() TilePosition {
	switch d {
	case North:
		return TilePosition{X: 0, Y: -1}
	case East:
		return TilePosition{X: 1, Y: 0}
	case South:
		return TilePosition{X: 0, Y: 1}
	case West:
		return TilePosition{X: -1, Y: 0}
	default:
		panic(fmt.Sprintf("geometry: invalid direction %d", uint8(d)))
	}
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		panic(fmt.Sprintf("geometry: invalid direction %d", uint8(d)))
	}
}

// RotateCW returns the direction 90 degrees clockwise from d.
func (d Direction) RotateCW() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		panic(fmt.Sprintf("geometry: invalid direction %d", uint8(d)))
	}
}

// RotateCCW returns the direction 90 degrees counter-clockwise from d.
func (d Direction) RotateCCW() Direction {
	switch d {
	case North:
		return West
	case East:
		return North
	case South:
		return East
	case West:
		return South
	default:
		panic(fmt.Sprintf("geometry: invalid direction %d", uint8(d)))
	}
}

// Axis returns the grid axis this direction runs along.
func (d Direction) Axis() Axis {
	switch d {
	case North, South:
		return AxisY
	case East, West:
		return AxisX
	default:
		panic(fmt.Sprintf("geometry: invalid direction %d", uint8(d)))
	}
}

// DirectionFromOrdinal maps 0..3 back to a Direction, reporting ok=false
// for any other ordinal.
func DirectionFromOrdinal(ordinal uint8) (Direction, bool) {
	switch ordinal {
	case 0:
		return North, true
	case 1:
		return East, true
	case 2:
		return South, true
	case 3:
		return West, true
	default:
		return 0, false
	}
}

// TilePosition is an integer grid coordinate.
type TilePosition struct {
	X int
	Y int
}

// Add returns the position offset by the given vector.
func (p TilePosition) Add(v TilePosition) TilePosition {
	return TilePosition{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p TilePosition) Sub(other TilePosition) TilePosition {
	return TilePosition{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns v scaled by n.
func (v TilePosition) Scale(n int) TilePosition {
	return TilePosition{X: v.X * n, Y: v.Y * n}
}

// Step returns the tile one step from p in direction d.
func (p TilePosition) Step(d Direction) TilePosition {
	return p.Add(d.ToVector())
}

// String returns the string representation of a TilePosition.
func (p TilePosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
