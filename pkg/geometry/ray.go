package geometry

// Ray is a 1D coordinate system laid over the grid: a starting tile and a
// direction of travel. Dragging a line advances along a ray; RayPosition
// and GetPosition convert between grid tiles and the ray's own integer
// index so forward and backward drag logic can stay symmetric.
type Ray struct {
	StartPosition TilePosition
	Direction     Direction
}

// NewRay constructs a Ray starting at position, heading in direction.
func NewRay(position TilePosition, direction Direction) Ray {
	return Ray{StartPosition: position, Direction: direction}
}

// RayPosition projects position onto the ray, returning the signed
// distance (in tiles) along the ray's direction from its start.
func (r Ray) RayPosition(position TilePosition) int {
	offset := position.Sub(r.StartPosition)
	dirVec := r.Direction.ToVector()
	return offset.X*dirVec.X + offset.Y*dirVec.Y
}

// GetPosition returns the tile at the given ray-local index.
func (r Ray) GetPosition(index int) TilePosition {
	return r.StartPosition.Add(r.Direction.ToVector().Scale(index))
}

// Snap projects position onto the ray's line, discarding any perpendicular
// offset.
func (r Ray) Snap(position TilePosition) TilePosition {
	return r.GetPosition(r.RayPosition(position))
}

// RelativeDirection reports whether position lies to the left or right of
// the ray's line, or directly on it. "Left"/"right" are the absolute
// cardinal directions the perpendicular offset points in, matching the
// direction naming used everywhere else in this package.
func (r Ray) RelativeDirection(position TilePosition) (Direction, bool) {
	offset := position.Sub(r.StartPosition)
	switch r.Direction {
	case North, South:
		if offset.X == 0 {
			return 0, false
		}
		if offset.X > 0 {
			return East, true
		}
		return West, true
	case East, West:
		if offset.Y == 0 {
			return 0, false
		}
		if offset.Y > 0 {
			return South, true
		}
		return North, true
	default:
		return 0, false
	}
}
