package curvature

import (
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
)

// GridReader is the minimal surface curvature needs from a grid: a
// lookup by position. *grid.TileGrid and TileHistoryView both satisfy it.
type GridReader interface {
	Get(pos geometry.TilePosition) (entity.Entity, bool)
}

// OutputDirectionAt returns the direction the entity at pos discharges
// items in, or ok=false if pos is empty or holds something with no
// output (an underground belt's entry end, an obstacle).
func OutputDirectionAt(g GridReader, pos geometry.TilePosition) (geometry.Direction, bool) {
	e, ok := g.Get(pos)
	if !ok {
		return 0, false
	}
	bc, ok := entity.AsBeltConnectable(e)
	if !ok {
		return 0, false
	}
	return entity.OutputDirection(bc)
}

// hasInputIn reports whether the neighbor on the opposite side of
// direction (i.e. the tile a step of direction would have come from)
// outputs into pos, flowing in direction.
func hasInputIn(g GridReader, pos geometry.TilePosition, direction geometry.Direction) bool {
	neighbor := pos.Sub(direction.ToVector())
	out, ok := OutputDirectionAt(g, neighbor)
	return ok && out == direction
}

// CurvedInputDirection returns the effective direction a belt at pos
// facing beltDirection receives input from, accounting for curvature: a
// straight feed from directly behind takes priority; failing that, a
// feed from exactly one side curves the belt toward that side; a feed
// from both sides, or neither, leaves the belt straight.
func CurvedInputDirection(g GridReader, pos geometry.TilePosition, beltDirection geometry.Direction) geometry.Direction {
	if hasInputIn(g, pos, beltDirection) {
		return beltDirection
	}

	cw := beltDirection.RotateCW()
	ccw := beltDirection.RotateCCW()
	hasCW := hasInputIn(g, pos, cw)
	hasCCW := hasInputIn(g, pos, ccw)

	switch {
	case hasCW && !hasCCW:
		return cw
	case hasCCW && !hasCW:
		return ccw
	default:
		return beltDirection
	}
}

// BeltIsCurvedAt reports whether the belt at pos facing beltDirection is
// visually curved (its effective input comes from a side, not behind).
func BeltIsCurvedAt(g GridReader, pos geometry.TilePosition, beltDirection geometry.Direction) bool {
	return CurvedInputDirection(g, pos, beltDirection) != beltDirection
}
