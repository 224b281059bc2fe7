package entity

import "github.com/dshills/smartbelt/pkg/geometry"

// Kind identifies which closed variant an Entity is, so code can switch
// on it instead of chaining type assertions.
type Kind int

const (
	KindBelt Kind = iota
	KindUndergroundBelt
	KindSplitter
	KindLoaderLike
	KindColliding
	KindImpassable
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindBelt:
		return "Belt"
	case KindUndergroundBelt:
		return "UndergroundBelt"
	case KindSplitter:
		return "Splitter"
	case KindLoaderLike:
		return "LoaderLike"
	case KindColliding:
		return "CollidingEntityOrTile"
	case KindImpassable:
		return "ImpassableTile"
	default:
		return "Unknown"
	}
}

// Entity is anything that can occupy a grid tile. It is a closed set:
// Belt, UndergroundBelt, Splitter, LoaderLike, CollidingEntityOrTile, and
// ImpassableTile are the only implementations this package defines, and
// callers are expected to exhaustively switch on Kind() rather than treat
// the set as open for extension.
type Entity interface {
	Kind() Kind
}

// Belt is a plain directional belt tile.
type Belt struct {
	Direction geometry.Direction
	Tier      BeltTier
}

// Kind implements Entity.
func (Belt) Kind() Kind { return KindBelt }

// UndergroundBelt is one end of an underground belt pair. Direction is
// the direction of item travel; IsInput distinguishes the entry end (item
// travels into the ground) from the exit end (item travels out of it).
type UndergroundBelt struct {
	Direction geometry.Direction
	Tier      BeltTier
	IsInput   bool
}

// Kind implements Entity.
func (UndergroundBelt) Kind() Kind { return KindUndergroundBelt }

// ShapeDirection is the direction this underground end visually faces for
// curvature and connection purposes: the input end faces backwards
// relative to its direction of travel, the output end faces forwards.
func (u UndergroundBelt) ShapeDirection() geometry.Direction {
	if u.IsInput {
		return u.Direction.Opposite()
	}
	return u.Direction
}

// Flip returns the other end of this underground belt in place: input
// becomes output and vice versa, with direction reversed to match.
func (u UndergroundBelt) Flip() UndergroundBelt {
	return UndergroundBelt{
		Direction: u.Direction.Opposite(),
		Tier:      u.Tier,
		IsInput:   !u.IsInput,
	}
}

// Splitter occupies two tiles (its head and the tile 90 degrees
// counter-clockwise of its facing direction) but is represented once,
// anchored at the head. See pkg/grid for the two-tile occupancy rule.
type Splitter struct {
	Direction geometry.Direction
	Tier      BeltTier
}

// Kind implements Entity.
func (Splitter) Kind() Kind { return KindSplitter }

// TailOffset returns the head-to-tail offset every splitter occupies in
// addition to its own tile.
func (Splitter) TailOffset(direction geometry.Direction) geometry.TilePosition {
	return direction.RotateCCW().ToVector()
}

// LoaderLike is any entity that behaves like a loader for connection
// purposes: it has a belt-like direction and an input/output end, but (at
// this abstraction level) isn't otherwise modeled.
type LoaderLike struct {
	Direction geometry.Direction
	Tier      BeltTier
	IsInput   bool
}

// Kind implements Entity.
func (LoaderLike) Kind() Kind { return KindLoaderLike }

// ShapeDirection mirrors UndergroundBelt.ShapeDirection.
func (l LoaderLike) ShapeDirection() geometry.Direction {
	if l.IsInput {
		return l.Direction.Opposite()
	}
	return l.Direction
}

// CollidingEntityOrTile is an occupied tile whose occupant isn't a belt,
// underground belt, splitter, or loader, but can still be dragged over:
// it blocks placement without being impassable.
type CollidingEntityOrTile struct{}

// Kind implements Entity.
func (CollidingEntityOrTile) Kind() Kind { return KindColliding }

// ImpassableTile is terrain or an entity a drag can never cross, tunnel
// under, or integrate: cliffs, water, other unbuildable tiles.
type ImpassableTile struct{}

// Kind implements Entity.
func (ImpassableTile) Kind() Kind { return KindImpassable }
