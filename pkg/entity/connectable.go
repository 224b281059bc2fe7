package entity

import "github.com/dshills/smartbelt/pkg/geometry"

// BeltConnectable is the subset of Entity that participates in belt
// chains: it has a tier, a facing direction, and well-defined input/
// output behavior. Belt, UndergroundBelt, Splitter, and LoaderLike all
// implement it; CollidingEntityOrTile and ImpassableTile do not, since
// nothing connects to them.
type BeltConnectable interface {
	Entity
	BeltDirection() geometry.Direction
	BeltTier() BeltTier
	HasOutput() bool
	HasBackwardsInput() bool
	AcceptsSidewaysInput() bool
}

// AsBeltConnectable downcasts e to BeltConnectable, reporting ok=false for
// CollidingEntityOrTile, ImpassableTile, or a nil Entity.
func AsBeltConnectable(e Entity) (BeltConnectable, bool) {
	bc, ok := e.(BeltConnectable)
	return bc, ok
}

// BeltDirection implements BeltConnectable.
func (b Belt) BeltDirection() geometry.Direction { return b.Direction }

// BeltTier implements BeltConnectable.
func (b Belt) BeltTier() BeltTier { return b.Tier }

// HasOutput implements BeltConnectable: a plain belt always outputs
// forward.
func (Belt) HasOutput() bool { return true }

// HasBackwardsInput implements BeltConnectable: a plain belt accepts
// input from directly behind.
func (Belt) HasBackwardsInput() bool { return true }

// AcceptsSidewaysInput implements BeltConnectable: plain belts merge
// side-feeds, which is what produces curved belts.
func (Belt) AcceptsSidewaysInput() bool { return true }

// BeltDirection implements BeltConnectable.
func (u UndergroundBelt) BeltDirection() geometry.Direction { return u.ShapeDirection() }

// BeltTier implements BeltConnectable.
func (u UndergroundBelt) BeltTier() BeltTier { return u.Tier }

// HasOutput implements BeltConnectable: only the exit end outputs.
func (u UndergroundBelt) HasOutput() bool { return !u.IsInput }

// HasBackwardsInput implements BeltConnectable: only the entry end
// accepts a feed from behind.
func (u UndergroundBelt) HasBackwardsInput() bool { return u.IsInput }

// AcceptsSidewaysInput implements BeltConnectable: underground belt ends
// never merge a side-feed.
func (UndergroundBelt) AcceptsSidewaysInput() bool { return false }

// BeltDirection implements BeltConnectable.
func (s Splitter) BeltDirection() geometry.Direction { return s.Direction }

// BeltTier implements BeltConnectable.
func (s Splitter) BeltTier() BeltTier { return s.Tier }

// HasOutput implements BeltConnectable: a splitter always outputs
// forward from both of its output lanes.
func (Splitter) HasOutput() bool { return true }

// HasBackwardsInput implements BeltConnectable: both of a splitter's back
// tiles accept a feed from directly behind.
func (Splitter) HasBackwardsInput() bool { return true }

// AcceptsSidewaysInput implements BeltConnectable: a splitter never
// merges a side-feed into either lane.
func (Splitter) AcceptsSidewaysInput() bool { return false }

// BeltDirection implements BeltConnectable.
func (l LoaderLike) BeltDirection() geometry.Direction { return l.ShapeDirection() }

// BeltTier implements BeltConnectable.
func (l LoaderLike) BeltTier() BeltTier { return l.Tier }

// HasOutput implements BeltConnectable.
func (l LoaderLike) HasOutput() bool { return !l.IsInput }

// HasBackwardsInput implements BeltConnectable.
func (l LoaderLike) HasBackwardsInput() bool { return l.IsInput }

// AcceptsSidewaysInput implements BeltConnectable: loaders never merge a
// side-feed.
func (LoaderLike) AcceptsSidewaysInput() bool { return false }

// OutputDirection returns the direction a connectable entity discharges
// items in, or ok=false if it has no output (e.g. an underground belt's
// entry end).
func OutputDirection(bc BeltConnectable) (geometry.Direction, bool) {
	if !bc.HasOutput() {
		return 0, false
	}
	return bc.BeltDirection(), true
}

// PrimaryInputDirection returns the direction an item must be traveling
// in to feed bc from directly behind, ignoring belt curvature (curvature
// is a property of the surrounding grid, computed by pkg/curvature, not
// of the entity alone).
func PrimaryInputDirection(bc BeltConnectable) (geometry.Direction, bool) {
	if !bc.HasBackwardsInput() {
		return 0, false
	}
	return bc.BeltDirection(), true
}

// approach classifies how enteringDirection (the direction of travel of
// an item stepping onto bc's tile) relates to bc's own facing: arriving
// from directly behind, from a side, or head-on from the front.
type approach int

const (
	approachBehind approach = iota
	approachSide
	approachAhead
)

func classifyApproach(beltDirection, enteringDirection geometry.Direction) approach {
	switch {
	case enteringDirection == beltDirection:
		return approachBehind
	case enteringDirection == beltDirection.Opposite():
		return approachAhead
	default:
		return approachSide
	}
}

// AcceptsInputGoing reports whether bc accepts an item that is traveling
// in enteringDirection as it steps onto bc's tile.
func AcceptsInputGoing(bc BeltConnectable, enteringDirection geometry.Direction) bool {
	switch classifyApproach(bc.BeltDirection(), enteringDirection) {
	case approachBehind:
		return bc.HasBackwardsInput()
	case approachSide:
		return bc.AcceptsSidewaysInput()
	default:
		return false
	}
}

// ConnectsToFromDirectional reports whether bc connects to a neighboring
// belt-like entity approached from approachDirection, optionally
// considering the backwards-input path instead of the forward path.
func ConnectsToFromDirectional(bc BeltConnectable, approachDirection geometry.Direction, backwards bool) bool {
	if backwards {
		return bc.HasBackwardsInput() && approachDirection == bc.BeltDirection()
	}
	out, ok := OutputDirection(bc)
	return ok && out == approachDirection
}
