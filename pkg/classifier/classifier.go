package classifier

import (
	"github.com/dshills/smartbelt/pkg/curvature"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
)

// Kind is the closed set of results ClassifyNextTile can return.
type Kind int

const (
	// Usable means the tile is empty, already holds exactly the belt a
	// straight drag would place there anyway, or holds an unpaired
	// underground belt on the drag's axis, which the drag overwrites.
	Usable Kind = iota
	// Obstacle blocks a direct step but doesn't forbid continuing the
	// drag in some other way (e.g. tunneling under it).
	Obstacle
	// IntegratedSplitter means a same-direction splitter sits on the next
	// tile and the drag should adopt it rather than place a new belt.
	IntegratedSplitter
	// ImpassableObstacle can never be crossed, tunneled under, or
	// integrated; Obstacle carries which kind.
	ImpassableObstacle
	// PassThroughUnderground means the next tile is one end of an
	// underground belt pair aligned with the drag; the caller should
	// adopt the pair and continue from TargetPosition.
	PassThroughUnderground
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Usable:
		return "Usable"
	case Obstacle:
		return "Obstacle"
	case IntegratedSplitter:
		return "IntegratedSplitter"
	case ImpassableObstacle:
		return "ImpassableObstacle"
	case PassThroughUnderground:
		return "PassThroughUnderground"
	default:
		return "Unknown"
	}
}

// ObstacleKind distinguishes the reasons a tile can be ImpassableObstacle.
type ObstacleKind int

const (
	ObstacleCurvedBelt ObstacleKind = iota
	ObstacleTile
	ObstacleLoader
	// ObstacleUnderground means a same-tier underground belt sits directly
	// in the drag's path, either blocking mid-tunnel traversal or facing
	// the drag head-on as an output it can't feed into.
	ObstacleUnderground
)

// String returns the string representation of an ObstacleKind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleCurvedBelt:
		return "CurvedBelt"
	case ObstacleTile:
		return "Tile"
	case ObstacleLoader:
		return "Loader"
	case ObstacleUnderground:
		return "Underground"
	default:
		return "Unknown"
	}
}

// Classification is the full result of classifying one tile. Only the
// fields relevant to Kind are meaningful; the rest are zero.
type Classification struct {
	Kind Kind

	// Obstacle is set when Kind == ImpassableObstacle.
	Obstacle ObstacleKind

	// TargetPosition is set when Kind == PassThroughUnderground: the far
	// end of the underground belt pair.
	TargetPosition geometry.TilePosition

	// UpgradeFailure is set when Kind == PassThroughUnderground and the
	// paired underground's tier doesn't match the dragged tier, so
	// integrating it would require an upgrade the driver must reject.
	UpgradeFailure bool
}

// PairFinder looks up the far end of the underground belt pair anchored
// at pos, if one exists. grid.TileGrid.GetUGPair satisfies this.
type PairFinder func(pos geometry.TilePosition) (geometry.TilePosition, bool)

// Context carries the pieces of drag state the classifier needs but
// doesn't own, so this package never has to import pkg/dragstate.
type Context struct {
	// IsOutputtingBelt is true when the tile the drag just left already
	// has a belt discharging in the drag direction (used to decide
	// whether running into a curved belt ahead is impassable or just an
	// ordinary obstacle).
	IsOutputtingBelt bool
	// IsTraversingObstacle is true while the drag is mid-tunnel (building
	// or extending an underground belt), which relaxes how same-tier
	// underground belts ahead are classified.
	IsTraversingObstacle bool
}

// TileClassifier classifies the single tile ahead of a drag's current
// position, given a read-only view of the grid (which may be a
// TileHistoryView overlay rather than the live grid).
type TileClassifier struct {
	View      curvature.GridReader
	Tier      entity.BeltTier
	Direction geometry.Direction
	Ctx       Context
	PairOf    PairFinder
}

// New constructs a TileClassifier.
func New(view curvature.GridReader, tier entity.BeltTier, direction geometry.Direction, ctx Context, pairOf PairFinder) *TileClassifier {
	return &TileClassifier{View: view, Tier: tier, Direction: direction, Ctx: ctx, PairOf: pairOf}
}

// NextPosition returns the tile one step ahead of lastPosition in the
// classifier's direction of travel.
func (c *TileClassifier) NextPosition(lastPosition geometry.TilePosition) geometry.TilePosition {
	return lastPosition.Step(c.Direction)
}

// ClassifyNextTile classifies the tile immediately ahead of lastPosition.
func (c *TileClassifier) ClassifyNextTile(lastPosition geometry.TilePosition) Classification {
	next := c.NextPosition(lastPosition)
	e, ok := c.View.Get(next)
	if !ok {
		return Classification{Kind: Usable}
	}

	switch v := e.(type) {
	case entity.Belt:
		return c.classifyBelt(next, v)
	case entity.UndergroundBelt:
		return c.classifyUnderground(next, v)
	case entity.Splitter:
		return c.classifySplitter(v)
	case entity.LoaderLike:
		return c.classifyLoader(v)
	case entity.CollidingEntityOrTile:
		return Classification{Kind: Obstacle}
	case entity.ImpassableTile:
		return Classification{Kind: ImpassableObstacle, Obstacle: ObstacleTile}
	default:
		return Classification{Kind: Obstacle}
	}
}

func (c *TileClassifier) classifyBelt(pos geometry.TilePosition, b entity.Belt) Classification {
	if curvature.BeltIsCurvedAt(c.View, pos, b.Direction) {
		return c.classifyCurvedBelt(pos, b)
	}
	return c.classifyStraightBelt(b)
}

func (c *TileClassifier) classifyStraightBelt(b entity.Belt) Classification {
	switch {
	case b.Direction == c.Direction:
		if b.Tier != c.Tier {
			return Classification{Kind: Obstacle}
		}
		return Classification{Kind: Usable}
	default:
		// Perpendicular or dead-on-backwards: not a tile the drag can
		// step onto directly. A belt facing back at the drag (or across
		// it) is always just an Obstacle; whether a tunnel can land past
		// it is decided tile-by-tile as the drag's search continues, not
		// precomputed here.
		return Classification{Kind: Obstacle}
	}
}

func (c *TileClassifier) classifyCurvedBelt(pos geometry.TilePosition, b entity.Belt) Classification {
	if c.Ctx.IsOutputtingBelt && b.Direction == c.Direction {
		return Classification{Kind: ImpassableObstacle, Obstacle: ObstacleCurvedBelt}
	}
	return Classification{Kind: Obstacle}
}

// classifyUnderground classifies an existing underground belt tile. A
// same-axis pair is either approached from its input side (Forward,
// matching the drag's own direction) or its output side (Backward,
// opposite the drag's direction); an unpaired underground is just an
// ordinary placement surface, and a perpendicular one is a plain
// Obstacle like any other misaligned belt.
func (c *TileClassifier) classifyUnderground(pos geometry.TilePosition, u entity.UndergroundBelt) Classification {
	if u.Direction.Axis() != c.Direction.Axis() {
		return Classification{Kind: Obstacle}
	}

	pairPos, paired := c.PairOf(pos)
	if !paired {
		return Classification{Kind: Usable}
	}

	if c.Ctx.IsTraversingObstacle {
		if u.Tier == c.Tier {
			return Classification{Kind: ImpassableObstacle, Obstacle: ObstacleUnderground}
		}
		return Classification{Kind: Obstacle}
	}

	switch {
	case u.Direction == c.Direction && u.IsInput:
		return Classification{Kind: PassThroughUnderground, TargetPosition: pairPos, UpgradeFailure: u.Tier != c.Tier}
	case u.Direction == c.Direction.Opposite():
		if u.Tier == c.Tier {
			return Classification{Kind: ImpassableObstacle, Obstacle: ObstacleUnderground}
		}
		return Classification{Kind: Obstacle}
	default:
		return Classification{Kind: Obstacle}
	}
}

func (c *TileClassifier) classifySplitter(s entity.Splitter) Classification {
	if s.Direction != c.Direction || c.Ctx.IsTraversingObstacle {
		return Classification{Kind: Obstacle}
	}
	return Classification{Kind: IntegratedSplitter}
}

// classifyLoader never integrates a loader: dragging backwards into one
// is an open question the original design left unresolved. Every loader,
// whichever way it faces, is a plain Obstacle; none is ever reported as
// an ImpassableObstacle.
func (c *TileClassifier) classifyLoader(entity.LoaderLike) Classification {
	return Classification{Kind: Obstacle}
}
