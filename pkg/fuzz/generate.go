package fuzz

import (
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
	"pgregory.net/rapid"
)

// dragRow is the y-coordinate every generated world drags along; y=0 and
// y=2 are reserved for the feeder belts that induce curvature.
const dragRow = 1

// GenerateWorld scatters random entities along the drag row at
// cfg.EntityDensity, occasionally feeding a belt in from directly above
// or below a placed belt to exercise curvature handling. Collisions
// between a row entity and its feeder (or two feeders) are dropped
// rather than retried: a sparser-than-requested world is still a valid
// one to drag through.
func GenerateWorld(t *rapid.T, cfg Config) *grid.TileGrid {
	g := grid.New()

	for x := 0; x < cfg.WorldWidth; x++ {
		if rapid.Float64Range(0, 1).Draw(t, "presence") >= cfg.EntityDensity {
			continue
		}

		pos := geometry.TilePosition{X: x, Y: dragRow}
		e := randomEntity(t)
		if g.Build(pos, e) != nil {
			continue
		}

		if _, isBelt := e.(entity.Belt); !isBelt {
			continue
		}
		if rapid.Float64Range(0, 1).Draw(t, "aboveFeeder") < 0.3 {
			_ = g.Build(geometry.TilePosition{X: x, Y: dragRow - 1}, entity.Belt{Direction: geometry.South, Tier: randomTier(t)})
		}
		if rapid.Float64Range(0, 1).Draw(t, "belowFeeder") < 0.3 {
			_ = g.Build(geometry.TilePosition{X: x, Y: dragRow + 1}, entity.Belt{Direction: geometry.North, Tier: randomTier(t)})
		}
	}

	return g
}

func randomEntity(t *rapid.T) entity.Entity {
	dir := randomDirection(t)
	tier := randomTier(t)

	switch rapid.IntRange(0, 5).Draw(t, "entityKind") {
	case 0:
		return entity.Belt{Direction: dir, Tier: tier}
	case 1:
		return entity.UndergroundBelt{Direction: dir, Tier: tier, IsInput: rapid.Bool().Draw(t, "undergroundIsInput")}
	case 2:
		return entity.Splitter{Direction: dir, Tier: tier}
	case 3:
		return entity.LoaderLike{Direction: dir, Tier: tier, IsInput: rapid.Bool().Draw(t, "loaderIsInput")}
	case 4:
		return entity.CollidingEntityOrTile{}
	default:
		return entity.ImpassableTile{}
	}
}

func randomDirection(t *rapid.T) geometry.Direction {
	dirs := []geometry.Direction{geometry.North, geometry.East, geometry.South, geometry.West}
	return dirs[rapid.IntRange(0, len(dirs)-1).Draw(t, "direction")]
}

func randomTier(t *rapid.T) entity.BeltTier {
	return entity.BeltTiers[rapid.IntRange(0, len(entity.BeltTiers)-1).Draw(t, "tier")]
}
