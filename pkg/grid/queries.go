package grid

import (
	"fmt"

	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
)

// PlaceBelt is a convenience wrapper over Build for the common case of
// placing a plain belt.
func (g *TileGrid) PlaceBelt(pos geometry.TilePosition, dir geometry.Direction, tier entity.BeltTier) error {
	return g.Build(pos, entity.Belt{Direction: dir, Tier: tier})
}

// PlaceUnderground is a convenience wrapper over Build for placing one end
// of an underground belt.
func (g *TileGrid) PlaceUnderground(pos geometry.TilePosition, dir geometry.Direction, tier entity.BeltTier, isInput bool) error {
	return g.Build(pos, entity.UndergroundBelt{Direction: dir, Tier: tier, IsInput: isInput})
}

// FlipUnderground reverses the input/output orientation (and direction)
// of the underground belt end at pos in place.
func (g *TileGrid) FlipUnderground(pos geometry.TilePosition) error {
	e, ok := g.Get(pos)
	if !ok {
		return fmt.Errorf("grid: no entity at %s to flip", pos)
	}
	u, ok := e.(entity.UndergroundBelt)
	if !ok {
		return fmt.Errorf("grid: entity at %s is not an underground belt", pos)
	}
	g.tiles[pos] = u.Flip()
	return nil
}

// UpgradeUnderground changes the tier of the underground belt end at pos
// in place.
func (g *TileGrid) UpgradeUnderground(pos geometry.TilePosition, tier entity.BeltTier) error {
	e, ok := g.Get(pos)
	if !ok {
		return fmt.Errorf("grid: no entity at %s to upgrade", pos)
	}
	u, ok := e.(entity.UndergroundBelt)
	if !ok {
		return fmt.Errorf("grid: entity at %s is not an underground belt", pos)
	}
	u.Tier = tier
	g.tiles[pos] = u
	return nil
}

// UpgradeSplitter changes the tier of the splitter at pos (head or tail)
// in place.
func (g *TileGrid) UpgradeSplitter(pos geometry.TilePosition, tier entity.BeltTier) error {
	head, ok := g.SplitterHead(pos)
	if !ok {
		return fmt.Errorf("grid: no splitter at %s to upgrade", pos)
	}
	s := g.tiles[head].(entity.Splitter)
	s.Tier = tier
	for _, p := range footprint(head, s) {
		g.tiles[p] = s
	}
	return nil
}

// GetUGPair finds the underground belt paired with the one at pos,
// scanning up to tier.UndergroundDistance tiles in the direction of
// travel. A different-tier underground belt on the same axis blocks the
// scan (undergrounds tunnel under everything except other undergrounds);
// anything else is transparent to the scan.
func (g *TileGrid) GetUGPair(pos geometry.TilePosition) (geometry.TilePosition, bool) {
	e, ok := g.Get(pos)
	if !ok {
		return geometry.TilePosition{}, false
	}
	u, ok := e.(entity.UndergroundBelt)
	if !ok {
		return geometry.TilePosition{}, false
	}

	scanDir := u.Direction
	if !u.IsInput {
		scanDir = u.Direction.Opposite()
	}

	for i := 1; i <= u.Tier.UndergroundDistance; i++ {
		p := pos.Add(scanDir.ToVector().Scale(i))
		other, ok := g.Get(p)
		if !ok {
			continue
		}
		ou, ok := other.(entity.UndergroundBelt)
		if !ok {
			continue
		}
		if ou.Direction.Axis() != u.Direction.Axis() {
			continue
		}
		if ou.Tier != u.Tier {
			return geometry.TilePosition{}, false
		}
		if ou.IsInput == u.IsInput {
			return geometry.TilePosition{}, false
		}
		return p, true
	}
	return geometry.TilePosition{}, false
}
