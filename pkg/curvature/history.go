package curvature

import (
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
)

// TileHistory records what a single tile held immediately before the
// current drag step, so curvature and classification can be computed
// against "the grid as it was before this step" without the grid itself
// ever storing two versions of a tile.
type TileHistory struct {
	Position   geometry.TilePosition
	HadEntity  bool
	Previous   entity.Entity
}

// TileHistoryView overlays a single TileHistory slot on top of a grid:
// a lookup at the history's position returns the recorded previous
// state; every other lookup falls through to the underlying grid.
type TileHistoryView struct {
	Grid    GridReader
	History *TileHistory
}

// Get implements GridReader.
func (v TileHistoryView) Get(pos geometry.TilePosition) (entity.Entity, bool) {
	if v.History != nil && pos == v.History.Position {
		if v.History.HadEntity {
			return v.History.Previous, true
		}
		return nil, false
	}
	return v.Grid.Get(pos)
}
