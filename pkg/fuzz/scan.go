package fuzz

import (
	"github.com/dshills/smartbelt/pkg/curvature"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
)

// ScanBeltLine walks g from startPos along dragDirection for as long as
// each tile is belt-connectable and, past the first, fed from the tile
// behind it. Splitters are treated as straight-through belts; a curved
// belt ends the scan without itself (a curve means something merged into
// the line sideways, breaking it); an underground pair jumps the scan
// straight to its exit; a loader ends the scan including itself, since
// nothing is modeled past it.
func ScanBeltLine(g *grid.TileGrid, startPos geometry.TilePosition, dragDirection geometry.Direction) []geometry.TilePosition {
	var result []geometry.TilePosition
	scanPos := startPos

	for i := 0; ; i++ {
		e, ok := g.Get(scanPos)
		if !ok {
			break
		}
		bc, ok := entity.AsBeltConnectable(e)
		if !ok {
			break
		}
		if i > 0 && !isConnectedToPrevious(g, scanPos, dragDirection) {
			break
		}
		result = append(result, scanPos)

		switch v := bc.(type) {
		case entity.Belt:
			if curvature.BeltIsCurvedAt(g, scanPos, v.Direction) {
				return result[:len(result)-1]
			}
		case entity.UndergroundBelt:
			pairPos, ok := g.GetUGPair(scanPos)
			if !ok {
				return result
			}
			scanPos = pairPos
			result = append(result, scanPos)
		case entity.LoaderLike:
			return result
		}
		// Splitters (and anything else belt-connectable) fall through
		// here and advance like an ordinary belt tile.
		scanPos = scanPos.Step(dragDirection)
	}

	return result
}

// isConnectedToPrevious reports whether the tile immediately behind pos
// (relative to dragDirection) outputs into it, in either the drag's
// direction or the reverse, matching a belt placed backward into the
// line.
func isConnectedToPrevious(g *grid.TileGrid, pos geometry.TilePosition, dragDirection geometry.Direction) bool {
	prev := pos.Sub(dragDirection.ToVector())
	out, ok := curvature.OutputDirectionAt(g, prev)
	if !ok {
		return false
	}
	return out == dragDirection || out == dragDirection.Opposite()
}
