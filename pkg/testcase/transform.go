package testcase

import (
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
)

// transformGrid rebuilds g under one of the eight grid symmetries,
// remapping every entity's position and facing. Splitter tail tiles are
// skipped on the read side (the head carries the whole entity and the
// new footprint is recomputed by Build from the transformed direction).
func transformGrid(g *grid.TileGrid, t geometry.Transform) *grid.TileGrid {
	out := grid.New()
	for _, pos := range g.Occupied() {
		if head, ok := g.SplitterHead(pos); ok && head != pos {
			continue
		}
		e, ok := g.Get(pos)
		if !ok {
			continue
		}
		newPos := t.TransformPosition(pos)
		newEntity := transformEntity(e, t)
		must(out.Build(newPos, newEntity))
	}
	return out
}

func transformEntity(e entity.Entity, t geometry.Transform) entity.Entity {
	switch v := e.(type) {
	case entity.Belt:
		return entity.Belt{Direction: t.TransformDirection(v.Direction), Tier: v.Tier}
	case entity.UndergroundBelt:
		return entity.UndergroundBelt{Direction: t.TransformDirection(v.Direction), Tier: v.Tier, IsInput: v.IsInput}
	case entity.Splitter:
		return entity.Splitter{Direction: t.TransformDirection(v.Direction), Tier: v.Tier}
	case entity.LoaderLike:
		return entity.LoaderLike{Direction: t.TransformDirection(v.Direction), Tier: v.Tier, IsInput: v.IsInput}
	default:
		return e
	}
}

// flipAllEntities reverses the facing of every entity in g, for checking
// reversibility (§8 property 5): dragging the other way should produce
// the mirror image of this grid. Underground belts additionally swap
// input/output, matching how a reversed drag would encounter them.
func flipAllEntities(g *grid.TileGrid) *grid.TileGrid {
	out := grid.New()
	for _, pos := range g.Occupied() {
		if head, ok := g.SplitterHead(pos); ok && head != pos {
			continue
		}
		e, ok := g.Get(pos)
		if !ok {
			continue
		}
		must(out.Build(pos, flipEntity(e)))
	}
	return out
}

func flipEntity(e entity.Entity) entity.Entity {
	switch v := e.(type) {
	case entity.Belt:
		return entity.Belt{Direction: v.Direction.Opposite(), Tier: v.Tier}
	case entity.UndergroundBelt:
		return v.Flip()
	case entity.Splitter:
		return entity.Splitter{Direction: v.Direction.Opposite(), Tier: v.Tier}
	case entity.LoaderLike:
		return entity.LoaderLike{Direction: v.Direction.Opposite(), Tier: v.Tier, IsInput: !v.IsInput}
	default:
		return e
	}
}

func must(err error) {
	if err != nil {
		panic("testcase: transform produced a colliding grid: " + err.Error())
	}
}
