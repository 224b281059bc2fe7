package grid

import (
	"fmt"

	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
)

// TileGrid is a sparse map from tile position to the entity occupying it.
type TileGrid struct {
	tiles       map[geometry.TilePosition]entity.Entity
	splitterTailOf map[geometry.TilePosition]geometry.TilePosition
}

// New returns an empty grid.
func New() *TileGrid {
	return &TileGrid{
		tiles:          make(map[geometry.TilePosition]entity.Entity),
		splitterTailOf: make(map[geometry.TilePosition]geometry.TilePosition),
	}
}

// Get returns the entity at pos, if any. For a splitter's tail tile this
// returns the same Splitter value stored at its head.
func (g *TileGrid) Get(pos geometry.TilePosition) (entity.Entity, bool) {
	e, ok := g.tiles[pos]
	return e, ok
}

// IsOccupied reports whether any entity occupies pos.
func (g *TileGrid) IsOccupied(pos geometry.TilePosition) bool {
	_, ok := g.tiles[pos]
	return ok
}

// footprint returns every tile an entity placed at pos would occupy.
func footprint(pos geometry.TilePosition, e entity.Entity) []geometry.TilePosition {
	if s, ok := e.(entity.Splitter); ok {
		tail := pos.Add(s.TailOffset(s.Direction))
		return []geometry.TilePosition{pos, tail}
	}
	return []geometry.TilePosition{pos}
}

// CanBuild reports whether e could be placed at pos without overlapping
// an existing entity on any of the tiles it would occupy.
func (g *TileGrid) CanBuild(pos geometry.TilePosition, e entity.Entity) bool {
	for _, p := range footprint(pos, e) {
		if g.IsOccupied(p) {
			return false
		}
	}
	return true
}

// Build places e at pos, returning an error if any tile it would occupy
// is already taken.
func (g *TileGrid) Build(pos geometry.TilePosition, e entity.Entity) error {
	positions := footprint(pos, e)
	for _, p := range positions {
		if g.IsOccupied(p) {
			return fmt.Errorf("grid: tile %s is already occupied", p)
		}
	}
	for _, p := range positions {
		g.tiles[p] = e
	}
	if len(positions) == 2 {
		g.splitterTailOf[positions[1]] = positions[0]
	}
	return nil
}

// Remove deletes whatever entity occupies pos, including every tile a
// splitter spans if pos is part of one. Removing an unoccupied tile is a
// no-op.
func (g *TileGrid) Remove(pos geometry.TilePosition) {
	head := pos
	if h, ok := g.splitterTailOf[pos]; ok {
		head = h
	}
	e, ok := g.tiles[head]
	if !ok {
		return
	}
	for _, p := range footprint(head, e) {
		delete(g.tiles, p)
		delete(g.splitterTailOf, p)
	}
}

// SplitterHead returns the head position of the splitter occupying pos
// (which may itself be the head), or ok=false if pos isn't part of a
// splitter.
func (g *TileGrid) SplitterHead(pos geometry.TilePosition) (geometry.TilePosition, bool) {
	e, _ := g.Get(pos)
	if _, ok := e.(entity.Splitter); !ok {
		return geometry.TilePosition{}, false
	}
	if head, ok := g.splitterTailOf[pos]; ok {
		return head, true
	}
	return pos, true
}

// Equal reports whether g and other occupy exactly the same tiles with
// identical entities.
func (g *TileGrid) Equal(other *TileGrid) bool {
	if len(g.tiles) != len(other.tiles) {
		return false
	}
	for p, e := range g.tiles {
		oe, ok := other.tiles[p]
		if !ok || oe != e {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of g; mutating one doesn't affect
// the other.
func (g *TileGrid) Clone() *TileGrid {
	clone := New()
	for p, e := range g.tiles {
		clone.tiles[p] = e
	}
	for tail, head := range g.splitterTailOf {
		clone.splitterTailOf[tail] = head
	}
	return clone
}

// Occupied returns every occupied tile position, in no particular order.
// A two-tile splitter contributes both its head and tail position.
func (g *TileGrid) Occupied() []geometry.TilePosition {
	positions := make([]geometry.TilePosition, 0, len(g.tiles))
	for p := range g.tiles {
		positions = append(positions, p)
	}
	return positions
}

// Bounds returns the smallest axis-aligned box containing every occupied
// tile. ok is false for an empty grid.
func (g *TileGrid) Bounds() (min, max geometry.TilePosition, ok bool) {
	first := true
	for p := range g.tiles {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, !first
}
