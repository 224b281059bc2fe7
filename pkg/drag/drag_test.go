package drag

import (
	"testing"

	"github.com/dshills/smartbelt/pkg/dragstate"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
)

func TestStraightLineDragPlacesBelts(t *testing.T) {
	g := grid.New()
	start := geometry.TilePosition{X: 0, Y: 0}
	end := geometry.TilePosition{X: 4, Y: 0}

	d, err := StartDrag(g, entity.YellowBelt, start, geometry.East)
	if err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	d.InterpolateTo(end)

	if len(d.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", d.Errors())
	}
	if d.FurthestPlacementPos() != end {
		t.Fatalf("FurthestPlacementPos = %s, want %s", d.FurthestPlacementPos(), end)
	}
	for x := 0; x <= 4; x++ {
		pos := geometry.TilePosition{X: x, Y: 0}
		e, ok := g.Get(pos)
		if !ok {
			t.Fatalf("expected a belt at %s", pos)
		}
		belt, ok := e.(entity.Belt)
		if !ok || belt.Direction != geometry.East || belt.Tier != entity.YellowBelt {
			t.Fatalf("unexpected entity %+v at %s", e, pos)
		}
	}
}

func TestDragStopsAtObstacle(t *testing.T) {
	g := grid.New()
	start := geometry.TilePosition{X: 0, Y: 0}
	blocker := geometry.TilePosition{X: 2, Y: 0}
	if err := g.Build(blocker, entity.ImpassableTile{}); err != nil {
		t.Fatalf("Build blocker: %v", err)
	}

	d, err := StartDrag(g, entity.YellowBelt, start, geometry.East)
	if err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	d.InterpolateTo(geometry.TilePosition{X: 5, Y: 0})

	// The ray cursor walks straight through the impassable tile; the drag
	// cannot place anything at (2,0) but resumes placing a fresh segment
	// right after it, so the furthest placement is past the obstacle.
	if d.FurthestPlacementPos() != (geometry.TilePosition{X: 5, Y: 0}) {
		t.Fatalf("FurthestPlacementPos = %s, want (5,0)", d.FurthestPlacementPos())
	}
	errs := d.Errors()
	if len(errs) != 1 || errs[0].Position != (geometry.TilePosition{X: 3, Y: 0}) || errs[0].Kind != dragstate.ErrCannotTraversePastTile {
		t.Fatalf("errors = %v, want a single CannotTraversePastTile at (3,0)", errs)
	}
	if e, ok := g.Get(blocker); !ok {
		t.Fatal("blocker tile should be untouched")
	} else if _, ok := e.(entity.ImpassableTile); !ok {
		t.Fatalf("blocker tile should still be the impassable tile, got %+v", e)
	}
	for _, x := range []int{0, 1, 3, 4, 5} {
		pos := geometry.TilePosition{X: x, Y: 0}
		if _, ok := g.Get(pos); !ok {
			t.Fatalf("expected a belt at %s", pos)
		}
	}
}

func TestDragCreatesUndergroundOverBackwardsBelts(t *testing.T) {
	g := grid.New()
	start := geometry.TilePosition{X: 0, Y: 0}
	// Two belts facing back at the incoming drag.
	if err := g.PlaceBelt(geometry.TilePosition{X: 2, Y: 0}, geometry.West, entity.YellowBelt); err != nil {
		t.Fatalf("PlaceBelt: %v", err)
	}
	if err := g.PlaceBelt(geometry.TilePosition{X: 3, Y: 0}, geometry.West, entity.YellowBelt); err != nil {
		t.Fatalf("PlaceBelt: %v", err)
	}

	d, err := StartDrag(g, entity.YellowBelt, start, geometry.East)
	if err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	d.InterpolateTo(geometry.TilePosition{X: 6, Y: 0})

	if len(d.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", d.Errors())
	}

	in, ok := g.Get(geometry.TilePosition{X: 1, Y: 0})
	if !ok {
		t.Fatal("expected an underground belt entry at (1,0)")
	}
	if u, ok := in.(entity.UndergroundBelt); !ok || !u.IsInput {
		t.Fatalf("expected underground entry at (1,0), got %+v", in)
	}

	out, ok := g.Get(geometry.TilePosition{X: 4, Y: 0})
	if !ok {
		t.Fatal("expected an underground belt exit at (4,0)")
	}
	if u, ok := out.(entity.UndergroundBelt); !ok || u.IsInput {
		t.Fatalf("expected underground exit at (4,0), got %+v", out)
	}
}

func TestDragTunnelsUnderASingleObstacle(t *testing.T) {
	g := grid.New()
	start := geometry.TilePosition{X: 0, Y: 0}
	obstacle := geometry.TilePosition{X: 2, Y: 0}
	if err := g.Build(obstacle, entity.CollidingEntityOrTile{}); err != nil {
		t.Fatalf("Build obstacle: %v", err)
	}

	d, err := StartDrag(g, entity.YellowBelt, start, geometry.East)
	if err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	d.InterpolateTo(geometry.TilePosition{X: 4, Y: 0})

	if len(d.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", d.Errors())
	}

	in, ok := g.Get(geometry.TilePosition{X: 1, Y: 0})
	if !ok {
		t.Fatal("expected an underground belt entry at (1,0)")
	}
	if u, ok := in.(entity.UndergroundBelt); !ok || !u.IsInput || u.Tier != entity.YellowBelt {
		t.Fatalf("expected tier-1 underground entry at (1,0), got %+v", in)
	}

	if e, ok := g.Get(obstacle); !ok {
		t.Fatal("obstacle tile should be untouched")
	} else if _, ok := e.(entity.CollidingEntityOrTile); !ok {
		t.Fatalf("obstacle tile should still be the colliding entity, got %+v", e)
	}

	out, ok := g.Get(geometry.TilePosition{X: 3, Y: 0})
	if !ok {
		t.Fatal("expected an underground belt exit at (3,0)")
	}
	if u, ok := out.(entity.UndergroundBelt); !ok || u.IsInput || u.Tier != entity.YellowBelt {
		t.Fatalf("expected tier-1 underground exit at (3,0), got %+v", out)
	}

	for _, x := range []int{0, 4} {
		pos := geometry.TilePosition{X: x, Y: 0}
		e, ok := g.Get(pos)
		if !ok {
			t.Fatalf("expected a belt at %s", pos)
		}
		if belt, ok := e.(entity.Belt); !ok || belt.Direction != geometry.East {
			t.Fatalf("expected an east-facing belt at %s, got %+v", pos, e)
		}
	}
}

func TestDragIntegratesAlignedSplitter(t *testing.T) {
	g := grid.New()
	start := geometry.TilePosition{X: 0, Y: 0}
	splitterHead := geometry.TilePosition{X: 1, Y: 0}
	if err := g.Build(splitterHead, entity.Splitter{Direction: geometry.East, Tier: entity.YellowBelt}); err != nil {
		t.Fatalf("Build splitter: %v", err)
	}

	d, err := StartDrag(g, entity.YellowBelt, start, geometry.East)
	if err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	d.InterpolateTo(geometry.TilePosition{X: 3, Y: 0})

	if len(d.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", d.Errors())
	}
	e, ok := g.Get(splitterHead)
	if !ok {
		t.Fatal("splitter should remain in place")
	}
	if _, ok := e.(entity.Splitter); !ok {
		t.Fatalf("expected splitter at %s, got %+v", splitterHead, e)
	}
}

func TestDragReversingClearsDeferredError(t *testing.T) {
	g := grid.New()
	start := geometry.TilePosition{X: 0, Y: 0}
	if err := g.Build(geometry.TilePosition{X: 1, Y: -1}, entity.Belt{Direction: geometry.South, Tier: entity.YellowBelt}); err != nil {
		t.Fatalf("Build feeder: %v", err)
	}
	if err := g.Build(geometry.TilePosition{X: 1, Y: 0}, entity.Belt{Direction: geometry.East, Tier: entity.YellowBelt}); err != nil {
		t.Fatalf("Build curved belt: %v", err)
	}

	d, err := StartDrag(g, entity.YellowBelt, start, geometry.East)
	if err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	// Run into the curved belt, which is impassable because the drag is
	// outputting directly into its curve. The ray cursor still advances
	// onto it, but the first encounter never raises an error.
	d.InterpolateTo(geometry.TilePosition{X: 1, Y: 0})
	if len(d.Errors()) != 0 {
		t.Fatalf("hitting an impassable tile should not raise an error on the way in, got %v", d.Errors())
	}

	// Reversing away from it by one tile should not raise the deferred
	// error either, since the drag never continued forward into it a
	// second time.
	d.InterpolateTo(start)
	if len(d.Errors()) != 0 {
		t.Fatalf("reversing away from an impassable tile should not raise a deferred error, got %v", d.Errors())
	}
}

func TestDragContinuingIntoImpassableRaisesDeferredError(t *testing.T) {
	g := grid.New()
	start := geometry.TilePosition{X: 0, Y: 0}
	if err := g.Build(geometry.TilePosition{X: 1, Y: -1}, entity.Belt{Direction: geometry.South, Tier: entity.YellowBelt}); err != nil {
		t.Fatalf("Build feeder: %v", err)
	}
	if err := g.Build(geometry.TilePosition{X: 1, Y: 0}, entity.Belt{Direction: geometry.East, Tier: entity.YellowBelt}); err != nil {
		t.Fatalf("Build curved belt: %v", err)
	}

	d, err := StartDrag(g, entity.YellowBelt, start, geometry.East)
	if err != nil {
		t.Fatalf("StartDrag: %v", err)
	}

	// A single InterpolateTo spanning both the stuck tile and one step
	// beyond it should surface the deferred error, since the second step
	// continues in the same direction that got stuck.
	d.InterpolateTo(geometry.TilePosition{X: 2, Y: 0})

	errs := d.Errors()
	if len(errs) != 1 || errs[0].Position != (geometry.TilePosition{X: 2, Y: 0}) || errs[0].Kind != dragstate.ErrCannotTraversePastEntity {
		t.Fatalf("errors = %v, want a single CannotTraversePastEntity at (2,0)", errs)
	}
	if d.FurthestPlacementPos() != (geometry.TilePosition{X: 2, Y: 0}) {
		t.Fatalf("FurthestPlacementPos = %s, want (2,0)", d.FurthestPlacementPos())
	}
}
