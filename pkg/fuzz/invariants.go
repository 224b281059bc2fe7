package fuzz

import (
	"fmt"

	"github.com/dshills/smartbelt/pkg/drag"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
)

// Result packages one fuzz run for CheckInvariants: the world before and
// after the drag, the parameters the drag ran with, and what it
// reported.
type Result struct {
	Before        *grid.TileGrid
	After         *grid.TileGrid
	StartPos      geometry.TilePosition
	DragDirection geometry.Direction
	Tier          entity.BeltTier
	Errors        []drag.DragError
	Furthest      geometry.TilePosition
}

// CheckInvariants verifies the four structural properties a drag must
// hold regardless of what random world it ran over (§8 properties 1-4):
// a continuous belt line wherever nothing errored, a broken line only
// where something did, a single tier along the integrated line, and
// every tile outside it left exactly as it was.
func CheckInvariants(r Result) error {
	line := ScanBeltLine(r.After, r.StartPos, r.DragDirection)

	if len(line) == 0 {
		if len(r.Errors) == 0 {
			return fmt.Errorf("fuzz: no belts placed and no errors reported")
		}
		return nil
	}

	ray := geometry.NewRay(r.StartPos, r.DragDirection)
	actualEnd := ray.RayPosition(line[len(line)-1])
	expectedEnd := ray.RayPosition(r.Furthest)

	if len(r.Errors) == 0 && actualEnd != expectedEnd {
		return fmt.Errorf("fuzz: no errors but the belt line ends at ray position %d instead of %d", actualEnd, expectedEnd)
	}
	if actualEnd < expectedEnd && len(r.Errors) == 0 {
		return fmt.Errorf("fuzz: belt line broken at ray position %d but no errors reported", actualEnd)
	}

	if err := checkTierPurity(r.After, line, r.Tier); err != nil {
		return err
	}

	integrated := make(map[geometry.TilePosition]bool, len(line))
	for _, p := range line {
		integrated[p] = true
	}
	return checkNonIntegratedUnchanged(r.Before, r.After, integrated)
}

// checkTierPurity requires every belt-connectable tile on the line to
// carry the placement tier; loaders aren't modeled with a meaningful
// tier of their own and are skipped.
func checkTierPurity(g *grid.TileGrid, line []geometry.TilePosition, tier entity.BeltTier) error {
	for _, pos := range line {
		e, ok := g.Get(pos)
		if !ok {
			continue
		}
		if _, ok := e.(entity.LoaderLike); ok {
			continue
		}
		bc, ok := entity.AsBeltConnectable(e)
		if !ok || bc.BeltTier() == tier {
			continue
		}
		return fmt.Errorf("fuzz: belt at %s has tier %v, expected %v", pos, bc.BeltTier(), tier)
	}
	return nil
}

// checkNonIntegratedUnchanged requires every tile the drag never
// touched to hold the exact same entity after the drag as before.
func checkNonIntegratedUnchanged(before, after *grid.TileGrid, integrated map[geometry.TilePosition]bool) error {
	for _, pos := range before.Occupied() {
		if integrated[pos] {
			continue
		}
		beforeEnt, _ := before.Get(pos)
		afterEnt, ok := after.Get(pos)
		if !ok || beforeEnt != afterEnt {
			return fmt.Errorf("fuzz: entity at %s changed outside the integrated belt line: before=%+v after=%+v", pos, beforeEnt, afterEnt)
		}
	}
	return nil
}
