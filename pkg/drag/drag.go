package drag

import (
	"fmt"

	"github.com/dshills/smartbelt/pkg/classifier"
	"github.com/dshills/smartbelt/pkg/curvature"
	"github.com/dshills/smartbelt/pkg/dragstate"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
)

// DragError pairs a domain error with the tile it occurred at.
type DragError struct {
	Position geometry.TilePosition
	Kind     dragstate.ErrorKind
}

// String returns a human-readable rendering of a DragError.
func (e DragError) String() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Position)
}

// LineDrag owns nothing the grid doesn't already own: it holds a
// reference to the grid it's mutating, the ray it's advancing along, and
// just enough state to decide the next action. Belts it fails to place
// are reported as errors, never panics; only an internal invariant
// violation (e.g. starting a drag with a nil grid) panics.
type LineDrag struct {
	Grid         *grid.TileGrid
	Tier         entity.BeltTier
	Ray          geometry.Ray
	State        dragstate.State
	LastPosition geometry.TilePosition
	History      *curvature.TileHistory
	errors       []DragError
	seenErrors   map[DragError]bool

	// furthest is the furthest position (the largest ray position, i.e.
	// furthest forward along the ray) the drag has ever actually placed
	// something at. LastPosition tracks the ray cursor, which advances on
	// every step whether or not anything was placed; furthest only moves
	// when a step lands.
	furthest geometry.TilePosition
}

// StartDrag places the first belt of a drag at startPos facing
// beltDirection, returning the driver primed to walk forward or backward
// from there. It fails if startPos is already occupied.
func StartDrag(g *grid.TileGrid, tier entity.BeltTier, startPos geometry.TilePosition, beltDirection geometry.Direction) (*LineDrag, error) {
	if g == nil {
		panic("drag: StartDrag called with a nil grid")
	}
	if !g.CanBuild(startPos, entity.Belt{Direction: beltDirection, Tier: tier}) {
		return nil, fmt.Errorf("drag: cannot start at %s: tile occupied", startPos)
	}
	if err := g.PlaceBelt(startPos, beltDirection, tier); err != nil {
		return nil, err
	}
	return &LineDrag{
		Grid:         g,
		Tier:         tier,
		Ray:          geometry.NewRay(startPos, beltDirection),
		State:        dragstate.NewOverBelt(),
		LastPosition: startPos,
		furthest:     startPos,
		// startPos was empty before this call (CanBuild just confirmed
		// it); recording that masks the belt just placed there so the
		// first step's curvature check sees the pre-drag world, not a
		// straight feed this drag itself just created.
		History:    &curvature.TileHistory{Position: startPos, HadEntity: false},
		seenErrors: make(map[DragError]bool),
	}, nil
}

// Errors returns every domain error accumulated so far, in the order they
// occurred.
func (d *LineDrag) Errors() []DragError {
	return d.errors
}

// FurthestPlacementPos returns the furthest tile the drag successfully
// reached.
func (d *LineDrag) FurthestPlacementPos() geometry.TilePosition {
	return d.furthest
}

// updateFurthest records pos as the new furthest placement if it extends
// further forward along the ray than everything placed so far.
func (d *LineDrag) updateFurthest(pos geometry.TilePosition) {
	if d.Ray.RayPosition(pos) > d.Ray.RayPosition(d.furthest) {
		d.furthest = pos
	}
}

// addError records a domain error, deduplicating by (position, kind) per
// the error-handling design: the same error at the same tile is only
// ever reported once, however many times a wiggling drag revisits it.
func (d *LineDrag) addError(position geometry.TilePosition, kind dragstate.ErrorKind) {
	e := DragError{Position: position, Kind: kind}
	if d.seenErrors[e] {
		return
	}
	d.seenErrors[e] = true
	d.errors = append(d.errors, e)
}

// InterpolateTo advances the drag, one classified step at a time, from
// its current position toward target (snapped onto the drag's ray). The
// ray cursor moves on every step regardless of whether that step actually
// placed anything: one tile for an ordinary step, or straight to the far
// end of an underground pair the step integrates; obstacles only stop
// placements, never the cursor itself.
func (d *LineDrag) InterpolateTo(target geometry.TilePosition) {
	targetRayPos := d.Ray.RayPosition(target)

	for d.Ray.RayPosition(d.LastPosition) != targetRayPos {
		curRayPos := d.Ray.RayPosition(d.LastPosition)
		dragDirection := geometry.Forward
		if targetRayPos < curRayPos {
			dragDirection = geometry.Backward
		}
		d.step(dragDirection)
	}
}

// step performs exactly one classified step in dragDirection, reporting
// whether that step actually placed or integrated something.
func (d *LineDrag) step(dragDirection geometry.DragDirection) bool {
	direction := d.Ray.Direction
	if dragDirection == geometry.Backward {
		direction = direction.Opposite()
	}

	nextPos := d.LastPosition.Step(direction)

	if deferred := d.State.DeferredError(dragDirection); deferred != nil {
		d.addError(nextPos, *deferred)
	}

	view := curvature.TileHistoryView{Grid: d.Grid, History: d.History}
	ctx := classifier.Context{
		IsOutputtingBelt:     d.State.IsOutputtingBelt(d.LastPosition),
		IsTraversingObstacle: d.State.IsTraversingObstacle(d.LastPosition),
	}
	cls := classifier.New(view, d.Tier, direction, ctx, d.Grid.GetUGPair).ClassifyNextTile(d.LastPosition)

	oldState := d.State
	newState, action, errKind := dragstate.Step(d.State, cls, d.LastPosition, direction, dragDirection, d.Tier)
	if errKind != nil {
		d.addError(nextPos, *errKind)
	}

	landing, moved := d.landingFor(cls, nextPos)
	if moved {
		d.History = recordHistory(d.Grid, landing)
	}
	d.applyAction(oldState, action, direction)
	d.State = newState
	if moved {
		d.LastPosition = landing
		d.updateFurthest(landing)
	} else {
		d.LastPosition = nextPos
	}
	return moved
}

// landingFor decides which tile the drag ends up on after this
// classification: one step ahead for an ordinary placement, or the far
// end of a tunnel/underground pair when the drag jumps past tiles it
// doesn't individually visit.
func (d *LineDrag) landingFor(cls classifier.Classification, nextPos geometry.TilePosition) (geometry.TilePosition, bool) {
	switch cls.Kind {
	case classifier.Usable, classifier.IntegratedSplitter:
		return nextPos, true
	case classifier.PassThroughUnderground:
		if cls.UpgradeFailure {
			return geometry.TilePosition{}, false
		}
		return cls.TargetPosition, true
	default:
		return geometry.TilePosition{}, false
	}
}

func recordHistory(g *grid.TileGrid, pos geometry.TilePosition) *curvature.TileHistory {
	e, ok := g.Get(pos)
	return &curvature.TileHistory{Position: pos, HadEntity: ok, Previous: e}
}

// applyAction mutates the grid according to action. Failures here mean a
// classifier/state-machine invariant was violated (e.g. the action
// targets a tile the classifier never actually vetted), which is a
// programmer error, not a domain error, so it panics.
func (d *LineDrag) applyAction(oldState dragstate.State, action dragstate.ActionResult, direction geometry.Direction) {
	switch action.Action {
	case dragstate.ActionNone:
		return

	case dragstate.ActionPlaceBelt:
		// The classifier marks a tile Usable when it's empty, when it
		// already holds exactly this belt (re-traversing a straight run
		// the drag placed earlier), or when it holds an unpaired
		// underground; Remove first so the occupied cases place cleanly
		// instead of erroring.
		pos := oldPosStepped(d, direction)
		d.Grid.Remove(pos)
		must(d.Grid.PlaceBelt(pos, direction, d.Tier))

	case dragstate.ActionIntegrateSplitter:
		head, ok := d.Grid.SplitterHead(action.SplitterPos)
		if !ok {
			panic("drag: IntegrateSplitter targeted a tile with no splitter")
		}
		must(d.Grid.UpgradeSplitter(head, d.Tier))

	case dragstate.ActionCreateUnderground:
		d.Grid.Remove(action.InputPos)
		must(d.Grid.PlaceUnderground(action.InputPos, direction, d.Tier, true))
		must(d.Grid.PlaceUnderground(action.OutputPos, direction, d.Tier, false))

	case dragstate.ActionExtendUnderground:
		if oldState.HasOutputPos {
			d.Grid.Remove(oldState.OutputPos)
		}
		must(d.Grid.PlaceUnderground(action.OutputPos, direction, d.Tier, false))

	case dragstate.ActionIntegrateUndergroundPair:
		// The pair already exists on the grid; nothing to mutate.
	}
}

func oldPosStepped(d *LineDrag, direction geometry.Direction) geometry.TilePosition {
	return d.LastPosition.Step(direction)
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("drag: invariant violated: %v", err))
	}
}
