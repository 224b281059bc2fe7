package dragstate

import (
	"github.com/dshills/smartbelt/pkg/classifier"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
)

// Step turns a classification of the tile ahead of lastPos into the next
// drag state, the action the driver should apply to the grid, and an
// optional error to report. direction is the absolute cardinal direction
// of travel; dragDirection is that same step expressed relative to the
// drag's original ray. tier supplies the underground reach used when the
// drag is deciding whether a tunnel can land at the tile ahead.
func Step(state State, cls classifier.Classification, lastPos geometry.TilePosition, direction geometry.Direction, dragDirection geometry.DragDirection, tier entity.BeltTier) (State, ActionResult, *ErrorKind) {
	nextPos := lastPos.Step(direction)

	switch cls.Kind {
	case classifier.IntegratedSplitter:
		return NewOverSplitter(), ActionResult{Action: ActionIntegrateSplitter, SplitterPos: nextPos}, nil

	case classifier.ImpassableObstacle:
		if state.Kind == ErrorRecovery {
			return state, ActionResult{Action: ActionNone}, nil
		}
		return NewOverImpassable(dragDirection, cls.Obstacle), ActionResult{Action: ActionNone}, nil

	case classifier.PassThroughUnderground:
		if cls.UpgradeFailure {
			return NewErrorRecovery(), ActionResult{Action: ActionNone}, errPtr(ErrCannotUpgradeUnderground)
		}
		left, right := geometry.SwapIfBackwards(dragDirection, nextPos, cls.TargetPosition)
		return NewPassThrough(left, right), ActionResult{Action: ActionIntegrateUndergroundPair, InputPos: nextPos, OutputPos: cls.TargetPosition}, nil

	case classifier.Usable:
		return stepUsable(state, lastPos, nextPos, tier)

	case classifier.Obstacle:
		return stepObstacle(state, lastPos, dragDirection)

	default:
		return NewErrorRecovery(), ActionResult{Action: ActionNone}, errPtr(ErrEntityInTheWay)
	}
}

// stepObstacle handles running into something that blocks a direct step
// but might still be tunneled under. Whether it silently begins (or
// continues) a tunnel, or hard-errors, depends entirely on what the drag
// was doing just before: a plain belt tolerates starting a tunnel search;
// an already-integrated splitter or underground pair does not.
func stepObstacle(state State, lastPos geometry.TilePosition, dragDirection geometry.DragDirection) (State, ActionResult, *ErrorKind) {
	switch state.Kind {
	case OverBelt:
		return NewBuildingUnderground(lastPos, dragDirection), ActionResult{Action: ActionNone}, nil

	case BuildingUnderground:
		// Still searching (or still stuck) past the obstacle; nothing to
		// place yet, the state carries everything needed to resume.
		return state, ActionResult{Action: ActionNone}, nil

	case OverImpassable, ErrorRecovery:
		// Already stopped; running into another obstacle doesn't make it
		// any more stopped.
		return state, ActionResult{Action: ActionNone}, nil

	default: // OverSplitter, PassThrough
		return NewErrorRecovery(), ActionResult{Action: ActionNone}, errPtr(ErrEntityInTheWay)
	}
}

// stepUsable handles reaching a clear tile. Outside a tunnel search this
// is an ordinary belt placement.
//
// Mid-search with no landing committed yet, a clear tile is the first
// candidate landing spot: if it's within the tier's underground reach
// (nothing else needs checking — every intervening tile was already
// walked through stepObstacle, and hitting an ImpassableObstacle would
// have stopped the search before it got here), the tunnel is built
// there. If the drag is instead standing exactly on a tunnel it already
// landed, a clear tile just continues as a normal belt: tunnels don't
// auto-extend on their own, only another obstacle immediately following
// the landing pushes the exit further out.
func stepUsable(state State, lastPos, nextPos geometry.TilePosition, tier entity.BeltTier) (State, ActionResult, *ErrorKind) {
	if state.Kind != BuildingUnderground {
		return NewOverBelt(), ActionResult{Action: ActionPlaceBelt}, nil
	}
	if state.HasOutputPos && lastPos == state.OutputPos {
		return NewOverBelt(), ActionResult{Action: ActionPlaceBelt}, nil
	}

	if tileDistance(state.InputPos, nextPos) > tier.UndergroundDistance {
		return NewOverBelt(), ActionResult{Action: ActionPlaceBelt}, errPtr(ErrTooFarToConnect)
	}

	next := state.WithOutputPos(nextPos)
	if state.HasOutputPos {
		return next, ActionResult{Action: ActionExtendUnderground, InputPos: state.InputPos, OutputPos: nextPos}, nil
	}
	return next, ActionResult{Action: ActionCreateUnderground, InputPos: state.InputPos, OutputPos: nextPos}, nil
}

func tileDistance(a, b geometry.TilePosition) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func errPtr(e ErrorKind) *ErrorKind { return &e }
