package dragstate

import (
	"fmt"

	"github.com/dshills/smartbelt/pkg/geometry"
)

// Action is the closed set of grid mutations a step can request. The
// driver (pkg/drag) is the only thing that actually touches the grid;
// this package only ever describes what should happen.
type Action int

const (
	// ActionNone means nothing should be placed this step.
	ActionNone Action = iota
	// ActionPlaceBelt places a belt at the next tile facing the drag
	// direction.
	ActionPlaceBelt
	// ActionCreateUnderground starts a new underground belt pair.
	ActionCreateUnderground
	// ActionExtendUnderground moves an in-progress tunnel's exit further
	// out.
	ActionExtendUnderground
	// ActionIntegrateUndergroundPair adopts a pre-existing underground
	// pair without modifying it.
	ActionIntegrateUndergroundPair
	// ActionIntegrateSplitter adopts a pre-existing splitter, upgrading
	// its tier to match the drag if necessary.
	ActionIntegrateSplitter
)

// String returns the string representation of an Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlaceBelt:
		return "PlaceBelt"
	case ActionCreateUnderground:
		return "CreateUnderground"
	case ActionExtendUnderground:
		return "ExtendUnderground"
	case ActionIntegrateUndergroundPair:
		return "IntegrateUndergroundPair"
	case ActionIntegrateSplitter:
		return "IntegrateSplitter"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ActionResult carries an Action plus whichever positional arguments it
// needs; unused fields are zero.
type ActionResult struct {
	Action Action

	// CreateUnderground / ExtendUnderground.
	InputPos  geometry.TilePosition
	OutputPos geometry.TilePosition

	// IntegrateSplitter: the position of the splitter's head tile.
	SplitterPos geometry.TilePosition
}

// ErrorKind is the closed set of non-fatal domain errors a drag step can
// report. These are never Go errors: they are values accumulated by the
// driver and returned to the caller alongside the mutated grid.
type ErrorKind int

const (
	ErrTooFarToConnect ErrorKind = iota
	ErrEntityInTheWay
	ErrCannotUpgradeUnderground
	ErrCannotTraversePastEntity
	ErrCannotTraversePastTile
)

// String returns the string representation of an ErrorKind.
func (e ErrorKind) String() string {
	switch e {
	case ErrTooFarToConnect:
		return "TooFarToConnect"
	case ErrEntityInTheWay:
		return "EntityInTheWay"
	case ErrCannotUpgradeUnderground:
		return "CannotUpgradeUnderground"
	case ErrCannotTraversePastEntity:
		return "CannotTraversePastEntity"
	case ErrCannotTraversePastTile:
		return "CannotTraversePastTile"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(e))
	}
}
