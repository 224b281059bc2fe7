package dragstate

import (
	"fmt"

	"github.com/dshills/smartbelt/pkg/classifier"
	"github.com/dshills/smartbelt/pkg/geometry"
)

// Kind is the closed set of drag states.
type Kind int

const (
	// OverBelt means the drag's current tile is a plain belt it just
	// placed or integrated.
	OverBelt Kind = iota
	// OverSplitter means the current tile is an integrated splitter.
	OverSplitter
	// BuildingUnderground means the drag is mid-tunnel: InputPos is the
	// tunnel's entry tile, and OutputPos (if HasOutputPos) is its current
	// exit tile, extended as the drag advances.
	BuildingUnderground
	// PassThrough means the drag just adopted a pre-existing underground
	// belt pair spanning LeftPos to RightPos.
	PassThrough
	// OverImpassable means the drag is sitting on a tile it could not
	// cross; ImpassableDirection records which way it was heading when it
	// stopped, so continuing in that same direction raises a deferred
	// error instead of silently retrying.
	OverImpassable
	// ErrorRecovery means the previous step produced a domain error and
	// the drag has not placed anything new since.
	ErrorRecovery
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case OverBelt:
		return "OverBelt"
	case OverSplitter:
		return "OverSplitter"
	case BuildingUnderground:
		return "BuildingUnderground"
	case PassThrough:
		return "PassThrough"
	case OverImpassable:
		return "OverImpassable"
	case ErrorRecovery:
		return "ErrorRecovery"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is a tagged variant; only the fields relevant to Kind are
// meaningful.
type State struct {
	Kind Kind

	// BuildingUnderground fields.
	InputPos       geometry.TilePosition
	HasOutputPos   bool
	OutputPos      geometry.TilePosition
	BuildDirection geometry.DragDirection

	// PassThrough fields.
	LeftPos  geometry.TilePosition
	RightPos geometry.TilePosition

	// OverImpassable fields.
	ImpassableDirection geometry.DragDirection
	ImpassableKind      classifier.ObstacleKind
}

// NewOverBelt returns the state after placing or integrating a plain belt.
func NewOverBelt() State { return State{Kind: OverBelt} }

// NewOverSplitter returns the state after integrating a splitter.
func NewOverSplitter() State { return State{Kind: OverSplitter} }

// NewBuildingUnderground starts (or continues) a tunnel anchored at
// inputPos, heading in dragDirection.
func NewBuildingUnderground(inputPos geometry.TilePosition, dragDirection geometry.DragDirection) State {
	return State{Kind: BuildingUnderground, InputPos: inputPos, BuildDirection: dragDirection}
}

// WithOutputPos returns a copy of a BuildingUnderground state with its
// tunnel exit set to outputPos.
func (s State) WithOutputPos(outputPos geometry.TilePosition) State {
	s.HasOutputPos = true
	s.OutputPos = outputPos
	return s
}

// NewPassThrough returns the state after adopting a pre-existing
// underground pair spanning left to right.
func NewPassThrough(left, right geometry.TilePosition) State {
	return State{Kind: PassThrough, LeftPos: left, RightPos: right}
}

// NewOverImpassable returns the state after the drag stops at a tile it
// cannot cross while heading in direction; kind records why the tile was
// impassable, so a later deferred error names the right cause.
func NewOverImpassable(direction geometry.DragDirection, kind classifier.ObstacleKind) State {
	return State{Kind: OverImpassable, ImpassableDirection: direction, ImpassableKind: kind}
}

// NewErrorRecovery returns the state after a step that produced a domain
// error without placing anything.
func NewErrorRecovery() State { return State{Kind: ErrorRecovery} }

// restingOnLandedOutput reports whether the drag is a BuildingUnderground
// state currently standing exactly on a tunnel exit it already placed,
// as opposed to one still searching (no exit yet, or pushed past a
// placed exit by a further obstacle without replacing it yet).
func (s State) restingOnLandedOutput(lastPos geometry.TilePosition) bool {
	return s.Kind == BuildingUnderground && s.HasOutputPos && lastPos == s.OutputPos
}

// IsOutputtingBelt reports whether the drag's current tile already
// discharges into the next one: true for anything that has just been
// placed or integrated as a belt-like occupant, including a tunnel
// exit the drag is standing on (but not one still searching for a
// landing spot).
func (s State) IsOutputtingBelt(lastPos geometry.TilePosition) bool {
	switch s.Kind {
	case OverBelt, OverSplitter, PassThrough:
		return true
	case BuildingUnderground:
		return s.restingOnLandedOutput(lastPos)
	default:
		return false
	}
}

// IsTraversingObstacle reports whether the drag is currently searching
// for a tunnel landing, still inside the obstacle it's crossing. Once a
// landing has been placed and the drag is standing on it, it classifies
// what comes next as ordinary ground; it only re-enters the search if
// another Obstacle pushes the cursor past that exit without yet placing
// a new one.
func (s State) IsTraversingObstacle(lastPos geometry.TilePosition) bool {
	return s.Kind == BuildingUnderground && !s.restingOnLandedOutput(lastPos)
}

// DeferredError reports the error that should fire before processing a
// new tile, if the drag is continuing in the same direction it was
// already stuck in. Reversing direction out of OverImpassable clears it
// silently; continuing the same way raises CannotTraversePastTile for an
// impassable tile or CannotTraversePastEntity for a curved belt or loader.
func (s State) DeferredError(direction geometry.DragDirection) *ErrorKind {
	if s.Kind != OverImpassable || s.ImpassableDirection != direction {
		return nil
	}
	e := ErrCannotTraversePastEntity
	if s.ImpassableKind == classifier.ObstacleTile {
		e = ErrCannotTraversePastTile
	}
	return &e
}
