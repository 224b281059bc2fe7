package dragstate

import (
	"testing"

	"github.com/dshills/smartbelt/pkg/classifier"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
)

func TestStepUsablePlacesBelt(t *testing.T) {
	start := geometry.TilePosition{X: 0, Y: 0}
	next, action, err := Step(NewOverBelt(), classifier.Classification{Kind: classifier.Usable}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("unexpected error %v", *err)
	}
	if next.Kind != OverBelt {
		t.Fatalf("Kind = %s, want OverBelt", next.Kind)
	}
	if action.Action != ActionPlaceBelt {
		t.Fatalf("Action = %s, want PlaceBelt", action.Action)
	}
}

func TestStepObstacleFromOverBeltStartsTunnelSearch(t *testing.T) {
	start := geometry.TilePosition{X: 0, Y: 0}
	next, action, err := Step(NewOverBelt(), classifier.Classification{Kind: classifier.Obstacle}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("starting a tunnel search should not raise an error, got %v", *err)
	}
	if next.Kind != BuildingUnderground || next.InputPos != start || next.HasOutputPos {
		t.Fatalf("got %+v, want BuildingUnderground{InputPos: %s, no output}", next, start)
	}
	if action.Action != ActionNone {
		t.Fatalf("Action = %s, want None", action.Action)
	}
}

func TestStepObstacleFromSplitterOrPassThroughErrors(t *testing.T) {
	for _, s := range []State{NewOverSplitter(), NewPassThrough(geometry.TilePosition{}, geometry.TilePosition{X: 1})} {
		next, action, err := Step(s, classifier.Classification{Kind: classifier.Obstacle}, geometry.TilePosition{}, geometry.East, geometry.Forward, entity.YellowBelt)
		if err == nil || *err != ErrEntityInTheWay {
			t.Fatalf("expected EntityInTheWay from %s, got %v", s.Kind, err)
		}
		if next.Kind != ErrorRecovery {
			t.Fatalf("Kind = %s, want ErrorRecovery", next.Kind)
		}
		if action.Action != ActionNone {
			t.Fatalf("Action = %s, want None", action.Action)
		}
	}
}

func TestStepObstacleContinuesSearchWhileBuildingUnderground(t *testing.T) {
	start := geometry.TilePosition{X: 2, Y: 0}
	building := NewBuildingUnderground(geometry.TilePosition{X: 0, Y: 0}, geometry.Forward)
	next, action, err := Step(building, classifier.Classification{Kind: classifier.Obstacle}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("unexpected error %v", *err)
	}
	if next != building {
		t.Fatalf("got %+v, want state unchanged while still searching", next)
	}
	if action.Action != ActionNone {
		t.Fatalf("Action = %s, want None", action.Action)
	}
}

func TestStepImpassableDefersError(t *testing.T) {
	start := geometry.TilePosition{X: 0, Y: 0}
	next, _, err := Step(NewOverBelt(), classifier.Classification{Kind: classifier.ImpassableObstacle}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("ImpassableObstacle should not raise an immediate error, got %v", *err)
	}
	if next.Kind != OverImpassable {
		t.Fatalf("Kind = %s, want OverImpassable", next.Kind)
	}

	if got := next.DeferredError(geometry.Forward); got == nil || *got != ErrCannotTraversePastEntity {
		t.Fatalf("continuing the same direction should defer CannotTraversePastEntity, got %v", got)
	}
	if got := next.DeferredError(geometry.Backward); got != nil {
		t.Fatalf("reversing out of OverImpassable should not raise a deferred error, got %v", *got)
	}
}

func TestStepUsableBuildsTunnelWhenWithinReach(t *testing.T) {
	start := geometry.TilePosition{X: 2, Y: 0}
	building := NewBuildingUnderground(geometry.TilePosition{X: 0, Y: 0}, geometry.Forward)
	next, action, err := Step(building, classifier.Classification{Kind: classifier.Usable}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("unexpected error %v", *err)
	}
	if next.Kind != BuildingUnderground || next.InputPos != (geometry.TilePosition{X: 0, Y: 0}) {
		t.Fatalf("got %+v, want BuildingUnderground with original InputPos", next)
	}
	wantOutput := start.Step(geometry.East)
	if !next.HasOutputPos || next.OutputPos != wantOutput {
		t.Fatalf("OutputPos = %s (has=%v), want %s", next.OutputPos, next.HasOutputPos, wantOutput)
	}
	if action.Action != ActionCreateUnderground || action.InputPos != (geometry.TilePosition{X: 0, Y: 0}) || action.OutputPos != wantOutput {
		t.Fatalf("got %+v, want CreateUnderground %s->%s", action, geometry.TilePosition{X: 0, Y: 0}, wantOutput)
	}
}

func TestStepUsableExtendsAlreadyPlacedTunnel(t *testing.T) {
	input := geometry.TilePosition{X: 0, Y: 0}
	building := NewBuildingUnderground(input, geometry.Forward).WithOutputPos(geometry.TilePosition{X: 3, Y: 0})
	start := geometry.TilePosition{X: 4, Y: 0}
	next, action, err := Step(building, classifier.Classification{Kind: classifier.Usable}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("unexpected error %v", *err)
	}
	wantOutput := start.Step(geometry.East)
	if next.InputPos != input || !next.HasOutputPos || next.OutputPos != wantOutput {
		t.Fatalf("got %+v, want extended tunnel landing at %s", next, wantOutput)
	}
	if action.Action != ActionExtendUnderground || action.OutputPos != wantOutput {
		t.Fatalf("got %+v, want ExtendUnderground to %s", action, wantOutput)
	}
}

func TestStepUsableTooFarFallsBackToBelt(t *testing.T) {
	input := geometry.TilePosition{X: 0, Y: 0}
	building := NewBuildingUnderground(input, geometry.Forward)
	start := geometry.TilePosition{X: 9, Y: 0}
	next, action, err := Step(building, classifier.Classification{Kind: classifier.Usable}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err == nil || *err != ErrTooFarToConnect {
		t.Fatalf("expected TooFarToConnect, got %v", err)
	}
	if next.Kind != OverBelt {
		t.Fatalf("Kind = %s, want OverBelt", next.Kind)
	}
	if action.Action != ActionPlaceBelt {
		t.Fatalf("Action = %s, want PlaceBelt", action.Action)
	}
}

func TestStepPassThroughUnderground(t *testing.T) {
	start := geometry.TilePosition{X: 0, Y: 0}
	far := geometry.TilePosition{X: 5, Y: 0}
	next, action, err := Step(NewOverBelt(), classifier.Classification{Kind: classifier.PassThroughUnderground, TargetPosition: far}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("unexpected error %v", *err)
	}
	if next.Kind != PassThrough || next.RightPos != far {
		t.Fatalf("got %+v, want PassThrough to %s", next, far)
	}
	if action.Action != ActionIntegrateUndergroundPair {
		t.Fatalf("Action = %s, want IntegrateUndergroundPair", action.Action)
	}
}

func TestStepPassThroughUndergroundSwapsForBackwardDrag(t *testing.T) {
	start := geometry.TilePosition{X: 5, Y: 0}
	far := geometry.TilePosition{X: 0, Y: 0}
	next, _, err := Step(NewOverBelt(), classifier.Classification{Kind: classifier.PassThroughUnderground, TargetPosition: far}, start, geometry.West, geometry.Backward, entity.YellowBelt)
	if err != nil {
		t.Fatalf("unexpected error %v", *err)
	}
	if next.Kind != PassThrough || next.LeftPos != far || next.RightPos != start.Step(geometry.West) {
		t.Fatalf("got %+v, want LeftPos=%s RightPos=%s", next, far, start.Step(geometry.West))
	}
}

func TestStepPassThroughUndergroundUpgradeFailure(t *testing.T) {
	start := geometry.TilePosition{X: 0, Y: 0}
	next, _, err := Step(NewOverBelt(), classifier.Classification{Kind: classifier.PassThroughUnderground, UpgradeFailure: true}, start, geometry.East, geometry.Forward, entity.YellowBelt)
	if err == nil || *err != ErrCannotUpgradeUnderground {
		t.Fatalf("expected CannotUpgradeUnderground, got %v", err)
	}
	if next.Kind != ErrorRecovery {
		t.Fatalf("Kind = %s, want ErrorRecovery", next.Kind)
	}
}

func TestIsOutputtingBeltAndIsTraversingObstacle(t *testing.T) {
	origin := geometry.TilePosition{}
	output := geometry.TilePosition{X: 3}
	beyondOutput := geometry.TilePosition{X: 4}

	if !NewOverBelt().IsOutputtingBelt(origin) {
		t.Error("OverBelt should be outputting")
	}
	if !NewOverSplitter().IsOutputtingBelt(origin) {
		t.Error("OverSplitter should be outputting")
	}
	if NewErrorRecovery().IsOutputtingBelt(origin) {
		t.Error("ErrorRecovery should not be outputting")
	}
	if NewBuildingUnderground(origin, geometry.Forward).IsOutputtingBelt(origin) {
		t.Error("BuildingUnderground without a landed output should not be outputting")
	}
	landed := NewBuildingUnderground(origin, geometry.Forward).WithOutputPos(output)
	if !landed.IsOutputtingBelt(output) {
		t.Error("BuildingUnderground standing on its landed output should be outputting")
	}
	if landed.IsOutputtingBelt(beyondOutput) {
		t.Error("BuildingUnderground pushed past its landed output should not read as outputting")
	}
	if !NewBuildingUnderground(origin, geometry.Forward).IsTraversingObstacle(origin) {
		t.Error("BuildingUnderground without a landed output should be traversing an obstacle")
	}
	if landed.IsTraversingObstacle(output) {
		t.Error("BuildingUnderground standing on its landed output should not read as traversing")
	}
	if !landed.IsTraversingObstacle(beyondOutput) {
		t.Error("BuildingUnderground pushed past its landed output should read as traversing again")
	}
	if NewOverBelt().IsTraversingObstacle(origin) {
		t.Error("OverBelt should not be traversing an obstacle")
	}
}
