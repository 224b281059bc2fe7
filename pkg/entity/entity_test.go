package entity

import (
	"testing"

	"github.com/dshills/smartbelt/pkg/geometry"
)

func TestBeltTierFlyweightIdentity(t *testing.T) {
	if YellowBelt == RedBelt {
		t.Fatal("distinct tiers compared equal")
	}
	a := TierByIndex(0)
	b := TierByIndex(0)
	if a != b {
		t.Fatal("same tier index produced distinct flyweights")
	}
	if a != YellowBelt {
		t.Fatal("TierByIndex(0) is not YellowBelt")
	}
}

func TestTierIndexRoundTrip(t *testing.T) {
	for i, tier := range BeltTiers {
		if got := TierIndex(tier); got != i {
			t.Errorf("TierIndex(%s) = %d, want %d", tier.Name, got, i)
		}
	}
	if got := TierIndex(&BeltTierData{Name: "not a real tier"}); got != -1 {
		t.Errorf("TierIndex of unknown tier = %d, want -1", got)
	}
}

func TestUndergroundBeltShapeDirection(t *testing.T) {
	out := UndergroundBelt{Direction: geometry.East, Tier: YellowBelt, IsInput: false}
	if got := out.ShapeDirection(); got != geometry.East {
		t.Errorf("output end shape direction = %s, want East", got)
	}

	in := UndergroundBelt{Direction: geometry.East, Tier: YellowBelt, IsInput: true}
	if got := in.ShapeDirection(); got != geometry.West {
		t.Errorf("input end shape direction = %s, want West", got)
	}
}

func TestUndergroundBeltFlip(t *testing.T) {
	in := UndergroundBelt{Direction: geometry.East, Tier: YellowBelt, IsInput: true}
	flipped := in.Flip()
	if flipped.IsInput {
		t.Error("flipped input end should become an output end")
	}
	if flipped.Direction != geometry.West {
		t.Errorf("flipped direction = %s, want West", flipped.Direction)
	}
	if flipped.Tier != in.Tier {
		t.Error("flip changed tier")
	}
}

func TestBeltConnectableHasOutputHasBackwardsInput(t *testing.T) {
	belt := Belt{Direction: geometry.North, Tier: YellowBelt}
	if !belt.HasOutput() || !belt.HasBackwardsInput() || !belt.AcceptsSidewaysInput() {
		t.Error("plain belt should output, accept backwards input, and accept sideways input")
	}

	ugIn := UndergroundBelt{Direction: geometry.North, Tier: YellowBelt, IsInput: true}
	if ugIn.HasOutput() {
		t.Error("underground entry end should not have output")
	}
	if !ugIn.HasBackwardsInput() {
		t.Error("underground entry end should accept backwards input")
	}

	ugOut := UndergroundBelt{Direction: geometry.North, Tier: YellowBelt, IsInput: false}
	if !ugOut.HasOutput() {
		t.Error("underground exit end should have output")
	}
	if ugOut.HasBackwardsInput() {
		t.Error("underground exit end should not accept backwards input")
	}

	splitter := Splitter{Direction: geometry.North, Tier: YellowBelt}
	if !splitter.HasOutput() || !splitter.HasBackwardsInput() || splitter.AcceptsSidewaysInput() {
		t.Error("splitter should output and accept backwards input, never sideways input")
	}
}

func TestAcceptsInputGoing(t *testing.T) {
	belt := Belt{Direction: geometry.East, Tier: YellowBelt}

	if !AcceptsInputGoing(belt, geometry.East) {
		t.Error("belt should accept an item traveling the same direction it faces (from behind)")
	}
	if AcceptsInputGoing(belt, geometry.West) {
		t.Error("belt should not accept an item arriving head-on from the front")
	}
	if !AcceptsInputGoing(belt, geometry.North) {
		t.Error("belt should accept a sideways item")
	}

	splitter := Splitter{Direction: geometry.East, Tier: YellowBelt}
	if AcceptsInputGoing(splitter, geometry.North) {
		t.Error("splitter should never accept a sideways item")
	}
}

func TestConnectsToFromDirectional(t *testing.T) {
	belt := Belt{Direction: geometry.East, Tier: YellowBelt}

	if !ConnectsToFromDirectional(belt, geometry.East, false) {
		t.Error("belt facing East should connect forward to a neighbor East of it")
	}
	if ConnectsToFromDirectional(belt, geometry.North, false) {
		t.Error("belt facing East should not connect forward to a neighbor North of it")
	}
	if !ConnectsToFromDirectional(belt, geometry.East, true) {
		t.Error("belt facing East should connect backwards to a feed arriving from the East-facing approach")
	}
}

func TestAsBeltConnectable(t *testing.T) {
	var e Entity = Belt{Direction: geometry.North, Tier: YellowBelt}
	if _, ok := AsBeltConnectable(e); !ok {
		t.Error("Belt should downcast to BeltConnectable")
	}

	e = CollidingEntityOrTile{}
	if _, ok := AsBeltConnectable(e); ok {
		t.Error("CollidingEntityOrTile should not downcast to BeltConnectable")
	}

	e = ImpassableTile{}
	if _, ok := AsBeltConnectable(e); ok {
		t.Error("ImpassableTile should not downcast to BeltConnectable")
	}
}
