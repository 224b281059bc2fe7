package fuzz

import (
	"github.com/dshills/smartbelt/pkg/drag"
	"github.com/dshills/smartbelt/pkg/geometry"
	"pgregory.net/rapid"
)

// Run generates a random world, drags a random tier straight across its
// row from the leftmost column to the rightmost, and returns the
// outcome ready for CheckInvariants. It returns an error, not a failed
// property, when the generated world already occupies the start tile:
// not every random world is one a drag can even begin on.
func Run(t *rapid.T, cfg Config) (Result, error) {
	before := GenerateWorld(t, cfg)
	after := before.Clone()
	tier := randomTier(t)

	startPos := geometry.TilePosition{X: 0, Y: dragRow}
	endPos := geometry.TilePosition{X: cfg.WorldWidth - 1, Y: dragRow}

	d, err := drag.StartDrag(after, tier, startPos, geometry.East)
	if err != nil {
		return Result{}, err
	}
	d.InterpolateTo(endPos)

	return Result{
		Before:        before,
		After:         after,
		StartPos:      startPos,
		DragDirection: geometry.East,
		Tier:          tier,
		Errors:        d.Errors(),
		Furthest:      d.FurthestPlacementPos(),
	}, nil
}
