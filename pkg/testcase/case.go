package testcase

import (
	"fmt"
	"os"
	"sort"

	"github.com/dshills/smartbelt/pkg/dragstate"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
	"github.com/dshills/smartbelt/pkg/gridtext"
	"gopkg.in/yaml.v3"
)

// Case is the raw YAML shape of a drag test case, per §6.
type Case struct {
	Name            string   `yaml:"name"`
	Before          string   `yaml:"before"`
	After           string   `yaml:"after"`
	AfterForReverse string   `yaml:"after_for_reverse"`
	ExpectedErrors  []string `yaml:"expected_errors"`
	NotReversible   bool     `yaml:"not_reversible"`
	ForwardBack     bool     `yaml:"forward_back"`
}

// ExpectedError pairs a tile with the error kind a drag should report
// there.
type ExpectedError struct {
	Position geometry.TilePosition
	Kind     dragstate.ErrorKind
}

// Entities is a Case parsed into grids and derived drag parameters,
// ready to drive pkg/drag.
type Entities struct {
	Before          *grid.TileGrid
	After           *grid.TileGrid
	AfterForReverse *grid.TileGrid
	LeftmostPos     geometry.TilePosition
	StartPos        geometry.TilePosition
	BeltDirection   geometry.Direction
	EndPos          geometry.TilePosition
	Tier            entity.BeltTier
	ExpectedErrors  []ExpectedError
}

// DragCase is a named, fully parsed test case.
type DragCase struct {
	Name          string
	Entities      Entities
	NotReversible bool
	ForwardBack   bool
}

// Load reads and parses a single YAML test case file.
func Load(path string) (*DragCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses YAML test-case bytes into a DragCase.
func Parse(data []byte) (*DragCase, error) {
	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("testcase: invalid yaml: %w", err)
	}

	name := c.Name
	if name == "" {
		name = "Unnamed"
	}

	entities, err := getEntities(&c)
	if err != nil {
		return nil, err
	}

	return &DragCase{
		Name:          name,
		Entities:      entities,
		NotReversible: c.NotReversible,
		ForwardBack:   c.ForwardBack,
	}, nil
}

func getEntities(c *Case) (Entities, error) {
	before, beforeMarkers, err := gridtext.Parse(c.Before)
	if err != nil {
		return Entities{}, fmt.Errorf("testcase: failed to parse 'before' entities: %w", err)
	}

	after, afterMarkers, err := gridtext.Parse(c.After)
	if err != nil {
		return Entities{}, fmt.Errorf("testcase: failed to parse 'after' entities: %w", err)
	}

	if len(afterMarkers) != len(c.ExpectedErrors) {
		return Entities{}, fmt.Errorf("testcase: expected %d markers in 'after' to match %d expected_errors", len(afterMarkers), len(c.ExpectedErrors))
	}
	expectedErrors := make([]ExpectedError, len(afterMarkers))
	for i, pos := range afterMarkers {
		kind, err := parseErrorKind(c.ExpectedErrors[i])
		if err != nil {
			return Entities{}, err
		}
		expectedErrors[i] = ExpectedError{Position: pos, Kind: kind}
	}

	var afterForReverse *grid.TileGrid
	if c.AfterForReverse != "" {
		afterForReverse, _, err = gridtext.Parse(c.AfterForReverse)
		if err != nil {
			return Entities{}, fmt.Errorf("testcase: failed to parse 'after_for_reverse' entities: %w", err)
		}
	}

	var startPos geometry.TilePosition
	switch {
	case len(beforeMarkers) > 1:
		return Entities{}, fmt.Errorf("testcase: expected exactly one marker for drag start position, got %d", len(beforeMarkers))
	case len(beforeMarkers) == 1:
		startPos = beforeMarkers[0]
	default:
		pos, ok := firstAtX(after, 0)
		if !ok {
			return Entities{}, fmt.Errorf("testcase: no first position found in 'after'")
		}
		startPos = pos
	}

	firstEnt, ok := firstBeltConnectableInRow(after, startPos)
	if !ok {
		return Entities{}, fmt.Errorf("testcase: no belt found in drag row")
	}

	_, beforeMax, _ := before.Bounds()
	_, afterMax, _ := after.Bounds()
	maxX := beforeMax.X
	if afterMax.X > maxX {
		maxX = afterMax.X
	}

	return Entities{
		Before:          before,
		After:           after,
		AfterForReverse: afterForReverse,
		LeftmostPos:     geometry.TilePosition{X: 0, Y: startPos.Y},
		StartPos:        startPos,
		BeltDirection:   firstEnt.BeltDirection(),
		EndPos:          geometry.TilePosition{X: maxX, Y: startPos.Y},
		Tier:            firstEnt.BeltTier(),
		ExpectedErrors:  expectedErrors,
	}, nil
}

func firstAtX(g *grid.TileGrid, x int) (geometry.TilePosition, bool) {
	positions := g.Occupied()
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	for _, p := range positions {
		if p.X == x {
			return p, true
		}
	}
	return geometry.TilePosition{}, false
}

func firstBeltConnectableInRow(g *grid.TileGrid, startPos geometry.TilePosition) (entity.BeltConnectable, bool) {
	positions := g.Occupied()
	sort.Slice(positions, func(i, j int) bool { return positions[i].X < positions[j].X })
	for _, p := range positions {
		if p.Y != startPos.Y || p.X < startPos.X {
			continue
		}
		e, ok := g.Get(p)
		if !ok {
			continue
		}
		if bc, ok := entity.AsBeltConnectable(e); ok {
			return bc, true
		}
	}
	return nil, false
}
