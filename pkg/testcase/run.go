package testcase

import (
	"fmt"
	"strings"

	"github.com/dshills/smartbelt/pkg/drag"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
	"github.com/dshills/smartbelt/pkg/gridtext"
)

// Result is the outcome of running a DragCase's entities through a drag.
type Result struct {
	After  *grid.TileGrid
	Errors []ExpectedError
}

// Run clones e.Before, drags it from StartPos to EndPos along variant, and
// returns the resulting grid and the errors the drag reported.
func Run(e Entities, variant Variant) (Result, error) {
	before := e.Before.Clone()
	d, err := drag.StartDrag(before, e.Tier, e.StartPos, e.BeltDirection)
	if err != nil {
		return Result{}, fmt.Errorf("testcase: could not start drag: %w", err)
	}
	runVariant(d, e, variant)

	errs := make([]ExpectedError, len(d.Errors()))
	for i, de := range d.Errors() {
		errs[i] = ExpectedError{Position: de.Position, Kind: de.Kind}
	}
	return Result{After: before, Errors: errs}, nil
}

// flipEntities mirrors e for a reversibility check (§8 property 5): only
// the grids and the drag direction flip, the derived positions and tier
// stay put, matching a drag run the opposite way over the mirrored layout.
func flipEntities(e Entities) Entities {
	after := e.After
	if e.AfterForReverse != nil {
		after = e.AfterForReverse
	}
	return Entities{
		Before:         flipAllEntities(e.Before),
		After:          flipAllEntities(after),
		LeftmostPos:    e.LeftmostPos,
		StartPos:       e.StartPos,
		BeltDirection:  e.BeltDirection.Opposite(),
		EndPos:         e.EndPos,
		Tier:           e.Tier,
		ExpectedErrors: e.ExpectedErrors,
	}
}

// transformEntities applies one of the eight grid symmetries to e, for
// checking §8 property 7.
func transformEntities(e Entities, t geometry.Transform) Entities {
	expected := make([]ExpectedError, len(e.ExpectedErrors))
	for i, ee := range e.ExpectedErrors {
		expected[i] = ExpectedError{Position: t.TransformPosition(ee.Position), Kind: ee.Kind}
	}
	var after *grid.TileGrid
	if e.AfterForReverse != nil {
		after = transformGrid(e.AfterForReverse, t)
	}
	return Entities{
		Before:          transformGrid(e.Before, t),
		After:           transformGrid(e.After, t),
		AfterForReverse: after,
		LeftmostPos:     t.TransformPosition(e.LeftmostPos),
		StartPos:        t.TransformPosition(e.StartPos),
		BeltDirection:   t.TransformDirection(e.BeltDirection),
		EndPos:          t.TransformPosition(e.EndPos),
		Tier:            e.Tier,
		ExpectedErrors:  expected,
	}
}

// Check runs dc's entities (optionally flipped for a reversibility check)
// under variant and reports whether the resulting grid and error set match
// what the case expects.
func Check(dc *DragCase, reverse bool, variant Variant) error {
	e := dc.Entities
	want := e.After
	if reverse {
		e = flipEntities(e)
		want = e.After
	}

	result, err := Run(e, variant)
	if err != nil {
		return fmt.Errorf("%s: %w", dc.Name, err)
	}

	if !result.After.Equal(want) {
		return fmt.Errorf("%s: grid mismatch (reverse=%v, variant=%s)\nbefore:\n%s\nwant:\n%s\ngot:\n%s",
			dc.Name, reverse, variant,
			gridtext.Format(e.Before, nil),
			gridtext.Format(want, nil),
			gridtext.Format(result.After, nil))
	}

	if err := checkErrors(e.ExpectedErrors, result.Errors, variant); err != nil {
		return fmt.Errorf("%s (reverse=%v, variant=%s): %w", dc.Name, reverse, variant, err)
	}
	return nil
}

func checkErrors(want, got []ExpectedError, variant Variant) error {
	if variant.nonEmptySubsetOnly() {
		if len(want) > 0 && len(got) == 0 {
			return fmt.Errorf("expected at least one error, got none")
		}
		gotSet := make(map[ExpectedError]bool, len(got))
		for _, g := range got {
			gotSet[g] = true
		}
		for _, w := range want {
			if !gotSet[w] {
				return fmt.Errorf("expected error %+v missing from %v", w, got)
			}
		}
		return nil
	}
	if len(want) != len(got) {
		return fmt.Errorf("expected errors %v, got %v", want, got)
	}
	for i, w := range want {
		if w != got[i] {
			return fmt.Errorf("expected errors %v, got %v", want, got)
		}
	}
	return nil
}

// CheckAllTransforms runs Check over dc under every one of the eight grid
// symmetries (§8 property 7), and over the reverse direction too unless
// dc.NotReversible.
func CheckAllTransforms(dc *DragCase, variant Variant) error {
	var failures []string
	for i, t := range geometry.AllUniqueTransforms() {
		transformed := &DragCase{
			Name:          dc.Name,
			Entities:      transformEntities(dc.Entities, t),
			NotReversible: dc.NotReversible,
			ForwardBack:   dc.ForwardBack,
		}
		if err := Check(transformed, false, variant); err != nil {
			failures = append(failures, fmt.Sprintf("[transform %d] %v", i, err))
		}
		if !dc.NotReversible {
			if err := Check(transformed, true, variant); err != nil {
				failures = append(failures, fmt.Sprintf("[transform %d] [reverse] %v", i, err))
			}
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%s", strings.Join(failures, "\n"))
	}
	return nil
}
