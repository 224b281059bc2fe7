package testcase

import "github.com/dshills/smartbelt/pkg/drag"

// Variant is one of the drag patterns §8 property 6 requires to agree
// with a single straight drag.
type Variant int

const (
	// Normal interpolates straight from start to end.
	Normal Variant = iota
	// Wiggle moves forward 2, back 1, repeatedly, before finishing at end.
	Wiggle
	// MegaWiggle moves forward n (increasing), back to start, repeatedly,
	// before finishing at end.
	MegaWiggle
	// ForwardBack drags to end, then back to the leftmost column.
	ForwardBack
)

// String returns the string representation of a Variant.
func (v Variant) String() string {
	switch v {
	case Normal:
		return "Normal"
	case Wiggle:
		return "Wiggle"
	case MegaWiggle:
		return "MegaWiggle"
	case ForwardBack:
		return "ForwardBack"
	default:
		return "Unknown"
	}
}

// nonEmptySubsetOnly reports whether variant's errors only need to
// include every expected error (a superset), rather than an exact match:
// Wiggle and MegaWiggle revisit tiles and can surface errors a single
// pass wouldn't.
func (v Variant) nonEmptySubsetOnly() bool {
	return v == Wiggle || v == MegaWiggle
}

func runVariant(d *drag.LineDrag, e Entities, variant Variant) {
	switch variant {
	case Normal:
		d.InterpolateTo(e.EndPos)
	case Wiggle:
		runWiggle(d, e)
	case MegaWiggle:
		runMegaWiggle(d, e)
	case ForwardBack:
		runForwardBack(d, e)
	}
}

func runWiggle(d *drag.LineDrag, e Entities) {
	ray := d.Ray
	endRay := ray.RayPosition(e.EndPos)
	dirVec := e.BeltDirection.ToVector()
	current := e.StartPos

	for ray.RayPosition(current)+2 < endRay {
		forward2 := current.Add(dirVec.Scale(2))
		d.InterpolateTo(forward2)
		back1 := current.Add(dirVec)
		d.InterpolateTo(back1)
		current = back1
	}
	if ray.RayPosition(current) != endRay {
		d.InterpolateTo(e.EndPos)
	}
}

func runMegaWiggle(d *drag.LineDrag, e Entities) {
	ray := d.Ray
	endRay := ray.RayPosition(e.EndPos)
	dirVec := e.BeltDirection.ToVector()

	for n := 1; n < endRay; n++ {
		forwardN := e.StartPos.Add(dirVec.Scale(n))
		d.InterpolateTo(forwardN)
		d.InterpolateTo(e.StartPos)
	}
	d.InterpolateTo(e.EndPos)
}

func runForwardBack(d *drag.LineDrag, e Entities) {
	d.InterpolateTo(e.EndPos)
	d.InterpolateTo(e.LeftmostPos)
}
