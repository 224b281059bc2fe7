// Package dragstate implements the belt-drag state machine: given what
// the classifier says about the next tile, it decides what action to
// apply to the grid, what state the drag is left in, and whether a
// domain error should be reported. The direction of the step being taken
// is always passed in by the caller, so the same table works for drags
// run forwards or backwards; State keeps a DragDirection only to remember
// which way a tunnel was started (BuildDirection) or an impassable
// obstacle was met (ImpassableDirection).
package dragstate
