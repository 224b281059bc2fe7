// Package geometry provides the coordinate primitives the belt-dragging
// engine is built on: cardinal directions, tile positions, rays (the
// ray-local 1D coordinate system a drag advances along), and the eight
// grid symmetries used to exercise the classifier and state machine from
// every orientation.
package geometry
