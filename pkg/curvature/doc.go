// Package curvature computes belt curvature as a read-only view over a
// grid. A belt's effective input direction depends on what its
// neighbors output into it; this package never stores that direction, it
// recomputes it from the surrounding tiles every time it's asked, so the
// grid itself never needs a "curved" flag to keep in sync.
package curvature
