// Package fuzz generates random belt layouts and drags them across a
// straight row, checking the structural invariants every drag must
// preserve regardless of what it was fed (§8): a continuous belt line
// wherever no error fired, a pure tier along it, and every tile outside
// it left exactly as it was.
package fuzz
