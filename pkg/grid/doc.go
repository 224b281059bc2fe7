// Package grid implements the sparse tile grid a drag reads from and
// writes to. Tiles are stored only where something occupies them; there
// is no bounding array to resize. A splitter is the one entity that spans
// two tiles (its head and the tile counter-clockwise of its facing
// direction) but is still represented, removed, and upgraded as a single
// unit.
package grid
