// Package gridtext reads and writes grids as whitespace-delimited text,
// one token per tile, so test cases and fixtures can be written by hand.
//
// A token has the shape [*][tier][direction][type]:
//
//	*         zero or more leading markers, collected separately from the grid
//	tier      an optional digit 1-3 selecting a belt tier (default 1, yellow)
//	direction one of < > ^ v (required unless the token is X, #, or empty)
//	type      b (belt, default), i/o (underground input/output),
//	          s (splitter), I/O (loader input/output)
//
// "_" or an empty token means no entity. "X" means an arbitrary colliding
// entity; "#" means an impassable tile.
package gridtext
