// Package classifier decides what a drag should do about the next tile
// along its line: step onto it freely, stop at an obstacle, integrate a
// splitter or underground belt pair, or refuse to cross entirely. It
// never mutates the grid; pkg/dragstate turns its answers into actions.
package classifier
