// Package entity defines the closed set of things that can occupy a tile
// on a belt grid: plain belts, underground belt ends, splitters, loaders,
// and the two catch-all obstacle kinds. Entities are modeled as a small
// tagged-variant interface rather than Go's nearest equivalent of a
// downcastable trait object, so callers can exhaustively switch on Kind()
// instead of probing with type assertions one concrete type at a time.
package entity
