// Package drag drives a line drag end to end: it starts a belt at a
// tile, then walks the classifier and state machine forward or backward
// along a ray until it reaches a target tile, applying whatever actions
// the state machine requests to the grid and accumulating any domain
// errors it reports along the way.
package drag
