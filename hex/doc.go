// Package hex provides cube-coordinate arithmetic for hexagonal boards.
//
// What
//
//   - Coord: an immutable cube position (q, r, s) with q+r+s == 0.
//   - Direction: the six unit directions, in the fixed cyclic order
//     East, SouthEast, SouthWest, West, NorthWest, NorthEast.
//   - Ring / Spiral: cells at an exact distance, and all cells up to it.
//   - Offset conversion (even rows) for deterministic rendering order.
//   - Layout: pointy-top pixel projection for renderers.
//
// Axial deltas of the directions; r grows downward on screen:
//
//	East      ( 1,  0)    West      (-1,  0)
//	SouthEast ( 0,  1)    NorthWest ( 0, -1)
//	SouthWest (-1,  1)    NorthEast ( 1, -1)
//
// Opposite directions are three steps apart in the cycle, so
// d.Opposite() == (d+3) mod 6.
//
// Errors
//
//   - ErrInvalidCube  if a cube triple does not sum to zero.
//   - ErrNotAdjacent  if two cells are not immediate neighbors.
//   - ErrBadDirection if a direction name cannot be parsed.
//
// Both ErrInvalidCube and ErrNotAdjacent describe programmer errors; the
// Must* variants panic with them instead of returning.
package hex
