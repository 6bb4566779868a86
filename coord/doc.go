// Package coord provides the integer lattice point used by grid puzzles.
//
// What:
//
//   - Coordinate is an (X, Y) pair of unsigned integers; the origin is the
//     top-left corner of the grid, X grows east and Y grows south.
//   - Values are comparable, so they work as map keys and set members.
//   - Ordering is X first, then Y (Compare, Less, Sort).
//
// Operations:
//
//   - Parse / MustParse read the "x,y" form; String writes it back.
//   - IsWithinBounds checks an inclusive rectangle.
//   - PointsBetween walks an axis-aligned segment, always ascending.
//   - OrthogonalNeighbors yields the 4-connected neighborhood (W, N, E, S).
//   - AllNeighbors yields the 8-connected neighborhood
//     (W, NW, N, NE, E, SE, S, SW).
//
// Grid dimensions are never stored on a Coordinate; callers pass the width
// and height at call time, so the same point can be valid in one grid and
// outside another.
//
// Errors:
//
//   - ErrMalformed: the input is not two comma-separated decimal integers.
//
// PointsBetween panics when the endpoints share neither axis; that is a
// programming error, not bad input.
package coord
