package coord

import "fmt"

// PointsBetween lists every lattice point on the segment from c to to,
// both endpoints included. The walk is ascending along the varying axis
// whichever endpoint is larger, so PointsBetween(a, b) equals PointsBetween(b, a).
//
// The endpoints must share X (vertical) or Y (horizontal); PointsBetween
// panics otherwise. Equal endpoints yield a single point.
// Complexity: O(L) time and memory, L = segment length.
func (c Coordinate) PointsBetween(to Coordinate) []Coordinate {
	if c.X != to.X && c.Y != to.Y {
		panic(fmt.Sprintf("coord: PointsBetween(%v, %v): endpoints are not axis-aligned", c, to))
	}
	if c.X == to.X {
		lo, hi := min(c.Y, to.Y), max(c.Y, to.Y)
		out := make([]Coordinate, 0, hi-lo+1)
		for y := lo; ; y++ {
			out = append(out, Coordinate{X: c.X, Y: y})
			if y == hi {
				break
			}
		}
		return out
	}

	lo, hi := min(c.X, to.X), max(c.X, to.X)
	out := make([]Coordinate, 0, hi-lo+1)
	for x := lo; ; x++ {
		out = append(out, Coordinate{X: x, Y: c.Y})
		if x == hi {
			break
		}
	}
	return out
}
