package coord

// A zero width or height yields no east or south neighbor; nothing wraps.

func (c Coordinate) hasWest() bool  { return c.X > 0 }
func (c Coordinate) hasNorth() bool { return c.Y > 0 }

func (c Coordinate) hasEast(maxWidth uint) bool {
	return maxWidth > 0 && c.X < maxWidth-1
}

func (c Coordinate) hasSouth(maxHeight uint) bool {
	return maxHeight > 0 && c.Y < maxHeight-1
}

// shift moves c by (dx, dy); callers check the matching has* guard first.
func (c Coordinate) shift(dx, dy int) Coordinate {
	return Coordinate{X: uint(int(c.X) + dx), Y: uint(int(c.Y) + dy)}
}

// OrthogonalNeighbors returns the 4-connected neighbors of c inside a
// maxWidth×maxHeight grid, in the order west, north, east, south.
// Neighbors that would leave [0,maxWidth-1]×[0,maxHeight-1] are omitted,
// so corners yield 2, edges 3 and interior cells 4.
// Complexity: O(1).
func (c Coordinate) OrthogonalNeighbors(maxWidth, maxHeight uint) []Coordinate {
	out := make([]Coordinate, 0, 4)
	if c.hasWest() {
		out = append(out, c.shift(-1, 0))
	}
	if c.hasNorth() {
		out = append(out, c.shift(0, -1))
	}
	if c.hasEast(maxWidth) {
		out = append(out, c.shift(1, 0))
	}
	if c.hasSouth(maxHeight) {
		out = append(out, c.shift(0, 1))
	}
	return out
}

// AllNeighbors returns the 8-connected neighbors of c inside a
// maxWidth×maxHeight grid, sweeping clockwise from the west:
// W, NW, N, NE, E, SE, S, SW.
//
// A diagonal is emitted only when both of its orthogonal parents are
// (NW needs W and N, NE needs N and E, and so on). Corners yield 3 and
// interior cells 8.
// Complexity: O(1).
func (c Coordinate) AllNeighbors(maxWidth, maxHeight uint) []Coordinate {
	w, n := c.hasWest(), c.hasNorth()
	e, s := c.hasEast(maxWidth), c.hasSouth(maxHeight)

	out := make([]Coordinate, 0, 8)
	if w {
		out = append(out, c.shift(-1, 0))
		if n {
			out = append(out, c.shift(-1, -1))
		}
	}
	if n {
		out = append(out, c.shift(0, -1))
		if e {
			out = append(out, c.shift(1, -1))
		}
	}
	if e {
		out = append(out, c.shift(1, 0))
		if s {
			out = append(out, c.shift(1, 1))
		}
	}
	if s {
		out = append(out, c.shift(0, 1))
		if w {
			out = append(out, c.shift(-1, 1))
		}
	}
	return out
}
