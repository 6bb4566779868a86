package coord

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Coordinate is a point on the integer lattice.
// The zero value is the origin.
type Coordinate struct {
	X, Y uint
}

// Parse reads a coordinate in the "x,y" form.
// Exactly one comma is allowed and neither token may carry whitespace or a sign.
func Parse(s string) (Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(ys, ",") {
		return Coordinate{}, fmt.Errorf("%w: %q needs exactly two tokens", ErrMalformed, s)
	}
	x, err := strconv.ParseUint(xs, 10, strconv.IntSize)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: x in %q: %v", ErrMalformed, s, err)
	}
	y, err := strconv.ParseUint(ys, 10, strconv.IntSize)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: y in %q: %v", ErrMalformed, s, err)
	}

	return Coordinate{X: uint(x), Y: uint(y)}, nil
}

// MustParse is like Parse but panics if s is malformed.
func MustParse(s string) Coordinate {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats c as "x,y", the form accepted by Parse.
func (c Coordinate) String() string {
	return strconv.FormatUint(uint64(c.X), 10) + "," + strconv.FormatUint(uint64(c.Y), 10)
}

// Compare returns -1, 0 or +1 ordering by X, then by Y.
func Compare(a, b Coordinate) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// Less reports whether c sorts before o.
func (c Coordinate) Less(o Coordinate) bool {
	return Compare(c, o) < 0
}

// Sort orders cs in place by Compare.
func Sort(cs []Coordinate) {
	slices.SortFunc(cs, Compare)
}

// IsWithinBounds reports whether minX ≤ X ≤ maxX and minY ≤ Y ≤ maxY.
// Complexity: O(1).
func (c Coordinate) IsWithinBounds(minX, maxX, minY, maxY uint) bool {
	return c.X >= minX && c.X <= maxX && c.Y >= minY && c.Y <= maxY
}

// AbsDiff returns |a-b| without wrapping.
func AbsDiff(a, b uint) uint {
	if a > b {
		return a - b
	}
	return b - a
}

// ManhattanDistance returns the taxicab distance between c and o.
func (c Coordinate) ManhattanDistance(o Coordinate) uint {
	return AbsDiff(c.X, o.X) + AbsDiff(c.Y, o.Y)
}
