package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridkit/coord"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:         uint(w),
		Height:        uint(h),
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
	}, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// FromLines builds a GridGraph from lines of decimal digits, one cell per rune.
// Returns ErrBadCell (wrapped with the position) for any other rune.
func FromLines(lines []string, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(lines))
	for y, line := range lines {
		runes := []rune(line)
		row := make([]int, len(runes))
		for x, r := range runes {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, r, x, y)
			}
			row[x] = int(r - '0')
		}
		values[y] = row
	}
	return NewGridGraph(values, opts)
}

// InBounds reports whether c lies within the grid boundaries.
// A zero-sized grid contains no cells.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c coord.Coordinate) bool {
	if gg.Width == 0 || gg.Height == 0 {
		return false
	}
	return c.IsWithinBounds(0, gg.Width-1, 0, gg.Height-1)
}

// Value returns the cell value at c. c must be in bounds.
func (gg *GridGraph) Value(c coord.Coordinate) int {
	return gg.CellValues[c.Y][c.X]
}

// IsLand reports whether the cell at c meets LandThreshold.
func (gg *GridGraph) IsLand(c coord.Coordinate) bool {
	return gg.Value(c) >= gg.LandThreshold
}

// Neighbors returns the in-grid neighbors of c under gg.Conn, in coord's
// emission order.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c coord.Coordinate) []coord.Coordinate {
	if gg.Conn == Conn8 {
		return c.AllNeighbors(gg.Width, gg.Height)
	}
	return c.OrthogonalNeighbors(gg.Width, gg.Height)
}

// index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(c coord.Coordinate) int {
	return int(c.Y*gg.Width + c.X)
}

// Coordinate converts a row‑major index back to a coordinate.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) coord.Coordinate {
	i := uint(idx)
	return coord.Coordinate{X: i % gg.Width, Y: i / gg.Width}
}
