// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/coord"
	"github.com/katalvlaran/gridkit/gridgraph"
)

func formatCells(cs []coord.Coordinate) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return strings.Join(parts, " ")
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water, 1,2,3 = different land/resource IDs
//   - Conn4: 4-directional adjacency (W/N/E/S)
//   - Expect three islands, numbered in row-major order of their first cell.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.FromLines([]string{
		"01102",
		"11022",
		"00220",
		"30000",
	}, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %s\n", i, formatCells(comp))
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1) (0,1)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
	// component 2: (0,3)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland demonstrates computing the minimal
// water‐cell conversions to connect two islands in the grid.
// Each water cell converted costs 1.
func ExampleGridGraph_ExpandIsland() {
	gg, _ := gridgraph.FromLines([]string{
		"01102",
		"11022",
		"00220",
		"30000",
	}, gridgraph.DefaultGridOptions())

	path, cost, _ := gg.ExpandIsland(0, 1)

	fmt.Printf("Convert %d water cells along path:\n", cost)
	fmt.Println(formatCells(path))
	// Output:
	// Convert 1 water cells along path:
	// (1,1) (2,1) (2,2)
}
