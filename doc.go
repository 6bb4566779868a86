// Package gridkit is a small toolbox for grid and line-oriented puzzle
// programs: read the input, turn it into lattice points, walk the grid.
//
// 🚀 What is in gridkit?
//
//	• coord: the integer lattice point, with "x,y" parsing, X-then-Y
//	  ordering, bounds checks, axis-aligned segment walks and 4/8-neighbor
//	  enumeration
//	• input: line, rune-grid and blank-line block readers
//	• sets: ordered intersection of slice families, string trimming
//	• gridgraph: connected components and 0-1 BFS bridging over digit grids
//	• harness: run a two-part solver from main, or check it from a test
//
// Under the hood, the packages are organized as:
//
//	coord/     — Coordinate and its neighborhoods (no dependencies)
//	input/     — file and io.Reader loaders
//	sets/      — Intersect, IntersectFunc, TrimEnds
//	gridgraph/ — GridGraph on top of coord
//	harness/   — Run, Main, Check
//	examples/  — complete solvers wired through harness
//
// Quick ASCII example (AllNeighbors of X in a 3×3 grid, emission order):
//
//	2 3 4
//	1 X 5
//	8 7 6
//
//	go get github.com/katalvlaran/gridkit
package gridkit
