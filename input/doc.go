// Package input loads puzzle input files.
//
// Three shapes are supported:
//
//   - Lines: one string per line, newline stripped.
//   - LinesOfChars: one []rune per line, for character grids.
//   - Blocks: groups of lines separated by blank lines.
//
// Every file helper has a reader-based twin (Lines, Blocks, ...) so callers
// can feed strings.NewReader in tests. ParseCoordinates turns "x,y" lines
// into coord.Coordinate values.
//
// Errors from os.Open and bufio.Scanner are wrapped with the path.
package input
