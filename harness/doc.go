// Package harness wires a two-part puzzle solver to its input files.
//
// A solver reads one input path and returns both answers. Run prints them
// from a main function; Check asserts them from a test against the small
// worked example shipped next to the puzzle:
//
//	func solve(path string) (int, int, error) { ... }
//
//	func main()                  { harness.Main("input", solve) }
//	func TestSolve(t *testing.T) { harness.Check(t, "testinput", solve, 24, 93) }
package harness
