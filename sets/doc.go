// Package sets holds small collection and string helpers shared by puzzle
// solvers: intersecting a family of slices and trimming wrapper characters.
package sets
