package harness

import (
	"fmt"
	"io"
	"os"

	"github.com/stretchr/testify/require"
)

// Solver computes both answers for the puzzle input at path.
type Solver[A, B any] func(path string) (A, B, error)

// Run solves path and writes both answers to w, one per line.
func Run[A, B any](w io.Writer, path string, solve Solver[A, B]) error {
	part1, part2, err := solve(path)
	if err != nil {
		return fmt.Errorf("harness: solve %s: %w", path, err)
	}
	if _, err := fmt.Fprintf(w, "Part 1 output: %v\nPart 2 output: %v\n", part1, part2); err != nil {
		return fmt.Errorf("harness: write answers: %w", err)
	}
	return nil
}

// Main is Run on stdout; any error is printed to stderr and exits with status 1.
func Main[A, B any](path string, solve Solver[A, B]) {
	if err := Run(os.Stdout, path, solve); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Check solves path and requires both answers to match.
func Check[A, B any](t require.TestingT, path string, solve Solver[A, B], want1 A, want2 B) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	part1, part2, err := solve(path)
	require.NoError(t, err, "solve %s", path)
	require.Equal(t, want1, part1, "part 1")
	require.Equal(t, want2, part2, "part 2")
}
