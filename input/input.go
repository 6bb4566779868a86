package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gridkit/coord"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 16 << 20

// Lines reads r to EOF and returns its lines without "\n" or "\r\n".
func Lines(r io.Reader) ([]string, error) {
	sc := newScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, scanErr(err)
	}
	return lines, nil
}

// LinesOfChars is Lines with each line split into runes.
func LinesOfChars(r io.Reader) ([][]rune, error) {
	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	return grid, nil
}

// Blocks groups the lines of r into blank-line separated blocks.
// Each blank line closes the current block, so two blank lines in a row
// produce an empty block. A final block without a trailing blank line is
// kept; a trailing blank line does not add an empty one.
func Blocks(r io.Reader) ([][]string, error) {
	sc := newScanner(r)
	var (
		blocks [][]string
		cur    []string
	)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			blocks = append(blocks, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, scanErr(err)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks, nil
}

// SplitBlockOnWhitespace flattens a block into its whitespace-separated fields,
// in reading order.
func SplitBlockOnWhitespace(block []string) []string {
	var fields []string
	for _, line := range block {
		fields = append(fields, strings.Fields(line)...)
	}
	return fields
}

// ParseCoordinates parses one "x,y" coordinate per line.
// The first malformed line aborts with its 1-based line number.
func ParseCoordinates(lines []string) ([]coord.Coordinate, error) {
	out := make([]coord.Coordinate, 0, len(lines))
	for i, line := range lines {
		c, err := coord.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("input: line %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// ReadLines opens path and returns its lines.
func ReadLines(path string) ([]string, error) {
	var out []string
	err := withFile(path, func(r io.Reader) (err error) {
		out, err = Lines(r)
		return err
	})
	return out, err
}

// ReadLinesOfChars opens path and returns its lines as rune slices.
func ReadLinesOfChars(path string) ([][]rune, error) {
	var out [][]rune
	err := withFile(path, func(r io.Reader) (err error) {
		out, err = LinesOfChars(r)
		return err
	})
	return out, err
}

// ReadBlocks opens path and returns its blank-line separated blocks.
func ReadBlocks(path string) ([][]string, error) {
	var out [][]string
	err := withFile(path, func(r io.Reader) (err error) {
		out, err = Blocks(r)
		return err
	})
	return out, err
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("input: read %s: %w", path, err)
	}
	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return sc
}

func scanErr(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: %v", ErrLineTooLong, err)
	}
	return err
}
