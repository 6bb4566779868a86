package coord_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/coord"
)

//----------------------------------------------------------------------------//
// Parse / String
//----------------------------------------------------------------------------//

// TestParse_Valid covers ordinary and boundary values.
func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want coord.Coordinate
	}{
		{"0,0", coord.Coordinate{}},
		{"3,4", coord.Coordinate{X: 3, Y: 4}},
		{"498,13", coord.Coordinate{X: 498, Y: 13}},
		{"007,10", coord.Coordinate{X: 7, Y: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := coord.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParse_Malformed verifies every rejected shape wraps ErrMalformed.
func TestParse_Malformed(t *testing.T) {
	cases := []string{
		"",
		"3",
		"3,",
		",4",
		"1,2,3",
		" 1,2",
		"1, 2",
		"1,2\n",
		"-1,2",
		"1,+2",
		"a,b",
		"1.5,2",
		"99999999999999999999999,1",
	}
	for _, in := range cases {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, err := coord.Parse(in)
			require.ErrorIs(t, err, coord.ErrMalformed)
		})
	}
}

// TestMustParse_Panics checks the fail-fast variant.
func TestMustParse_Panics(t *testing.T) {
	assert.Equal(t, coord.Coordinate{X: 5, Y: 9}, coord.MustParse("5,9"))
	assert.Panics(t, func() { coord.MustParse("5;9") })
}

// TestParse_RoundTrip checks Parse(String(c)) == c over a spread of values.
func TestParse_RoundTrip(t *testing.T) {
	values := []uint{0, 1, 2, 9, 10, 255, 1 << 20, ^uint(0)}
	for _, x := range values {
		for _, y := range values {
			c := coord.Coordinate{X: x, Y: y}
			got, err := coord.Parse(c.String())
			require.NoError(t, err, "parse %s", c)
			require.Equal(t, c, got)
		}
	}
}

//----------------------------------------------------------------------------//
// Ordering and identity
//----------------------------------------------------------------------------//

// TestCompare_Totality verifies exactly one of a<b, a==b, b<a holds, X first.
func TestCompare_Totality(t *testing.T) {
	pts := []coord.Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {0, 2}}
	for _, a := range pts {
		for _, b := range pts {
			lt, eq, gt := a.Less(b), a == b, b.Less(a)
			n := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					n++
				}
			}
			require.Equal(t, 1, n, "a=%v b=%v", a, b)
			require.Equal(t, eq, coord.Compare(a, b) == 0)
			if a.X != b.X {
				require.Equal(t, a.X < b.X, lt, "x must dominate for a=%v b=%v", a, b)
			}
		}
	}
}

// TestSort orders by X, then Y.
func TestSort(t *testing.T) {
	pts := []coord.Coordinate{{2, 0}, {0, 2}, {1, 1}, {0, 0}, {1, 0}}
	coord.Sort(pts)
	assert.Equal(t, []coord.Coordinate{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {2, 0}}, pts)
}

// TestMapKey verifies structural hashing: equal values collapse in a set.
func TestMapKey(t *testing.T) {
	set := map[coord.Coordinate]struct{}{}
	set[coord.MustParse("4,7")] = struct{}{}
	set[coord.Coordinate{X: 4, Y: 7}] = struct{}{}
	set[coord.Coordinate{X: 7, Y: 4}] = struct{}{}
	assert.Len(t, set, 2)
}

//----------------------------------------------------------------------------//
// Bounds and distance
//----------------------------------------------------------------------------//

// TestIsWithinBounds checks inclusive corners and one-off points.
func TestIsWithinBounds(t *testing.T) {
	const minX, maxX, minY, maxY = 2, 6, 3, 8
	inside := []coord.Coordinate{{minX, minY}, {minX, maxY}, {maxX, minY}, {maxX, maxY}, {4, 5}}
	for _, c := range inside {
		assert.True(t, c.IsWithinBounds(minX, maxX, minY, maxY), "%v should be inside", c)
	}
	outside := []coord.Coordinate{{minX - 1, minY}, {maxX + 1, minY}, {minX, minY - 1}, {maxX, maxY + 1}}
	for _, c := range outside {
		assert.False(t, c.IsWithinBounds(minX, maxX, minY, maxY), "%v should be outside", c)
	}
}

// TestManhattanDistance is symmetric and never wraps.
func TestManhattanDistance(t *testing.T) {
	a, b := coord.Coordinate{X: 1, Y: 9}, coord.Coordinate{X: 4, Y: 2}
	assert.Equal(t, uint(10), a.ManhattanDistance(b))
	assert.Equal(t, uint(10), b.ManhattanDistance(a))
	assert.Equal(t, uint(0), a.ManhattanDistance(a))
	assert.Equal(t, uint(3), coord.AbsDiff(2, 5))
	assert.Equal(t, uint(3), coord.AbsDiff(5, 2))
}
