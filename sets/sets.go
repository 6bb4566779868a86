package sets

import (
	"cmp"
	"slices"
)

// Intersect returns the sorted, de-duplicated elements present in every
// group. An empty family yields nil.
// Complexity: O(N log N), N = total number of elements.
func Intersect[T cmp.Ordered](groups [][]T) []T {
	return IntersectFunc(groups, cmp.Compare[T])
}

// IntersectFunc is Intersect for element types ordered by compare,
// such as coord.Coordinate with coord.Compare.
func IntersectFunc[T any](groups [][]T, compare func(a, b T) int) []T {
	if len(groups) == 0 {
		return nil
	}
	remaining := sortedUnique(groups[0], compare)
	for _, g := range groups[1:] {
		if len(remaining) == 0 {
			break
		}
		other := sortedUnique(g, compare)
		kept := remaining[:0]
		for _, v := range remaining {
			if _, found := slices.BinarySearchFunc(other, v, compare); found {
				kept = append(kept, v)
			}
		}
		remaining = kept
	}
	if len(remaining) == 0 {
		return nil
	}
	return remaining
}

func sortedUnique[T any](in []T, compare func(a, b T) int) []T {
	out := slices.Clone(in)
	slices.SortFunc(out, compare)
	return slices.CompactFunc(out, func(a, b T) bool { return compare(a, b) == 0 })
}

// TrimEnds drops the first and last rune of s, as in "[1,2]" → "1,2".
// Strings shorter than two runes become empty.
func TrimEnds(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return ""
	}
	return string(r[1 : len(r)-1])
}
