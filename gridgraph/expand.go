package gridgraph

import (
	"container/list"
	"slices"

	"github.com/katalvlaran/gridkit/coord"
)

// ExpandIsland finds a minimum‐conversion path of “water” cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// numbered by ConnectedComponents(). Each water‐cell conversion costs 1.
// Returns the path (including the start and end land cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi‐source 0–1‐BFS from all srcComp cells:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell             → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d).
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []coord.Coordinate, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[coord.Coordinate]struct{}, len(comps[dstComp]))
	for _, c := range comps[dstComp] {
		dstSet[c] = struct{}{}
	}

	n := int(gg.Width * gg.Height)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, c := range comps[srcComp] {
		dist[gg.index(c)] = 0
		dq.PushFront(c)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		uc := e.Value.(coord.Coordinate)
		u := gg.index(uc)
		if _, ok := dstSet[uc]; ok {
			target = u
			break
		}
		for _, vc := range gg.Neighbors(uc) {
			v := gg.index(vc)
			step := 0
			if !gg.IsLand(vc) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(vc)
				} else {
					dq.PushBack(vc)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	slices.Reverse(path)
	return path, dist[target], nil
}
