package gridgraph

import "github.com/katalvlaran/gridkit/coord"

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (value ≥ LandThreshold), according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major scan; cells within
// a component are in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]coord.Coordinate {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]coord.Coordinate

	for y := uint(0); y < gg.Height; y++ {
		for x := uint(0); x < gg.Width; x++ {
			start := coord.Coordinate{X: x, Y: y}
			if !gg.IsLand(start) || seen[gg.index(start)] {
				continue
			}
			// BFS to collect component
			queue := []coord.Coordinate{start}
			seen[gg.index(start)] = true

			for qi := 0; qi < len(queue); qi++ {
				for _, v := range gg.Neighbors(queue[qi]) {
					if !gg.IsLand(v) || seen[gg.index(v)] {
						continue
					}
					seen[gg.index(v)] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
