package topology

import "github.com/chazu/tessera/pkg/voxel"

// CountBubbles returns the number of fully enclosed empty cavities under
// the given connectivity. An empty region counts as a bubble only when
// none of its cells lies on the grid boundary; boundary-touching empty
// regions are the connected outside space.
func CountBubbles(g *voxel.Grid, conn Connectivity) int {
	_, regions := CountRegions(g, conn, g.IsEmpty)
	depth, height, width := g.Dims()

	bubbles := 0
	for i := range regions {
		if !regions[i].TouchesBoundary(depth, height, width) {
			bubbles++
		}
	}
	return bubbles
}
