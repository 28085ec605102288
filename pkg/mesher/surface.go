package mesher

import (
	"github.com/chazu/tessera/pkg/topology"
	"github.com/chazu/tessera/pkg/voxel"
)

// IsSurface reports whether the cell is solid and exposed: at least one
// of its 6 face neighbors is empty or outside the grid. Out-of-bounds
// neighbors count as empty, which is what makes voxels on the grid
// boundary detectable as surface.
func IsSurface(g *voxel.Grid, c voxel.Coord) bool {
	if !g.IsSolid(c) {
		return false
	}
	for _, off := range topology.Face6.Offsets() {
		if !g.IsSolid(c.Add(off)) {
			return true
		}
	}
	return false
}
