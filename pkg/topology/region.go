package topology

import "github.com/chazu/tessera/pkg/voxel"

// Region is a maximal connected set of coordinates sharing a membership
// property under one adjacency kernel, collected by a single
// breadth-first pass.
type Region struct {
	Coords []voxel.Coord
}

// Size returns the number of cells in the region.
func (r *Region) Size() int {
	return len(r.Coords)
}

// TouchesBoundary reports whether any cell of the region lies on the
// outer face of a grid with the given dimensions.
func (r *Region) TouchesBoundary(depth, height, width int) bool {
	for _, c := range r.Coords {
		if c.D == 0 || c.D == depth-1 ||
			c.H == 0 || c.H == height-1 ||
			c.W == 0 || c.W == width-1 {
			return true
		}
	}
	return false
}

// CountRegions partitions every cell satisfying member into maximal
// connected regions under the given connectivity and returns them along
// with their count. Cells are scanned in row-major (depth, height, width)
// order, so region emission order is deterministic; the count itself does
// not depend on traversal order.
//
// The visited set is owned by this invocation alone, so concurrent
// counts over the same read-only grid are safe.
func CountRegions(g *voxel.Grid, conn Connectivity, member func(voxel.Coord) bool) (int, []Region) {
	offsets := conn.Offsets()
	visited := make([]bool, g.Len())
	depth, height, width := g.Dims()

	var regions []Region
	for d := 0; d < depth; d++ {
		for h := 0; h < height; h++ {
			for w := 0; w < width; w++ {
				seed := voxel.Coord{D: d, H: h, W: w}
				if visited[g.Index(seed)] || !member(seed) {
					continue
				}
				regions = append(regions, grow(g, seed, offsets, member, visited))
			}
		}
	}
	return len(regions), regions
}

// grow performs the breadth-first traversal for one region.
func grow(g *voxel.Grid, seed voxel.Coord, offsets []voxel.Coord, member func(voxel.Coord) bool, visited []bool) Region {
	visited[g.Index(seed)] = true
	queue := []voxel.Coord{seed}
	region := Region{Coords: []voxel.Coord{seed}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, off := range offsets {
			n := cur.Add(off)
			if !g.InBounds(n) {
				continue
			}
			idx := g.Index(n)
			if visited[idx] || !member(n) {
				continue
			}
			visited[idx] = true
			queue = append(queue, n)
			region.Coords = append(region.Coords, n)
		}
	}
	return region
}

// CountComponents returns the number of connected solid components under
// the given connectivity.
func CountComponents(g *voxel.Grid, conn Connectivity) int {
	n, _ := CountRegions(g, conn, g.IsSolid)
	return n
}
