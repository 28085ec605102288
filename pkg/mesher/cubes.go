package mesher

import "github.com/chazu/tessera/pkg/voxel"

// cubeCorners lists the 8 corners of a unit cube in the fixed order the
// per-cube face quads below index into: the four bottom corners counter-
// clockwise, then the four top corners.
var cubeCorners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// cubeQuads indexes cubeCorners: base, top, front, right, back, left.
var cubeQuads = [6][4]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// Cubes is the naive mesh strategy: every exposed voxel contributes an
// independent 8-vertex cube with all 6 faces. No vertices are shared
// between cubes and no internal faces are removed, so the output
// overlaps and is non-manifold. It trades geometric quality for a
// single cheap pass.
//
// Exposure is tested as a neighbor sum over a zero-padded copy of the
// grid: a voxel is exposed when it is solid with fewer than 6 solid
// face neighbors. This classifies the same voxels as IsSurface.
type Cubes struct{}

// Name implements Strategy.
func (Cubes) Name() string { return "cubes" }

// Build implements Strategy.
func (Cubes) Build(g *voxel.Grid) *Mesh {
	depth, height, width := g.Dims()

	// Zero-padded copy: one empty layer on every side makes the
	// neighbor sum uniform for boundary voxels.
	ph, pw := height+2, width+2
	padded := make([]uint8, (depth+2)*ph*pw)
	at := func(d, h, w int) uint8 {
		return padded[(d*ph+h)*pw+w]
	}
	for d := 0; d < depth; d++ {
		for h := 0; h < height; h++ {
			for w := 0; w < width; w++ {
				padded[((d+1)*ph+h+1)*pw+w+1] = g.At(voxel.Coord{D: d, H: h, W: w})
			}
		}
	}

	mesh := &Mesh{}
	for d := 0; d < depth; d++ {
		for h := 0; h < height; h++ {
			for w := 0; w < width; w++ {
				if g.At(voxel.Coord{D: d, H: h, W: w}) != voxel.Solid {
					continue
				}
				sum := at(d, h+1, w+1) + at(d+2, h+1, w+1) +
					at(d+1, h, w+1) + at(d+1, h+2, w+1) +
					at(d+1, h+1, w) + at(d+1, h+1, w+2)
				if sum >= 6 {
					continue
				}

				base := len(mesh.Vertices)
				for _, corner := range cubeCorners {
					mesh.Vertices = append(mesh.Vertices,
						Vertex{d + corner[0], h + corner[1], w + corner[2]})
				}
				for _, q := range cubeQuads {
					mesh.Faces = append(mesh.Faces,
						Face{base + q[0], base + q[1], base + q[2], base + q[3]})
				}
			}
		}
	}
	return mesh
}
