package export

import (
	"github.com/unixpickle/model3d/model3d"

	"github.com/chazu/tessera/pkg/mesher"
	"github.com/chazu/tessera/pkg/voxel"
)

// Model3DMesh converts a quad mesh into a model3d triangle mesh,
// splitting each quad into two triangles with the same winding. The
// result can be saved as STL or post-processed with model3d tooling.
func Model3DMesh(m *mesher.Mesh) *model3d.Mesh {
	out := model3d.NewMesh()
	coord := func(i int) model3d.Coord3D {
		v := m.Vertices[i]
		return model3d.Coord3D{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
	}
	for _, f := range m.Faces {
		a, b, c, d := coord(f[0]), coord(f[1]), coord(f[2]), coord(f[3])
		out.Add(&model3d.Triangle{a, b, c})
		out.Add(&model3d.Triangle{a, c, d})
	}
	return out
}

// GridSolid adapts an occupancy grid to model3d.Solid, with one spatial
// unit per voxel and the grid's minimum corner at the origin. Points
// outside the grid are never contained.
type GridSolid struct {
	Grid *voxel.Grid
}

// Min gets the minimum of the bounding box.
func (s GridSolid) Min() model3d.Coord3D {
	return model3d.Coord3D{}
}

// Max gets the maximum of the bounding box.
func (s GridSolid) Max() model3d.Coord3D {
	d, h, w := s.Grid.Dims()
	return model3d.Coord3D{X: float64(d), Y: float64(h), Z: float64(w)}
}

// Contains reports whether the point falls inside a solid voxel.
func (s GridSolid) Contains(c model3d.Coord3D) bool {
	max := s.Max()
	if c.X < 0 || c.Y < 0 || c.Z < 0 || c.X >= max.X || c.Y >= max.Y || c.Z >= max.Z {
		return false
	}
	return s.Grid.IsSolid(voxel.Coord{D: int(c.X), H: int(c.Y), W: int(c.Z)})
}

// MarchingCubes surfaces the grid with model3d's marching cubes search,
// producing a smooth triangle mesh as an alternative to the blocky quad
// strategies. delta is the sampling cell size in voxel units.
func MarchingCubes(g *voxel.Grid, delta float64) *model3d.Mesh {
	return model3d.MarchingCubesSearch(GridSolid{Grid: g}, delta, 8)
}
