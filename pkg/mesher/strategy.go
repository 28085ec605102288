package mesher

import "github.com/chazu/tessera/pkg/voxel"

// Strategy turns an occupancy grid into a quad mesh. Implementations are
// stateless; a grid with no solid cells yields an empty mesh, never an
// error.
type Strategy interface {
	// Name identifies the strategy for host-side selection.
	Name() string

	// Build constructs the mesh. It never mutates the grid.
	Build(g *voxel.Grid) *Mesh
}

// Compile-time interface checks.
var _ Strategy = Shell{}
var _ Strategy = Cubes{}
