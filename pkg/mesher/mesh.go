// Package mesher builds polygonal surface meshes from an occupancy grid.
// Two strategies exist: Shell produces a deduplicated manifold-oriented
// shell, Cubes produces independent per-voxel cubes as a cheaper
// alternative.
package mesher

// Vertex is a cube corner on the integer lattice, ordered (d, h, w).
// One grid cell spans the unit cube between a coordinate and the
// coordinate plus one along each axis.
type Vertex [3]int

// Face is a quad of vertex indices wound counter-clockwise when viewed
// from outside the solid, so its implied normal points outward.
type Face [4]int

// Mesh is an ordered vertex list plus an ordered quad list. It is built
// once per request and handed to the caller; serialization to a concrete
// format is the caller's concern.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of quad faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
