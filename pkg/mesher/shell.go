package mesher

import (
	"sort"

	"github.com/chazu/tessera/pkg/voxel"
)

// cubeFaces lists, for each of the 6 cube face directions, the corner
// offsets of that face's quad. Corners are wound counter-clockwise as
// seen from outside the cube along the face normal.
var cubeFaces = [6][4][3]int{
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // +depth
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // -depth
	{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, // +height
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // -height
	{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // +width
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // -width
}

// faceKey canonically identifies a face independent of winding: its four
// corners in sorted order. Two adjacent cells emitting the same face
// produce the same key with opposite windings.
type faceKey [4]Vertex

func canonicalKey(corners [4]Vertex) faceKey {
	k := faceKey(corners)
	sort.Slice(k[:], func(i, j int) bool {
		a, b := k[i], k[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return k
}

// Shell is the optimized mesh strategy: it emits the 6 cube faces of
// every surface voxel, drops every face emitted twice (those are shared
// between two adjacent surface voxels and therefore internal), and
// deduplicates vertices across the retained faces. The result is a
// single manifold-oriented shell.
type Shell struct{}

// Name implements Strategy.
func (Shell) Name() string { return "shell" }

// Build implements Strategy.
func (Shell) Build(g *voxel.Grid) *Mesh {
	type quad struct {
		key     faceKey
		corners [4]Vertex
	}

	// Pass 1: emit oriented faces for every surface voxel, in scan
	// order, counting occurrences of each canonical face identity.
	var emitted []quad
	counts := make(map[faceKey]int)
	depth, height, width := g.Dims()
	for d := 0; d < depth; d++ {
		for h := 0; h < height; h++ {
			for w := 0; w < width; w++ {
				c := voxel.Coord{D: d, H: h, W: w}
				if !IsSurface(g, c) {
					continue
				}
				for _, face := range cubeFaces {
					var corners [4]Vertex
					for i, off := range face {
						corners[i] = Vertex{d + off[0], h + off[1], w + off[2]}
					}
					q := quad{key: canonicalKey(corners), corners: corners}
					counts[q.key]++
					emitted = append(emitted, q)
				}
			}
		}
	}

	// Pass 2: keep external faces (seen exactly once) and re-express
	// them against a deduplicated vertex list. Vertex indices are
	// assigned in first-seen order over the retained faces, keeping
	// output deterministic.
	mesh := &Mesh{}
	vertexIndex := make(map[Vertex]int)
	for _, q := range emitted {
		if counts[q.key] != 1 {
			continue
		}
		var f Face
		for i, v := range q.corners {
			idx, ok := vertexIndex[v]
			if !ok {
				idx = len(mesh.Vertices)
				vertexIndex[v] = idx
				mesh.Vertices = append(mesh.Vertices, v)
			}
			f[i] = idx
		}
		mesh.Faces = append(mesh.Faces, f)
	}
	return mesh
}
