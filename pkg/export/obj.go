// Package export serializes quad meshes for external consumers: a
// Wavefront OBJ writer and adapters into the model3d mesh types for STL
// output and marching-cubes surfacing. The core mesh builders do no I/O;
// everything here writes to caller-supplied destinations.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/chazu/tessera/pkg/mesher"
)

// WriteOBJ writes the mesh as Wavefront OBJ: one "v" line per vertex in
// mesh order, then one quad "f" line per face with 1-based indices.
// Output is deterministic for a given mesh.
func WriteOBJ(w io.Writer, m *mesher.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %d %d %d\n", v[0], v[1], v[2])
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d %d\n", f[0]+1, f[1]+1, f[2]+1, f[3]+1)
	}
	return errors.Wrap(bw.Flush(), "write obj")
}
