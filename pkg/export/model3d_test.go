package export

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"

	"github.com/chazu/tessera/pkg/mesher"
	"github.com/chazu/tessera/pkg/voxel"
)

func TestModel3DMeshSplitsQuads(t *testing.T) {
	g := voxel.New(1, 1, 1)
	g.Set(voxel.Coord{}, voxel.Solid)
	quads := mesher.Shell{}.Build(g)

	tri := Model3DMesh(quads)
	n := 0
	tri.Iterate(func(*model3d.Triangle) {
		n++
	})
	if want := quads.FaceCount() * 2; n != want {
		t.Errorf("triangle count = %d, want %d", n, want)
	}
}

func TestGridSolidContains(t *testing.T) {
	g := voxel.New(2, 2, 2)
	g.Set(voxel.Coord{D: 0, H: 0, W: 0}, voxel.Solid)
	s := GridSolid{Grid: g}

	tests := []struct {
		name string
		c    model3d.Coord3D
		want bool
	}{
		{"center of solid cell", model3d.Coord3D{X: 0.5, Y: 0.5, Z: 0.5}, true},
		{"center of empty cell", model3d.Coord3D{X: 1.5, Y: 1.5, Z: 1.5}, false},
		{"outside below", model3d.Coord3D{X: -0.5, Y: 0.5, Z: 0.5}, false},
		{"outside above", model3d.Coord3D{X: 2.5, Y: 0.5, Z: 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.c); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestGridSolidBounds(t *testing.T) {
	g := voxel.New(2, 3, 4)
	s := GridSolid{Grid: g}
	if s.Min() != (model3d.Coord3D{}) {
		t.Errorf("Min() = %v, want origin", s.Min())
	}
	if max := s.Max(); max.X != 2 || max.Y != 3 || max.Z != 4 {
		t.Errorf("Max() = %v, want (2, 3, 4)", max)
	}
}
