package topology

import (
	"fmt"

	"github.com/chazu/tessera/pkg/voxel"
)

// Connectivity selects which neighboring cells count as adjacent.
type Connectivity int

const (
	Face6      Connectivity = 6  // face neighbors
	FaceEdge18 Connectivity = 18 // face + edge neighbors
	Full26     Connectivity = 26 // face + edge + corner neighbors
)

// Valid reports whether c is one of the three supported connectivities.
func (c Connectivity) Valid() bool {
	return c == Face6 || c == FaceEdge18 || c == Full26
}

func (c Connectivity) String() string {
	if c.Valid() {
		return fmt.Sprintf("%d-connectivity", int(c))
	}
	return fmt.Sprintf("Connectivity(%d)", int(c))
}

// Offsets returns the fixed neighbor offset set for this connectivity.
// The returned slice is shared constant data; callers must not modify it.
// Offsets panics on an invalid connectivity.
func (c Connectivity) Offsets() []voxel.Coord {
	switch c {
	case Face6:
		return offsets6
	case FaceEdge18:
		return offsets18
	case Full26:
		return offsets26
	default:
		panic(fmt.Sprintf("topology: invalid connectivity %d", int(c)))
	}
}

var (
	offsets6 = []voxel.Coord{
		{D: 1}, {D: -1}, {H: 1}, {H: -1}, {W: 1}, {W: -1},
	}
	offsets18 = buildOffsets(2)
	offsets26 = buildOffsets(3)
)

// buildOffsets enumerates the non-zero offsets in {-1,0,1}^3 whose
// Manhattan length does not exceed maxSteps. 2 yields the 18-neighbor
// set (faces and edges), 3 the full 26-neighbor set.
func buildOffsets(maxSteps int) []voxel.Coord {
	var offs []voxel.Coord
	for d := -1; d <= 1; d++ {
		for h := -1; h <= 1; h++ {
			for w := -1; w <= 1; w++ {
				if d == 0 && h == 0 && w == 0 {
					continue
				}
				if abs(d)+abs(h)+abs(w) > maxSteps {
					continue
				}
				offs = append(offs, voxel.Coord{D: d, H: h, W: w})
			}
		}
	}
	return offs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
