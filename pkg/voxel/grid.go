package voxel

// Solid and empty cell values. Every cell of a validated grid holds one
// of these two values.
const (
	Empty uint8 = 0
	Solid uint8 = 1
)

// Coord addresses one cell of a grid as (depth, height, width). It is
// also used for neighbor offsets, where components may be negative.
type Coord struct {
	D, H, W int
}

// Add returns the coordinate shifted by the given offset.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.D + o.D, c.H + o.H, c.W + o.W}
}

// Grid is a 3D binary occupancy grid backed by a flat cell array in
// row-major (depth, height, width) order. Build it with Load or with
// New+Set, then treat it as read-only for the duration of an analysis.
type Grid struct {
	depth, height, width int
	cells                []uint8
}

// New creates an all-empty grid with the given dimensions.
// It panics if any dimension is not positive.
func New(depth, height, width int) *Grid {
	if depth <= 0 || height <= 0 || width <= 0 {
		panic("voxel: grid dimensions must be positive")
	}
	return &Grid{
		depth:  depth,
		height: height,
		width:  width,
		cells:  make([]uint8, depth*height*width),
	}
}

// Dims returns the grid dimensions as (depth, height, width).
func (g *Grid) Dims() (depth, height, width int) {
	return g.depth, g.height, g.width
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index returns the flat cell index for an in-bounds coordinate.
func (g *Grid) Index(c Coord) int {
	return (c.D*g.height+c.H)*g.width + c.W
}

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.D >= 0 && c.D < g.depth &&
		c.H >= 0 && c.H < g.height &&
		c.W >= 0 && c.W < g.width
}

// At returns the cell value at an in-bounds coordinate.
func (g *Grid) At(c Coord) uint8 {
	return g.cells[g.Index(c)]
}

// Set assigns a cell value. Used while constructing a grid; callers must
// not mutate a grid that an analysis is running over.
func (g *Grid) Set(c Coord, v uint8) {
	g.cells[g.Index(c)] = v
}

// IsSolid reports whether the coordinate is in bounds and occupied.
// Out-of-bounds coordinates read as empty: the grid boundary behaves as
// open space.
func (g *Grid) IsSolid(c Coord) bool {
	return g.InBounds(c) && g.At(c) == Solid
}

// IsEmpty reports whether the coordinate is in bounds and unoccupied.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.At(c) == Empty
}

// SolidCount returns the number of occupied cells.
func (g *Grid) SolidCount() int {
	n := 0
	for _, v := range g.cells {
		if v == Solid {
			n++
		}
	}
	return n
}
