package voxel

import "fmt"

// ShapeError reports that the declared dimensions do not account for the
// number of values supplied to Load. No grid is produced.
type ShapeError struct {
	Depth, Height, Width int
	Count                int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("voxel: %d values cannot fill a %dx%dx%d grid (want %d)",
		e.Count, e.Depth, e.Height, e.Width, e.Depth*e.Height*e.Width)
}

// ValueError reports a cell value outside {0, 1} at the given position in
// the flat input sequence. Out-of-range values are rejected rather than
// clamped; no grid is produced.
type ValueError struct {
	Index int
	Value uint8
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("voxel: value %d at index %d is not 0 or 1", e.Value, e.Index)
}
