package voxel

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Load validates a flat value sequence against the declared dimensions
// and reshapes it into a Grid.
//
// As part of the external contract, Load reorients the reshaped data by
// rotating it 90 degrees in the (height, width) plane, so the returned
// grid has dimensions (depth, width, height) in terms of the declared
// ones: grid cell (d, h, w) holds values[(d*height+w)*width + (width-1-h)].
// Downstream consumers rely on this orientation.
//
// Load fails with a *ShapeError when len(values) != depth*height*width
// and with a *ValueError when any value is outside {0, 1}.
func Load(values []uint8, depth, height, width int) (*Grid, error) {
	if depth <= 0 || height <= 0 || width <= 0 ||
		len(values) != depth*height*width {
		return nil, &ShapeError{Depth: depth, Height: height, Width: width, Count: len(values)}
	}
	for i, v := range values {
		if v != Empty && v != Solid {
			return nil, &ValueError{Index: i, Value: v}
		}
	}

	// Rotated dimensions: height and width trade places.
	g := New(depth, width, height)
	for d := 0; d < depth; d++ {
		for h := 0; h < width; h++ {
			for w := 0; w < height; w++ {
				g.Set(Coord{d, h, w}, values[(d*height+w)*width+(width-1-h)])
			}
		}
	}
	return g, nil
}

// ReadCSV reads a flat list of integer cell values separated by commas,
// whitespace, or newlines. Values must fit in a byte; range validation
// against {0, 1} happens in Load.
func ReadCSV(r io.Reader) ([]uint8, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read voxel values")
	}
	fields := strings.FieldsFunc(string(raw), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]uint8, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "parse voxel value %q", f)
		}
		values = append(values, uint8(n))
	}
	return values, nil
}

// ReadRaw reads a flat binary value sequence, one byte per cell.
func ReadRaw(r io.Reader) ([]uint8, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read voxel values")
	}
	return raw, nil
}
