package voxel

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadShapeMismatch(t *testing.T) {
	tests := []struct {
		name                 string
		count                int
		depth, height, width int
	}{
		{"too few values", 7, 2, 2, 2},
		{"too many values", 9, 2, 2, 2},
		{"zero dimension", 0, 0, 2, 2},
		{"negative dimension", 8, -2, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Load(make([]uint8, tt.count), tt.depth, tt.height, tt.width)
			if g != nil {
				t.Error("Load returned a grid alongside an error")
			}
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("Load error = %v, want *ShapeError", err)
			}
		})
	}
}

func TestLoadRejectsInvalidValue(t *testing.T) {
	values := []uint8{0, 1, 2, 1, 0, 1, 0, 0}
	g, err := Load(values, 2, 2, 2)
	if g != nil {
		t.Error("Load returned a grid alongside an error")
	}
	var valueErr *ValueError
	if !errors.As(err, &valueErr) {
		t.Fatalf("Load error = %v, want *ValueError", err)
	}
	if valueErr.Index != 2 || valueErr.Value != 2 {
		t.Errorf("ValueError = {Index: %d, Value: %d}, want {Index: 2, Value: 2}",
			valueErr.Index, valueErr.Value)
	}
}

func TestLoadRotatesHeightWidthPlane(t *testing.T) {
	// Declared shape (1, 2, 3). After the documented 90-degree rotation
	// the grid has shape (1, 3, 2) and cell (d, h, w) reads
	// values[(d*height+w)*width + (width-1-h)].
	values := []uint8{
		1, 0, 1,
		0, 1, 1,
	}
	g, err := Load(values, 1, 2, 3)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	d, h, w := g.Dims()
	if d != 1 || h != 3 || w != 2 {
		t.Fatalf("Dims() = (%d, %d, %d), want (1, 3, 2)", d, h, w)
	}

	const height, width = 2, 3
	for d := 0; d < 1; d++ {
		for h := 0; h < width; h++ {
			for w := 0; w < height; w++ {
				want := values[(d*height+w)*width+(width-1-h)]
				if got := g.At(Coord{d, h, w}); got != want {
					t.Errorf("At(%d, %d, %d) = %d, want %d", d, h, w, got, want)
				}
			}
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	// Reading the rotated grid back through the inverse index mapping
	// must reproduce the original flat order.
	const depth, height, width = 2, 3, 4
	values := make([]uint8, depth*height*width)
	for i := range values {
		values[i] = uint8(i % 2)
	}
	g, err := Load(values, depth, height, width)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for d := 0; d < depth; d++ {
		for a := 0; a < height; a++ {
			for b := 0; b < width; b++ {
				want := values[(d*height+a)*width+b]
				if got := g.At(Coord{d, width - 1 - b, a}); got != want {
					t.Errorf("read-back at flat index %d = %d, want %d",
						(d*height+a)*width+b, got, want)
				}
			}
		}
	}
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint8
	}{
		{"single line", "1,0,1,1", []uint8{1, 0, 1, 1}},
		{"multi line", "1,0\n0,1\n", []uint8{1, 0, 0, 1}},
		{"spaces and trailing comma", " 1, 0 ,1,\n", []uint8{1, 0, 1}},
		{"whitespace separated", "1 0 1", []uint8{1, 0, 1}},
		{"empty input", "", []uint8{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadCSV failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadCSV = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("value %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadCSVRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric", "1,x,0"},
		{"too large for a byte", "1,300,0"},
		{"negative", "1,-1,0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ReadCSV(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestReadRaw(t *testing.T) {
	got, err := ReadRaw(strings.NewReader("\x01\x00\x01"))
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	want := []uint8{1, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("ReadRaw = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}
