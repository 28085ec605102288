// Command tessera analyzes a binary voxel occupancy grid and reports its
// topology (connected solid components and enclosed bubbles) and/or
// exports a surface mesh.
//
// The input file holds a flat list of 0/1 cell values, either as
// comma/whitespace-separated text or, with -raw, as one byte per cell.
// Dimensions are declared with -depth/-height/-width, or -size as a
// shorthand for a cubic grid.
//
//	tessera -size 64 -o shape.obj model.csv
//	tessera -size 64 -components -bubbles model.csv
//	tessera -raw -depth 32 -height 64 -width 64 -mesh smooth -o shape.stl model.bin
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/unixpickle/essentials"

	"github.com/chazu/tessera/pkg/export"
	"github.com/chazu/tessera/pkg/mesher"
	"github.com/chazu/tessera/pkg/topology"
	"github.com/chazu/tessera/pkg/voxel"
)

func main() {
	var (
		raw                  bool
		size                 int
		depth, height, width int
		connectivity         int
		components           bool
		bubbles              bool
		meshMode             string
		outputPath           string
		delta                float64
	)
	flag.BoolVar(&raw, "raw", false, "input is one raw byte per cell instead of text")
	flag.IntVar(&size, "size", 0, "uniform grid size (sets depth, height, and width)")
	flag.IntVar(&depth, "depth", 0, "grid depth")
	flag.IntVar(&height, "height", 0, "grid height")
	flag.IntVar(&width, "width", 0, "grid width")
	flag.IntVar(&connectivity, "connectivity", 0, "adjacency rule: 6, 18, or 26 (0 runs all three)")
	flag.BoolVar(&components, "components", false, "count connected solid components")
	flag.BoolVar(&bubbles, "bubbles", false, "count enclosed bubbles")
	flag.StringVar(&meshMode, "mesh", "shell", "mesh strategy: shell, cubes, or smooth")
	flag.StringVar(&outputPath, "o", "", "mesh output file (.obj or .stl)")
	flag.Float64Var(&delta, "delta", 0.25, "marching cubes cell size for -mesh smooth")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: tessera [flags] <input>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	if size > 0 {
		depth, height, width = size, size, size
	}

	grid := loadGrid(flag.Arg(0), raw, depth, height, width)

	// With no explicit request, report everything.
	if !components && !bubbles && outputPath == "" {
		components, bubbles = true, true
	}

	if components || bubbles {
		countAndReport(grid, connectivity, components, bubbles)
	}
	if outputPath != "" {
		writeMesh(grid, meshMode, outputPath, delta)
	}
}

// loadGrid reads, validates, and reorients the input file.
func loadGrid(path string, raw bool, depth, height, width int) *voxel.Grid {
	f, err := os.Open(path)
	essentials.Must(err)
	defer f.Close()

	var values []uint8
	if raw {
		values, err = voxel.ReadRaw(f)
	} else {
		values, err = voxel.ReadCSV(f)
	}
	essentials.Must(err)

	grid, err := voxel.Load(values, depth, height, width)
	essentials.Must(err)
	return grid
}

// countAndReport runs the requested topology counts. The per-connectivity
// counts are independent (each owns its visited set over the read-only
// grid), so they run concurrently.
func countAndReport(grid *voxel.Grid, connectivity int, components, bubbles bool) {
	conns := []topology.Connectivity{topology.Face6, topology.FaceEdge18, topology.Full26}
	if connectivity != 0 {
		conn := topology.Connectivity(connectivity)
		if !conn.Valid() {
			log.Fatalf("invalid connectivity %d: must be 6, 18, or 26", connectivity)
		}
		conns = []topology.Connectivity{conn}
	}

	type result struct {
		components, bubbles int
	}
	results := make([]result, len(conns))

	start := time.Now()
	var wg sync.WaitGroup
	for i, conn := range conns {
		wg.Add(1)
		go func(i int, conn topology.Connectivity) {
			defer wg.Done()
			if components {
				results[i].components = topology.CountComponents(grid, conn)
			}
			if bubbles {
				results[i].bubbles = topology.CountBubbles(grid, conn)
			}
		}(i, conn)
	}
	wg.Wait()
	elapsed := time.Since(start)

	d, h, w := grid.Dims()
	fmt.Printf("grid:   %d x %d x %d (%d solid)\n", d, h, w, grid.SolidCount())
	for i, conn := range conns {
		if components {
			fmt.Printf("%-16s components: %d\n", conn, results[i].components)
		}
		if bubbles {
			fmt.Printf("%-16s bubbles:    %d\n", conn, results[i].bubbles)
		}
	}
	log.Printf("counted in %v", elapsed)
}

// writeMesh builds the mesh with the selected strategy and writes it in
// the format implied by the output file extension.
func writeMesh(grid *voxel.Grid, mode, path string, delta float64) {
	start := time.Now()

	if mode == "smooth" {
		if !strings.EqualFold(filepath.Ext(path), ".stl") {
			log.Fatal("smooth mesh output must be an .stl file")
		}
		m := export.MarchingCubes(grid, delta)
		m.SaveGroupedSTL(path)
		log.Printf("wrote smooth mesh to %s in %v", path, time.Since(start))
		return
	}

	var strategy mesher.Strategy
	switch mode {
	case "shell":
		strategy = mesher.Shell{}
	case "cubes":
		strategy = mesher.Cubes{}
	default:
		log.Fatalf("unknown mesh strategy %q", mode)
	}

	m := strategy.Build(grid)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		f, err := os.Create(path)
		essentials.Must(err)
		essentials.Must(export.WriteOBJ(f, m))
		essentials.Must(f.Close())
	case ".stl":
		export.Model3DMesh(m).SaveGroupedSTL(path)
	default:
		log.Fatalf("unsupported output format %q", filepath.Ext(path))
	}
	log.Printf("wrote %d vertices, %d faces to %s in %v",
		m.VertexCount(), m.FaceCount(), path, time.Since(start))
}
