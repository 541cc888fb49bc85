// Command pacgrid builds the ComputedGrid of a maze and prints a short
// report: node and pellet counts, power pellets, wall rectangles, regions,
// and optionally the distance and first move between two cells.
//
// Usage:
//
//	pacgrid -grid pacman -from 13,7 -to 1,27
//	pacgrid -file maze.txt -print
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/pacgrid/grid"
	"github.com/katalvlaran/pacgrid/gridgraph"
	"github.com/katalvlaran/pacgrid/standard"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pacgrid: ")
	flag.Parse()

	g, label, err := loadGrid(*gridFlag, *fileFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *printFlag {
		fmt.Print(g.String())
	}

	opts := []gridgraph.Option{gridgraph.WithWorkers(*workersFlag)}
	if *noValidateFlag {
		opts = append(opts, gridgraph.WithoutValidation())
	}
	cg, err := gridgraph.New(g, opts...)
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
	report(os.Stdout, label, cg)

	if *fromFlag == "" && *toFlag == "" {
		return
	}
	from, err := parsePoint(*fromFlag)
	if err != nil {
		log.Fatal(err)
	}
	to, err := parsePoint(*toFlag)
	if err != nil {
		log.Fatal(err)
	}
	probe(os.Stdout, cg, from, to)
}

// loadGrid reads the maze from path when set, otherwise the named preset.
func loadGrid(name, path string) (grid.Grid, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return grid.Grid{}, "", err
		}
		g, err := grid.Parse(string(data))
		if err != nil {
			return grid.Grid{}, "", fmt.Errorf("%s: %w", path, err)
		}
		return g, path, nil
	}
	n, err := standard.ParseName(name)
	if err != nil {
		return grid.Grid{}, "", err
	}
	return n.Grid(), n.String(), nil
}

// report prints the precomputed inventory of cg.
func report(w io.Writer, label string, cg *gridgraph.ComputedGrid) {
	fmt.Fprintf(w, "grid:          %s\n", label)
	fmt.Fprintf(w, "nodes:         %d\n", cg.NodeCount())
	fmt.Fprintf(w, "pellets:       %d\n", cg.PelletCount())
	fmt.Fprintf(w, "power pellets: %v\n", cg.PowerPellets())
	fmt.Fprintf(w, "walls:         %d\n", len(cg.Walls()))
	fmt.Fprintf(w, "regions:       %d\n", cg.RegionCount())
}

// probe prints the distance, first move and path between two cells.
func probe(w io.Writer, cg *gridgraph.ComputedGrid, from, to grid.Point) {
	d, ok := cg.Dist(from, to)
	if !ok {
		fmt.Fprintf(w, "%v -> %v: no path\n", from, to)
		return
	}
	fmt.Fprintf(w, "%v -> %v: %d steps\n", from, to, d)
	if dir, ok := cg.NextAction(from, to); ok {
		fmt.Fprintf(w, "next action:   %v\n", dir)
	}
	if path, ok := cg.Path(from, to); ok {
		fmt.Fprintf(w, "path:          %v\n", path)
	}
}
