package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pacgrid/grid"
	"github.com/katalvlaran/pacgrid/gridgraph"
	"github.com/katalvlaran/pacgrid/standard"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New
////////////////////////////////////////////////////////////////////////////////

// ExampleNew builds a 3×3 room with a wall in its centre and queries the
// precomputed distances and move masks.
//
//	- - -
//	- # -
//	- - -
//
// Opposite corners must route around the centre: 4 hops.
func ExampleNew() {
	g := grid.Fill(grid.Wall)
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			if x != 2 || y != 2 {
				g = g.With(grid.Pt(x, y), grid.Empty)
			}
		}
	}

	cg, err := gridgraph.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := cg.Dist(grid.Pt(1, 1), grid.Pt(3, 3))
	va, _ := cg.ValidActions(grid.Pt(1, 1))

	fmt.Println("nodes:", cg.NodeCount())
	fmt.Println("corner to corner:", d)
	fmt.Println("mask at (1,1):", va.Mask())
	fmt.Println("neighbours of centre:", len(cg.Neighbors(grid.Pt(2, 2))))

	// Output:
	// nodes: 8
	// corner to corner: 4
	// mask at (1,1): [true true false true false]
	// neighbours of centre: 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: Path
////////////////////////////////////////////////////////////////////////////////

// ExampleComputedGrid_Path walks the official arena from the spawn cell to
// the nearest corner power pellet.
func ExampleComputedGrid_Path() {
	cg, _ := standard.Pacman.Compute()
	start := standard.Pacman.DefaultStart()
	target := grid.Pt(1, 27)

	d, _ := cg.Dist(start, target)
	path, _ := cg.Path(start, target)
	dir, _ := cg.NextAction(start, target)

	fmt.Println("distance:", d)
	fmt.Println("path cells:", len(path))
	fmt.Println("ends:", path[0], path[len(path)-1])
	fmt.Println("first move:", dir)

	// Output:
	// distance: 32
	// path cells: 33
	// ends: (13,7) (1,27)
	// first move: Left
}
