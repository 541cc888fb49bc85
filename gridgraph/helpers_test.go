package gridgraph_test

import (
	"github.com/katalvlaran/pacgrid/grid"
)

// threeByThree draws a 3×3 room with a wall in the centre at (1..3, 1..3)
// inside an otherwise solid grid:
//
//	- - -
//	- # -
//	- - -
//
// Walkable cells: 8. Opposite corners are 4 hops apart.
func threeByThree() grid.Grid {
	g := grid.Fill(grid.Wall)
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			if x == 2 && y == 2 {
				continue
			}
			g = g.With(grid.Pt(x, y), grid.Empty)
		}
	}
	return g
}

// twoRegions draws two horizontal corridors, y=1 and y=3, for x in 1..5,
// separated by the solid row y=2.
func twoRegions() grid.Grid {
	g := grid.Fill(grid.Wall)
	for x := 1; x <= 5; x++ {
		g = g.With(grid.Pt(x, 1), grid.Pellet)
		g = g.With(grid.Pt(x, 3), grid.Pellet)
	}
	return g.With(grid.Pt(5, 3), grid.PowerPellet)
}

// openField is every interior cell Empty; it needs WithoutValidation.
func openField() grid.Grid {
	g := grid.Fill(grid.Wall)
	for x := 1; x < grid.Width-1; x++ {
		for y := 1; y < grid.Height-1; y++ {
			g = g.With(grid.Pt(x, y), grid.Empty)
		}
	}
	return g
}

// allPoints lists every in-bounds coordinate.
func allPoints() []grid.Point {
	pts := make([]grid.Point, 0, grid.Width*grid.Height)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			pts = append(pts, grid.Pt(x, y))
		}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
