// SPDX-License-Identifier: MIT
package gridgraph

import "github.com/katalvlaran/pacgrid/grid"

// ExtractWalls merges contiguous Wall cells into axis-aligned rectangles
// with a greedy horizontal-then-vertical pass:
//
//  1. scan cells bottom row first, left to right;
//  2. at each unclaimed Wall cell, extend right while cells are unclaimed walls;
//  3. extend that run upward while the whole row above is unclaimed wall;
//  4. claim the rectangle.
//
// Ties are broken by scan order, so the result is deterministic. Only
// grid.Wall cells take part; GhostChamber cells are left to the renderer.
// An all-Wall grid yields one rectangle; a grid without walls yields none.
// Complexity: O(Width×Height×Width) worst case, O(Width×Height) memory.
func ExtractWalls(g grid.Grid) []Wall {
	var claimed [grid.Width][grid.Height]bool
	free := func(x, y int) bool {
		return g[x][y] == grid.Wall && !claimed[x][y]
	}

	var walls []Wall
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if !free(x, y) {
				continue
			}
			right := x
			for right+1 < grid.Width && free(right+1, y) {
				right++
			}
			top := y
			for top+1 < grid.Height && rowFree(free, x, right, top+1) {
				top++
			}
			for cx := x; cx <= right; cx++ {
				for cy := y; cy <= top; cy++ {
					claimed[cx][cy] = true
				}
			}
			walls = append(walls, Wall{LeftBottom: grid.Pt(x, y), RightTop: grid.Pt(right, top)})
		}
	}

	return walls
}

// rowFree reports whether cells left..right of row y are all free.
func rowFree(free func(x, y int) bool, left, right, y int) bool {
	for x := left; x <= right; x++ {
		if !free(x, y) {
			return false
		}
	}
	return true
}
