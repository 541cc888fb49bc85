// Package pacgrid is the precomputed maze model behind a Pacman-playing
// robot: a fixed 28×31 grid of cell values, compiled once into a graph of
// walkable cells with all-pairs shortest distances, per-cell move masks and
// wall rectangles for rendering.
//
// Everything is computed up front so the control loop only does O(1)
// lookups:
//
//	grid/      — cell values, directions, points, text format
//	validate/  — structural checks on a grid (border, open squares, ...)
//	bfs/       — breadth-first search over integer-indexed graphs
//	gridgraph/ — ComputedGrid: nodes, distances, actions, walls, regions
//	standard/  — preset arenas: Blank, Outer, Pacman, Playground
//	cmd/pacgrid — offline report and distance probe
//
// Quick example (3×3 room, centre wall, Y grows up):
//
//	- - -
//	- # -
//	- - -
//
// Opposite corners are 4 hops apart; the centre has no neighbours.
//
//	cg, err := standard.Pacman.Compute()
//	d, ok := cg.Dist(grid.Pt(1, 1), grid.Pt(26, 29))
package pacgrid
