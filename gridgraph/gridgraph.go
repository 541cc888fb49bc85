// SPDX-License-Identifier: MIT
// Package gridgraph provides the one-shot construction of a ComputedGrid and
// its O(1) read-only queries.
package gridgraph

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/pacgrid/grid"
	"github.com/katalvlaran/pacgrid/validate"
)

// New validates g and builds every precomputed structure.
// The grid is copied, so later edits to the caller's value have no effect.
//
// Stages:
//  1. validate (unless WithoutValidation);
//  2. node enumeration and coordinate index;
//  3. adjacency and valid-action masks;
//  4. connected regions;
//  5. distance matrix, one BFS per node, in parallel;
//  6. wall rectangles and pellet inventory.
//
// Returns ErrValidation (wrapping the validate sentinel) or
// ErrOptionViolation. Deterministic: the same grid always yields
// identical structures.
// Complexity: O(W·(W+E)) time, O(W²) memory.
func New(g grid.Grid, opts ...Option) (*ComputedGrid, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if o.skipValidation {
		if g.Count(grid.Value.Walkable) == 0 {
			return nil, fmt.Errorf("%w: %w", ErrValidation, validate.ErrNoWalkable)
		}
	} else if err := validate.Validate(&g, o.validation...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	cg := &ComputedGrid{grid: g}
	cg.enumerateNodes()
	cg.buildAdjacency()
	cg.labelRegions()
	if err := cg.fillDistances(workers); err != nil {
		return nil, err
	}
	cg.walls = ExtractWalls(g)
	cg.collectPellets()

	return cg, nil
}

// enumerateNodes assigns consecutive ids to walkable cells, X outer, Y inner.
func (cg *ComputedGrid) enumerateNodes() {
	cg.walkable = make([]grid.Point, 0, grid.Width*grid.Height)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if !cg.grid[x][y].Walkable() {
				cg.nodeOf[x][y] = noNode
				continue
			}
			cg.nodeOf[x][y] = len(cg.walkable)
			cg.walkable = append(cg.walkable, grid.Pt(x, y))
		}
	}
}

// buildAdjacency fills adj in grid.Directions order and derives the
// valid-action mask of every cell from it.
func (cg *ComputedGrid) buildAdjacency() {
	cg.adj = make([][]int, len(cg.walkable))
	for id, p := range cg.walkable {
		va := ValidActions{Walkable: true}
		nbrs := make([]int, 0, len(grid.Directions))
		for _, d := range grid.Directions {
			q := p.Step(d)
			if !grid.InBounds(q) || cg.nodeOf[q.X][q.Y] == noNode {
				continue
			}
			nbrs = append(nbrs, cg.nodeOf[q.X][q.Y])
			switch d {
			case grid.Right:
				va.Right = true
			case grid.Left:
				va.Left = true
			case grid.Up:
				va.Up = true
			case grid.Down:
				va.Down = true
			}
		}
		cg.adj[id] = nbrs
		cg.actions[p.X][p.Y] = va
	}
}

// collectPellets records power-pellet coordinates in scan order and counts
// every pellet-bearing cell.
func (cg *ComputedGrid) collectPellets() {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			v := cg.grid[x][y]
			if v == grid.PowerPellet {
				cg.powerPellets = append(cg.powerPellets, grid.Pt(x, y))
			}
			if v.IsPellet() {
				cg.pelletCount++
			}
		}
	}
}

// Order returns the number of walkable nodes. Together with NeighborIDs it
// lets a ComputedGrid serve as a bfs.Graph.
func (cg *ComputedGrid) Order() int {
	return len(cg.walkable)
}

// NeighborIDs returns the neighbour ids of node id in grid.Directions order.
// The slice is shared and must not be modified.
func (cg *ComputedGrid) NeighborIDs(id int) []int {
	return cg.adj[id]
}

// Grid returns a copy of the source grid.
func (cg *ComputedGrid) Grid() grid.Grid {
	return cg.grid
}

// At returns the source value at p, or false if p is out of bounds.
func (cg *ComputedGrid) At(p grid.Point) (grid.Value, bool) {
	if !grid.InBounds(p) {
		return grid.Wall, false
	}
	return cg.grid[p.X][p.Y], true
}

// NodeCount returns the number of walkable cells.
func (cg *ComputedGrid) NodeCount() int {
	return len(cg.walkable)
}

// NodeID returns the node id of p, or false if p is out of bounds or not
// walkable.
// Complexity: O(1).
func (cg *ComputedGrid) NodeID(p grid.Point) (int, bool) {
	if !grid.InBounds(p) {
		return 0, false
	}
	id := cg.nodeOf[p.X][p.Y]
	return id, id != noNode
}

// Node returns the coordinate of node id, or false if id is out of range.
// Complexity: O(1).
func (cg *ComputedGrid) Node(id int) (grid.Point, bool) {
	if id < 0 || id >= len(cg.walkable) {
		return grid.Point{}, false
	}
	return cg.walkable[id], true
}

// WalkableNodes returns every walkable coordinate in node-id order.
// Not all of them are guaranteed to be mutually reachable: disconnected
// regions are legal, check Reachable or Dist before assuming a path.
// The returned slice is a copy.
// Complexity: O(W).
func (cg *ComputedGrid) WalkableNodes() []grid.Point {
	out := make([]grid.Point, len(cg.walkable))
	copy(out, cg.walkable)
	return out
}

// Dist returns the hop distance between a and b, or false if either is not
// walkable or no path exists. Dist(a, a) is 0 for every walkable a.
// Complexity: O(1).
func (cg *ComputedGrid) Dist(a, b grid.Point) (int, bool) {
	i, ok := cg.NodeID(a)
	if !ok {
		return 0, false
	}
	j, ok := cg.NodeID(b)
	if !ok {
		return 0, false
	}
	d := cg.dist[i*len(cg.walkable)+j]
	if d == NoPath {
		return 0, false
	}
	return int(d), true
}

// Neighbors returns the walkable orthogonal neighbours of p in
// grid.Directions order. Non-walkable or out-of-bounds p yields none.
// Complexity: O(1).
func (cg *ComputedGrid) Neighbors(p grid.Point) []grid.Point {
	id, ok := cg.NodeID(p)
	if !ok {
		return nil
	}
	out := make([]grid.Point, len(cg.adj[id]))
	for i, n := range cg.adj[id] {
		out[i] = cg.walkable[n]
	}
	return out
}

// ValidActions returns the move mask of p, or false if p is out of bounds.
// Non-walkable cells return the zero mask.
// Complexity: O(1).
func (cg *ComputedGrid) ValidActions(p grid.Point) (ValidActions, bool) {
	if !grid.InBounds(p) {
		return ValidActions{}, false
	}
	return cg.actions[p.X][p.Y], true
}

// Walls returns the wall rectangles in extraction order. The slice is a copy.
func (cg *ComputedGrid) Walls() []Wall {
	out := make([]Wall, len(cg.walls))
	copy(out, cg.walls)
	return out
}

// PowerPellets returns the coordinates of every power pellet in scan order.
// The slice is a copy.
func (cg *ComputedGrid) PowerPellets() []grid.Point {
	out := make([]grid.Point, len(cg.powerPellets))
	copy(out, cg.powerPellets)
	return out
}

// PelletCount returns the number of cells holding a normal or power pellet.
func (cg *ComputedGrid) PelletCount() int {
	return cg.pelletCount
}
