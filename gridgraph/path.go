// SPDX-License-Identifier: MIT
package gridgraph

import "github.com/katalvlaran/pacgrid/grid"

// NextAction returns the first move of a shortest path from a to b, read
// straight from the distance matrix: the first direction, in
// grid.Directions order, whose neighbour is one hop closer to b.
// Returns false if a == b, either point is not walkable, or b is
// unreachable from a.
// Complexity: O(1).
func (cg *ComputedGrid) NextAction(a, b grid.Point) (grid.Direction, bool) {
	i, ok := cg.NodeID(a)
	if !ok {
		return 0, false
	}
	j, ok := cg.NodeID(b)
	if !ok {
		return 0, false
	}
	n := len(cg.walkable)
	d := cg.dist[i*n+j]
	if d == NoPath || d == 0 {
		return 0, false
	}
	for _, dir := range grid.Directions {
		q := a.Step(dir)
		k, ok := cg.NodeID(q)
		if ok && cg.dist[k*n+j] == d-1 {
			return dir, true
		}
	}
	return 0, false // unreachable while the matrix is consistent
}

// Path returns a shortest path from a to b inclusive of both ends, built by
// repeated NextAction. Path(a, a) is [a]. Returns false if either point is
// not walkable or no path exists.
// Complexity: O(path length).
func (cg *ComputedGrid) Path(a, b grid.Point) ([]grid.Point, bool) {
	d, ok := cg.Dist(a, b)
	if !ok {
		return nil, false
	}
	path := make([]grid.Point, 0, d+1)
	path = append(path, a)
	for cur := a; cur != b; {
		dir, ok := cg.NextAction(cur, b)
		if !ok {
			return nil, false
		}
		cur = cur.Step(dir)
		path = append(path, cur)
	}
	return path, true
}
