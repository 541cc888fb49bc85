// SPDX-License-Identifier: MIT
package gridgraph

import "github.com/katalvlaran/pacgrid/grid"

// labelRegions assigns every node the index of its connected region.
// Regions are numbered in order of their lowest node id.
//
// Time:   O(W + E).
// Memory: O(W) for labels and the queue.
func (cg *ComputedGrid) labelRegions() {
	n := len(cg.walkable)
	cg.region = make([]int, n)
	for i := range cg.region {
		cg.region[i] = noNode
	}

	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if cg.region[start] != noNode {
			continue
		}
		label := cg.regionCount
		cg.regionCount++

		queue = append(queue[:0], start)
		cg.region[start] = label
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range cg.adj[queue[qi]] {
				if cg.region[v] == noNode {
					cg.region[v] = label
					queue = append(queue, v)
				}
			}
		}
	}
}

// RegionCount returns the number of connected walkable regions.
func (cg *ComputedGrid) RegionCount() int {
	return cg.regionCount
}

// RegionOf returns the region index of p, or false if p is not walkable.
// Complexity: O(1).
func (cg *ComputedGrid) RegionOf(p grid.Point) (int, bool) {
	id, ok := cg.NodeID(p)
	if !ok {
		return 0, false
	}
	return cg.region[id], true
}

// Reachable reports whether a path exists between a and b.
// Complexity: O(1).
func (cg *ComputedGrid) Reachable(a, b grid.Point) bool {
	ra, ok := cg.RegionOf(a)
	if !ok {
		return false
	}
	rb, ok := cg.RegionOf(b)
	return ok && ra == rb
}

// Regions returns the cells of every region, each in node-id order.
// Complexity: O(W).
func (cg *ComputedGrid) Regions() [][]grid.Point {
	out := make([][]grid.Point, cg.regionCount)
	for id, r := range cg.region {
		out[r] = append(out[r], cg.walkable[id])
	}
	return out
}
