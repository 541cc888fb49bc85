// SPDX-License-Identifier: MIT
package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/pacgrid/grid"
)

// BridgeRegions finds the fewest non-walkable cells a map designer must
// open to join region src to region dst (see RegionOf). Each opened cell
// costs 1; the outermost ring is never opened so the arena stays sealed.
// Returns the cell path (including the walkable end cells) and its cost.
//
// Behavior:
//  1. Validate region indices.
//  2. Multi-source 0–1 BFS from all src cells:
//     • moving into a walkable cell     → cost 0
//     • moving into a non-walkable cell → cost 1
//  3. Stop when any dst cell is dequeued.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(C) time and memory, C = Width×Height.
func (cg *ComputedGrid) BridgeRegions(src, dst int) (path []grid.Point, cost int, err error) {
	if src < 0 || src >= cg.regionCount || dst < 0 || dst >= cg.regionCount {
		return nil, 0, ErrRegionIndex
	}

	const total = grid.Width * grid.Height
	const inf = int(^uint(0) >> 1)
	var dist, prev [total]int
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for id, r := range cg.region {
		if r == src {
			i := cellIndex(cg.walkable[id])
			dist[i] = 0
			dq.PushFront(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		up := cellPoint(u)
		if r, ok := cg.RegionOf(up); ok && r == dst {
			target = u
			break
		}
		for _, d := range grid.Directions {
			vp := up.Step(d)
			if !grid.InBounds(vp) {
				continue
			}
			walkable := cg.grid[vp.X][vp.Y].Walkable()
			if !walkable && onBorder(vp) {
				continue
			}
			v := cellIndex(vp)
			step := 0
			if !walkable {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoBridge
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, cellPoint(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// cellIndex maps p to x*Height + y, the node enumeration scan order.
func cellIndex(p grid.Point) int {
	return p.X*grid.Height + p.Y
}

// cellPoint inverts cellIndex.
func cellPoint(i int) grid.Point {
	return grid.Pt(i/grid.Height, i%grid.Height)
}

func onBorder(p grid.Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == grid.Width-1 || p.Y == grid.Height-1
}
