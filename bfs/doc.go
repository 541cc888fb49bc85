// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a dense integer-id Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore ids in non-decreasing distance (edge count) from a start id.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: id → distance (edges) from start, Unreached otherwise
//   - Parent: id → its predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time; gridgraph runs
//     one BFS per walkable cell to fill its all-pairs distance matrix.
//   - Discover reachable subsets and connected regions.
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.NeighborIDs returns them, so
//	the visit sequence and parent links are fully reproducible.
//
// Concurrency
//
//	BFS keeps all mutable state in a per-call walker. Any number of
//	searches may run concurrently over the same read-only Graph.
//
// Complexity (V = Order(), E = adjacency entries)
//
//   - Time:   O(V + E)   (each id and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(bfs.Adjacency{{1}, {0, 2}, {1}}, 0)
//	if err != nil {
//		// ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, or a hook error
//	}
//	path, err := res.PathTo(2) // [0 1 2]
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartOutOfRange      if the start id is not in [0, Order()).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for an unreached id.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
