// SPDX-License-Identifier: MIT

// Package gridgraph turns a raw arena grid into a ComputedGrid: an immutable
// set of precomputed structures that answer pathfinding and legality queries
// in O(1) from inside a real-time control loop.
//
// What:
//
//   - Node index: every walkable cell gets a dense id, assigned by scanning
//     X outer, Y inner. NodeID and Node convert between the two.
//   - Adjacency: up to four orthogonal walkable neighbours per cell, always
//     listed in grid.Directions order (Right, Left, Up, Down).
//   - ValidActions: per-cell mask {walkable, right, left, up, down}.
//   - Distance matrix: exact hop count between every pair of walkable cells,
//     one BFS per node. Pairs in different regions hold NoPath.
//   - Walls: maximal wall rectangles for geometry consumers.
//   - PowerPellets / PelletCount: pellet inventory of the source grid.
//   - Regions: connected-component label per node.
//
// Why:
//
//   - A controller ticking at high frequency cannot afford a search per
//     decision; it reads Dist, NextAction and ValidActions instead.
//
// Lifecycle:
//
//	raw grid.Grid → validate.Validate → New (one-time, CPU-bound) → queries.
//	A ComputedGrid is never mutated after New returns, so any number of
//	goroutines may query it concurrently without locks. Editing the maze
//	means building a new ComputedGrid.
//
// Complexity (W = walkable cells, C = Width×Height):
//
//   - New:                O(W·(W+E)) time, O(W² + C) memory; rows of the
//     distance matrix are filled in parallel (WithWorkers).
//   - Dist, NodeID, Node, ValidActions, Neighbors, NextAction, Reachable: O(1).
//   - Path: O(length of path).
//   - ExtractWalls: O(C·Width).
//
// Options:
//
//   - WithValidation(opts...): tune the validate checks run by New.
//   - WithoutValidation(): skip structural checks (fixtures, open fields);
//     a grid with no walkable cell is still rejected.
//   - WithWorkers(n): bound the goroutines filling the distance matrix.
//
// Errors:
//
//   - ErrValidation: wraps the validate sentinel that rejected the grid.
//   - ErrOptionViolation: an invalid option (e.g. negative workers).
//   - ErrRegionIndex, ErrNoBridge: from BridgeRegions.
//
// Lookup misses (out of bounds, wall, unreachable) are never errors: query
// methods report them through a false second result.
package gridgraph
