// SPDX-License-Identifier: MIT
package gridgraph

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pacgrid/bfs"
)

// fillDistances runs one BFS per node and stores its depths as row id of
// the distance matrix. Each goroutine owns a disjoint row, so no locking is
// needed; at most workers searches run at once.
// Complexity: O(W·(W+E)) time, O(W²) memory.
func (cg *ComputedGrid) fillDistances(workers int) error {
	n := len(cg.walkable)
	cg.dist = make([]uint16, n*n)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for src := 0; src < n; src++ {
		src := src // per-iteration copy; module targets go 1.21 loop semantics
		eg.Go(func() error {
			res, err := bfs.BFS(cg, src)
			if err != nil {
				return fmt.Errorf("gridgraph: distances from node %d: %w", src, err)
			}
			row := cg.dist[src*n : (src+1)*n]
			for dst, d := range res.Depth {
				if d == bfs.Unreached {
					row[dst] = NoPath
					continue
				}
				row[dst] = uint16(d)
			}
			return nil
		})
	}

	return eg.Wait()
}
