// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a dense integer-id Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores ids in increasing distance from a start id,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	queue []int
	head  int
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E) time, O(V) memory.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	// Seed queue with start id (no parent)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		id := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, id)
		depth := w.res.Depth[id]
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		w.enqueueNeighbors(id, depth)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor in the order the graph reports them.
func (w *walker) enqueueNeighbors(id, depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.NeighborIDs(id) {
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, next, id)
		}
	}
}
