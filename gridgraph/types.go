// SPDX-License-Identifier: MIT
// Package gridgraph defines the ComputedGrid, its value types, and the
// construction options.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pacgrid/grid"
	"github.com/katalvlaran/pacgrid/validate"
)

// NoPath is the distance-matrix entry for a pair of nodes with no path.
// Node counts never exceed grid.Width×grid.Height, so real distances stay
// well below it.
const NoPath = math.MaxUint16

// noNode marks cells without a node id in the coordinate index.
const noNode = -1

// ValidActions is the per-cell move mask. Walkable mirrors
// grid.Value.Walkable of the cell; each direction flag is true iff the cell
// is walkable and its neighbour in that direction is walkable.
type ValidActions struct {
	Walkable bool
	Right    bool
	Left     bool
	Up       bool
	Down     bool
}

// Can reports whether moving in direction d is legal.
func (va ValidActions) Can(d grid.Direction) bool {
	switch d {
	case grid.Right:
		return va.Right
	case grid.Left:
		return va.Left
	case grid.Up:
		return va.Up
	case grid.Down:
		return va.Down
	default:
		return false
	}
}

// Mask returns the flags as {walkable, right, left, up, down}.
func (va ValidActions) Mask() [5]bool {
	return [5]bool{va.Walkable, va.Right, va.Left, va.Up, va.Down}
}

// Wall is a maximal axis-aligned rectangle of Wall cells. LeftBottom and
// RightTop are the inclusive corner cells.
type Wall struct {
	LeftBottom grid.Point
	RightTop   grid.Point
}

// Size returns the rectangle's width and height in cells.
func (w Wall) Size() (width, height int) {
	return w.RightTop.X - w.LeftBottom.X + 1, w.RightTop.Y - w.LeftBottom.Y + 1
}

// Contains reports whether cell p lies inside the rectangle.
func (w Wall) Contains(p grid.Point) bool {
	return p.X >= w.LeftBottom.X && p.X <= w.RightTop.X &&
		p.Y >= w.LeftBottom.Y && p.Y <= w.RightTop.Y
}

// ComputedGrid is a grid.Grid with precomputed data for fast pathfinding.
// It is immutable once built and safe for concurrent readers.
type ComputedGrid struct {
	grid grid.Grid

	// walkable[id] is the coordinate of node id; nodeOf is its inverse.
	walkable []grid.Point
	nodeOf   [grid.Width][grid.Height]int

	// adj[id] lists neighbour ids in grid.Directions order.
	adj [][]int

	// dist is the n×n row-major hop-count matrix; NoPath when unreachable.
	dist []uint16

	actions [grid.Width][grid.Height]ValidActions

	walls        []Wall
	powerPellets []grid.Point
	pelletCount  int

	// region[id] is the connected-region label of node id.
	region      []int
	regionCount int
}

// Option configures New.
type Option func(*options)

type options struct {
	validation     []validate.Option
	skipValidation bool
	workers        int // 0 means runtime.GOMAXPROCS(0)
	err            error
}

// WithValidation passes options through to validate.Validate.
func WithValidation(opts ...validate.Option) Option {
	return func(o *options) {
		o.validation = append(o.validation, opts...)
		o.skipValidation = false
	}
}

// WithoutValidation skips the structural checks. A grid with no walkable
// cell is still rejected.
func WithoutValidation() Option {
	return func(o *options) {
		o.skipValidation = true
	}
}

// WithWorkers bounds the goroutines used to fill the distance matrix.
//
//	n > 0: at most n concurrent BFS runs
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}
