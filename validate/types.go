// SPDX-License-Identifier: MIT

// Package validate rejects structurally invalid grids before they reach the
// expensive precomputation in gridgraph.New.
//
// Checks, in reporting priority order:
//
//  1. every cell holds a recognised grid.Value          → ErrUnknownValue
//  2. the outermost ring holds only allowed border values → ErrOpenBorder
//  3. no 2×2 block is entirely walkable                  → ErrOpenSquare
//  4. at least one walkable cell exists                  → ErrNoWalkable
//
// Checks 2 and 3 are configurable; checks 1 and 4 always run. The first
// failure is returned, wrapping its sentinel with the offending cell.
// Failures are never corrected: the caller supplies a fixed Grid and retries.
//
// Complexity: O(Width×Height) time, O(1) extra memory.
package validate

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pacgrid/grid"
)

// Sentinel errors, one per failure kind.
var (
	// ErrUnknownValue indicates a cell outside the recognised Value set.
	ErrUnknownValue = errors.New("validate: unrecognised cell value")

	// ErrOpenBorder indicates a disallowed value on the outermost ring,
	// which would let paths leak off the arena.
	ErrOpenBorder = errors.New("validate: border cell is not sealed")

	// ErrOpenSquare indicates a 2×2 block of walkable cells; arena
	// corridors are exactly one cell wide.
	ErrOpenSquare = errors.New("validate: 2x2 walkable square")

	// ErrNoWalkable indicates a grid with no walkable cell at all.
	ErrNoWalkable = errors.New("validate: grid has no walkable cell")
)

// Option configures Validate.
type Option func(*Options)

// Options holds the resolved check configuration.
type Options struct {
	// BorderCheck enables the outermost-ring check.
	BorderCheck bool
	// BorderValues is the set of values permitted on the outermost ring.
	BorderValues mapset.Set[grid.Value]
	// OpenSquareCheck enables the 2×2 walkable block check.
	OpenSquareCheck bool
}

// DefaultOptions returns the default policy: both checks on, and the border
// restricted to non-walkable values (Wall, GhostChamber).
func DefaultOptions() Options {
	border := mapset.New[grid.Value]()
	for _, v := range grid.Values {
		if !v.Walkable() {
			border.Put(v)
		}
	}
	return Options{
		BorderCheck:     true,
		BorderValues:    border,
		OpenSquareCheck: true,
	}
}

// WithBorderCheck enables or disables the outermost-ring check.
func WithBorderCheck(on bool) Option {
	return func(o *Options) {
		o.BorderCheck = on
	}
}

// WithBorderValues replaces the set of values allowed on the outermost ring.
// Passing no values keeps the default set.
func WithBorderValues(vals ...grid.Value) Option {
	return func(o *Options) {
		if len(vals) == 0 {
			return
		}
		set := mapset.New[grid.Value]()
		for _, v := range vals {
			set.Put(v)
		}
		o.BorderValues = set
	}
}

// WithOpenSquareCheck enables or disables the 2×2 walkable block check.
func WithOpenSquareCheck(on bool) Option {
	return func(o *Options) {
		o.OpenSquareCheck = on
	}
}
