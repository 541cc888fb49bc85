// SPDX-License-Identifier: MIT
package validate

import (
	"fmt"

	"github.com/katalvlaran/pacgrid/grid"
)

// Validate checks g against the structural invariants and returns the first
// failure, or nil. The returned error wraps one of the package sentinels;
// match it with errors.Is.
func Validate(g *grid.Grid, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkValues(g); err != nil {
		return err
	}
	if o.BorderCheck {
		if err := checkBorder(g, &o); err != nil {
			return err
		}
	}
	if o.OpenSquareCheck {
		if err := checkOpenSquares(g); err != nil {
			return err
		}
	}
	if g.Count(grid.Value.Walkable) == 0 {
		return ErrNoWalkable
	}

	return nil
}

// checkValues rejects any cell outside the recognised Value set.
func checkValues(g *grid.Grid) error {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if !g[x][y].Valid() {
				return fmt.Errorf("%w: %v at %v", ErrUnknownValue, g[x][y], grid.Pt(x, y))
			}
		}
	}
	return nil
}

// checkBorder walks the outermost ring in scan order.
func checkBorder(g *grid.Grid, o *Options) error {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if x != 0 && x != grid.Width-1 && y != 0 && y != grid.Height-1 {
				continue // interior
			}
			if !o.BorderValues.Has(g[x][y]) {
				return fmt.Errorf("%w: %v at %v", ErrOpenBorder, g[x][y], grid.Pt(x, y))
			}
		}
	}
	return nil
}

// checkOpenSquares reports the first 2×2 walkable block by its
// bottom-left cell.
func checkOpenSquares(g *grid.Grid) error {
	for x := 0; x < grid.Width-1; x++ {
		for y := 0; y < grid.Height-1; y++ {
			if g[x][y].Walkable() && g[x+1][y].Walkable() &&
				g[x][y+1].Walkable() && g[x+1][y+1].Walkable() {
				return fmt.Errorf("%w: bottom-left corner %v", ErrOpenSquare, grid.Pt(x, y))
			}
		}
	}
	return nil
}
