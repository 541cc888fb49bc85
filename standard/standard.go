// SPDX-License-Identifier: MIT

// Package standard is the catalog of named preset arenas. Each preset is an
// ordinary grid.Grid; gridgraph has no special-casing for any of them.
//
//   - Blank:      (mostly) solid wall; only (1,1) is walkable.
//   - Outer:      only the outermost path is open.
//   - Pacman:     the official arena.
//   - Playground: many small corridors to practise manoeuvring.
package standard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pacgrid/grid"
	"github.com/katalvlaran/pacgrid/gridgraph"
)

// ErrUnknownName indicates a preset name ParseName does not recognise.
var ErrUnknownName = errors.New("standard: unknown grid name")

// Name identifies a preset arena.
type Name int

const (
	// Blank is solid wall except (1,1).
	Blank Name = iota
	// Outer opens only the outermost path.
	Outer
	// Pacman is the official arena.
	Pacman
	// Playground is a lattice of short corridors.
	Playground
)

type preset struct {
	name  string
	grid  grid.Grid
	start grid.Point
}

// presets is parsed once at init; a bad literal is a programming error.
var presets = [...]preset{
	Blank:      {name: "Blank", grid: grid.MustParse(blankText), start: grid.Pt(1, 1)},
	Outer:      {name: "Outer", grid: grid.MustParse(outerText), start: grid.Pt(1, 1)},
	Pacman:     {name: "Pacman", grid: grid.MustParse(pacmanText), start: grid.Pt(13, 7)},
	Playground: {name: "Playground", grid: grid.MustParse(playgroundText), start: grid.Pt(1, 1)},
}

// All returns every preset in declaration order.
func All() []Name {
	return []Name{Blank, Outer, Pacman, Playground}
}

// Valid reports whether n names a preset.
func (n Name) Valid() bool {
	return n >= Blank && n <= Playground
}

// String implements fmt.Stringer.
func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return presets[n].name
}

// ParseName looks a preset up by name, case-insensitively.
func ParseName(s string) (Name, error) {
	for _, n := range All() {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
}

// Grid returns a copy of the preset's grid. Invalid names yield an
// all-wall grid.
func (n Name) Grid() grid.Grid {
	if !n.Valid() {
		return grid.Fill(grid.Wall)
	}
	return presets[n].grid
}

// DefaultStart returns the robot's default spawn cell on the preset.
func (n Name) DefaultStart() grid.Point {
	if !n.Valid() {
		return grid.Point{}
	}
	return presets[n].start
}

// Compute builds the ComputedGrid of the preset.
func (n Name) Compute(opts ...gridgraph.Option) (*gridgraph.ComputedGrid, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownName, n)
	}
	return gridgraph.New(presets[n].grid, opts...)
}
