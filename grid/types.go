// SPDX-License-Identifier: MIT
// Package grid defines the cell, direction and coordinate types shared by
// every other package of github.com/katalvlaran/pacgrid.
package grid

import "fmt"

// Dimensions of every Grid. They match the official arena and are fixed at
// compile time; a smaller maze is drawn inside a sea of walls.
const (
	// Width is the number of columns (X axis).
	Width = 28
	// Height is the number of rows (Y axis).
	Height = 31
)

// Value is the content of a single grid cell.
type Value uint8

const (
	// Wall blocks movement.
	Wall Value = iota
	// Pellet is a normal pellet on a walkable cell.
	Pellet
	// Empty is a walkable cell with nothing on it.
	Empty
	// PowerPellet is a power pellet on a walkable cell.
	PowerPellet
	// GhostChamber is the inside of the ghost house: a wall for the robot.
	GhostChamber
	// Cherry marks the cherry spawn cell; walkable.
	Cherry

	numValues // sentinel: count of recognised values
)

// valueRunes maps each Value to its text-format rune.
var valueRunes = [numValues]rune{
	Wall:         '#',
	Pellet:       '.',
	Empty:        '-',
	PowerPellet:  'o',
	GhostChamber: 'n',
	Cherry:       'c',
}

var valueNames = [numValues]string{
	Wall:         "Wall",
	Pellet:       "Pellet",
	Empty:        "Empty",
	PowerPellet:  "PowerPellet",
	GhostChamber: "GhostChamber",
	Cherry:       "Cherry",
}

// Values lists every recognised Value in declaration order.
var Values = [...]Value{Wall, Pellet, Empty, PowerPellet, GhostChamber, Cherry}

// Valid reports whether v is one of the recognised variants.
func (v Value) Valid() bool {
	return v < numValues
}

// Walkable reports whether the robot may occupy a cell holding v.
// Wall and GhostChamber are not walkable; every other variant is.
// Unrecognised values are treated as not walkable.
// Complexity: O(1).
func (v Value) Walkable() bool {
	switch v {
	case Pellet, Empty, PowerPellet, Cherry:
		return true
	default:
		return false
	}
}

// IsPellet reports whether v carries a pellet (normal or power).
func (v Value) IsPellet() bool {
	return v == Pellet || v == PowerPellet
}

// Rune returns the text-format rune of v, or '?' for an unrecognised value.
func (v Value) Rune() rune {
	if !v.Valid() {
		return '?'
	}
	return valueRunes[v]
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
	return valueNames[v]
}

// ValueOf converts a text-format rune back into a Value.
// Returns ErrUnknownCell for any rune outside the format.
func ValueOf(r rune) (Value, error) {
	for v, vr := range valueRunes {
		if vr == r {
			return Value(v), nil
		}
	}
	return Wall, fmt.Errorf("%w: %q", ErrUnknownCell, r)
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	// Right is +X.
	Right Direction = iota
	// Left is -X.
	Left
	// Up is +Y.
	Up
	// Down is -Y.
	Down
)

// Directions is the fixed iteration order used for adjacency and masks.
var Directions = [4]Direction{Right, Left, Up, Down}

// dirDeltas matches Directions index order.
var dirDeltas = [4][2]int{
	Right: {1, 0},
	Left:  {-1, 0},
	Up:    {0, 1},
	Down:  {0, -1},
}

var dirOpposite = [4]Direction{
	Right: Left,
	Left:  Right,
	Up:    Down,
	Down:  Up,
}

var dirNames = [4]string{
	Right: "Right",
	Left:  "Left",
	Up:    "Up",
	Down:  "Down",
}

// Delta returns the unit step (dx, dy) of d.
func (d Direction) Delta() (dx, dy int) {
	return dirDeltas[d&3][0], dirDeltas[d&3][1]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return dirOpposite[d&3]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d > Down {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return dirNames[d]
}

// Point is an integer cell coordinate. X grows right, Y grows up.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Step returns the point one cell away from p in direction d.
// The result may lie outside the grid; check it with InBounds.
// Complexity: O(1).
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether p lies inside a Width×Height grid.
// Complexity: O(1).
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}
