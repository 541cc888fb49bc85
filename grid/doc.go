// SPDX-License-Identifier: MIT

// Package grid holds the raw vocabulary of a Pacman-style arena: cell
// values, movement directions, integer coordinates and the fixed-size Grid
// a map designer edits.
//
// What:
//
//   - Value: exactly one per cell (Wall, Pellet, Empty, PowerPellet,
//     GhostChamber, Cherry). Walkability is a pure function of the value.
//   - Direction: Right, Left, Up, Down, always iterated in that order.
//   - Point: integer (X, Y); X grows to the right, Y grows UP.
//   - Grid: a Width×Height array of Values indexed g[x][y].
//
// Text format:
//
//	One line per row, top row (Y = Height-1) first:
//	  '#' Wall  '.' Pellet  'o' PowerPellet  '-' Empty  'n' GhostChamber  'c' Cherry
//
// Immutability:
//
//	Grid is an array value. Lookups never mutate it and With returns an
//	edited copy, so a Grid handed to gridgraph.New cannot change underneath
//	the precomputed structures.
//
// Complexity:
//
//   - At, InBounds, Step: O(1).
//   - Parse, String, Count: O(Width×Height).
package grid
