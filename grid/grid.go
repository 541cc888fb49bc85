// SPDX-License-Identifier: MIT
package grid

import (
	"fmt"
	"strings"
)

// Grid is a dense Width×Height array of cell values indexed g[x][y].
// Identity is its contents; a new maze state is a new Grid value.
// Methods use value receivers so a Grid is never edited through a call.
type Grid [Width][Height]Value

// Fill returns a Grid with every cell set to v.
// Complexity: O(Width×Height).
func Fill(v Value) Grid {
	var g Grid
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			g[x][y] = v
		}
	}
	return g
}

// At returns the value stored at p, or false if p is out of bounds.
// It never panics.
// Complexity: O(1).
func (g Grid) At(p Point) (Value, bool) {
	if !InBounds(p) {
		return Wall, false
	}
	return g[p.X][p.Y], true
}

// With returns a copy of g with the cell at p set to v.
// Out-of-bounds points return an unmodified copy.
func (g Grid) With(p Point, v Value) Grid {
	if InBounds(p) {
		g[p.X][p.Y] = v
	}
	return g
}

// Count returns the number of cells whose value satisfies pred.
// Complexity: O(Width×Height).
func (g Grid) Count(pred func(Value) bool) int {
	n := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if pred(g[x][y]) {
				n++
			}
		}
	}
	return n
}

// Parse reads the text format: Height lines of Width runes, top row first.
// Leading and trailing blank lines are ignored, as is a trailing '\r'.
// Returns ErrBadShape or ErrUnknownCell wrapped with the offending
// row and column.
// Complexity: O(Width×Height).
func Parse(text string) (Grid, error) {
	var g Grid
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) != Height {
		return g, fmt.Errorf("%w: got %d rows", ErrBadShape, len(lines))
	}
	for row, line := range lines {
		cells := []rune(strings.TrimSuffix(line, "\r"))
		if len(cells) != Width {
			return g, fmt.Errorf("%w: row %d has %d cells", ErrBadShape, row, len(cells))
		}
		y := Height - 1 - row
		for x, r := range cells {
			v, err := ValueOf(r)
			if err != nil {
				return g, fmt.Errorf("row %d col %d: %w", row, x, err)
			}
			g[x][y] = v
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on error. Intended for compiled-in
// literals only.
func MustParse(text string) Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders g in the text format accepted by Parse.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := Height - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			sb.WriteRune(g[x][y].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
