package gridgraph_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pacgrid/grid"
	"github.com/katalvlaran/pacgrid/gridgraph"
	"github.com/katalvlaran/pacgrid/standard"
)

// TestExtractWalls_Extremes covers the all-wall and wall-free grids.
func TestExtractWalls_Extremes(t *testing.T) {
	walls := gridgraph.ExtractWalls(grid.Fill(grid.Wall))
	require.Len(t, walls, 1)
	assert.Equal(t, gridgraph.Wall{
		LeftBottom: grid.Pt(0, 0),
		RightTop:   grid.Pt(grid.Width-1, grid.Height-1),
	}, walls[0])
	w, h := walls[0].Size()
	assert.Equal(t, grid.Width, w)
	assert.Equal(t, grid.Height, h)

	assert.Empty(t, gridgraph.ExtractWalls(grid.Fill(grid.Empty)))
	assert.Empty(t, gridgraph.ExtractWalls(grid.Fill(grid.GhostChamber)),
		"ghost chamber cells are not wall rectangles")
}

// TestExtractWalls_Frame checks the greedy order on the 3×3 fixture: a full
// bottom band first, then the rest of the left column.
func TestExtractWalls_Frame(t *testing.T) {
	walls := gridgraph.ExtractWalls(threeByThree())
	require.NotEmpty(t, walls)
	assert.Equal(t, gridgraph.Wall{
		LeftBottom: grid.Pt(0, 0),
		RightTop:   grid.Pt(grid.Width-1, 0),
	}, walls[0])
	assert.Equal(t, gridgraph.Wall{
		LeftBottom: grid.Pt(0, 1),
		RightTop:   grid.Pt(0, grid.Height-1),
	}, walls[1])
	assertExactCover(t, threeByThree(), walls)
}

// TestExtractWalls_Presets checks every preset is covered exactly once.
func TestExtractWalls_Presets(t *testing.T) {
	for _, n := range standard.All() {
		t.Run(n.String(), func(t *testing.T) {
			assertExactCover(t, n.Grid(), gridgraph.ExtractWalls(n.Grid()))
		})
	}
}

// assertExactCover fails unless every Wall cell lies in exactly one
// rectangle and no rectangle contains a non-Wall cell.
func assertExactCover(t *testing.T, g grid.Grid, walls []gridgraph.Wall) {
	t.Helper()
	var hits [grid.Width][grid.Height]int
	for _, w := range walls {
		for x := w.LeftBottom.X; x <= w.RightTop.X; x++ {
			for y := w.LeftBottom.Y; y <= w.RightTop.Y; y++ {
				hits[x][y]++
			}
		}
	}
	for _, p := range allPoints() {
		v, _ := g.At(p)
		want := 0
		if v == grid.Wall {
			want = 1
		}
		if hits[p.X][p.Y] != want {
			t.Errorf("cell %v (%v) covered %d times; want %d", p, v, hits[p.X][p.Y], want)
		}
	}
}

// TestWall_Contains checks inclusive corners.
func TestWall_Contains(t *testing.T) {
	w := gridgraph.Wall{LeftBottom: grid.Pt(2, 3), RightTop: grid.Pt(4, 3)}
	assert.True(t, w.Contains(grid.Pt(2, 3)))
	assert.True(t, w.Contains(grid.Pt(4, 3)))
	assert.False(t, w.Contains(grid.Pt(5, 3)))
	assert.False(t, w.Contains(grid.Pt(3, 4)))
	width, height := w.Size()
	assert.Equal(t, 3, width)
	assert.Equal(t, 1, height)
}

// TestPointToScreen checks the corners of the grid map to the corners of
// the screen, with Y flipped.
func TestPointToScreen(t *testing.T) {
	const sw, sh = 280, 310
	cases := []struct {
		name string
		x, y float64
		want image.Point
	}{
		{"TopLeftEdge", -0.5, grid.Height - 0.5, image.Pt(0, 0)},
		{"BottomRightEdge", grid.Width - 0.5, -0.5, image.Pt(sw, sh)},
		{"OriginCentre", 0, 0, image.Pt(5, 305)},
		{"TopRightCentre", grid.Width - 1, grid.Height - 1, image.Pt(275, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gridgraph.PointToScreen(tc.x, tc.y, sw, sh))
		})
	}
}

// TestWall_ToScreen maps rectangles to screen space.
func TestWall_ToScreen(t *testing.T) {
	full := gridgraph.ExtractWalls(grid.Fill(grid.Wall))[0]
	assert.Equal(t, image.Rect(0, 0, 280, 310), full.ToScreen(280, 310))

	cell := gridgraph.Wall{LeftBottom: grid.Pt(0, 0), RightTop: grid.Pt(0, 0)}
	assert.Equal(t, image.Rect(0, 300, 10, 310), cell.ToScreen(280, 310))

	minX, minY, maxX, maxY := cell.Bounds()
	assert.Equal(t, [4]float64{-0.5, -0.5, 0.5, 0.5}, [4]float64{minX, minY, maxX, maxY})
}
