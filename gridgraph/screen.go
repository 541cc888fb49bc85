// SPDX-License-Identifier: MIT
package gridgraph

import (
	"image"
	"math"

	"github.com/katalvlaran/pacgrid/grid"
)

// PointToScreen maps a grid-space point to pixel coordinates on a
// screenW×screenH surface. Cell centres sit on integer grid coordinates,
// so the grid spans [-0.5, Width-0.5] × [-0.5, Height-0.5]. Screen Y grows
// downward, grid Y grows upward. Pure affine transform; no game logic.
// Complexity: O(1).
func PointToScreen(x, y float64, screenW, screenH int) image.Point {
	sx := (x + 0.5) * float64(screenW) / grid.Width
	sy := (grid.Height - 0.5 - y) * float64(screenH) / grid.Height
	return image.Pt(int(math.Round(sx)), int(math.Round(sy)))
}

// Bounds returns the rectangle's extent in grid space: the outer edges of
// its corner cells.
func (w Wall) Bounds() (minX, minY, maxX, maxY float64) {
	return float64(w.LeftBottom.X) - 0.5, float64(w.LeftBottom.Y) - 0.5,
		float64(w.RightTop.X) + 0.5, float64(w.RightTop.Y) + 0.5
}

// ToScreen returns the wall as a screen-space rectangle: Min is the top-left
// pixel, Max the bottom-right.
func (w Wall) ToScreen(screenW, screenH int) image.Rectangle {
	minX, minY, maxX, maxY := w.Bounds()
	return image.Rectangle{
		Min: PointToScreen(minX, maxY, screenW, screenH),
		Max: PointToScreen(maxX, minY, screenW, screenH),
	}
}
