package layout

import (
	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// Metrics sizes the grid in world units.
type Metrics struct {
	TileHeight float64
	Gap        float64
	Columns    int
}

// MetricsFor derives grid metrics from a profile and the viewport width.
// The gap is expressed in viewport-width percent, so it follows resizes.
func MetricsFor(p config.Profile, viewportWidth float64) Metrics {
	gap := 0.0
	if viewportWidth > 0 {
		gap = p.GapVw / 100 * viewportWidth
	}
	return Metrics{
		TileHeight: p.TileHeight,
		Gap:        gap,
		Columns:    p.Columns,
	}
}

// Grid is the placed tile layout: one world rectangle per tile index and the
// total content extent.
type Grid struct {
	Rects []core.Rect
	Size  core.Vec
}

// Place assigns world rectangles row by row. Rows are centred in the widest
// row and odd rows are staggered by a quarter tile.
func Place(tiles []core.TileDescriptor, m Metrics) Grid {
	if len(tiles) == 0 || m.TileHeight <= 0 {
		return Grid{Rects: make([]core.Rect, len(tiles))}
	}
	cols := m.Columns
	if cols <= 0 {
		cols = len(tiles)
	}
	rows := (len(tiles) + cols - 1) / cols

	// Row widths first, to find the content width.
	widths := make([]float64, rows)
	for i, t := range tiles {
		r := i / cols
		if i%cols > 0 {
			widths[r] += m.Gap
		}
		widths[r] += m.TileHeight * t.WidthFactor
	}
	contentW := 0.0
	for _, w := range widths {
		if w > contentW {
			contentW = w
		}
	}

	rects := make([]core.Rect, len(tiles))
	x := 0.0
	for i, t := range tiles {
		r := i / cols
		if i%cols == 0 {
			x = rowStart(widths[r], contentW, r, m.TileHeight)
		}
		w := m.TileHeight * t.WidthFactor
		rects[i] = core.Rect{
			X: x,
			Y: float64(r) * (m.TileHeight + m.Gap),
			W: w,
			H: m.TileHeight,
		}
		x += w + m.Gap
	}

	contentH := float64(rows)*m.TileHeight + float64(rows-1)*m.Gap
	return Grid{Rects: rects, Size: core.Vec{X: contentW, Y: contentH}}
}

func rowStart(rowW, contentW float64, row int, tileH float64) float64 {
	x := (contentW - rowW) / 2
	if row%2 == 1 {
		x += tileH / 4
	}
	if x > contentW-rowW {
		x = contentW - rowW
	}
	if x < 0 {
		x = 0
	}
	return x
}

// HitTest returns the tile index under a world-space point.
func (g Grid) HitTest(p core.Vec) (int, bool) {
	for i, r := range g.Rects {
		if r.W > 0 && r.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Visible returns the indices of tiles intersecting a world-space rectangle.
func (g Grid) Visible(view core.Rect) []int {
	var out []int
	for i, r := range g.Rects {
		if r.Intersects(view) {
			out = append(out, i)
		}
	}
	return out
}
