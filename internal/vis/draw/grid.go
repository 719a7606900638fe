package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/interact"
)

// minDotSpacing is the screen distance below which the dot grid is skipped.
const minDotSpacing = 8

// DrawDotGrid draws a background dot grid over the visible world area.
func DrawDotGrid(gtx layout.Context, cam interact.Camera, spacing float64, col color.NRGBA) {
	if spacing <= 0 || spacing*cam.Scale < minDotSpacing {
		return
	}
	view := cam.ViewRect()

	// Snap to grid
	startX := math.Floor(view.X/spacing) * spacing
	startY := math.Floor(view.Y/spacing) * spacing
	size := int(math.Max(1, math.Round(1.5*cam.Scale)))

	for y := startY; y <= view.Y+view.H; y += spacing {
		for x := startX; x <= view.X+view.W; x += spacing {
			p := cam.WorldToScreen(core.Vec{X: x, Y: y})
			px, py := int(p.X), int(p.Y)
			rect := image.Rect(px, py, px+size, py+size)
			paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
		}
	}
}
