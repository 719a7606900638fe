// Package draw provides rendering functions for the canvas.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	canvaslayout "github.com/elektrokombinacija/portfolio-canvas/internal/layout"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/interact"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

// Colors for tile categories and decorations
var (
	ColorPhotography    = color.NRGBA{R: 196, G: 170, B: 120, A: 255}
	ColorCinematography = color.NRGBA{R: 100, G: 140, B: 200, A: 255}
	ColorDirection      = color.NRGBA{R: 190, G: 100, B: 110, A: 255}
	ColorPlaceholder    = color.NRGBA{R: 70, G: 76, B: 84, A: 255}
	ColorActive         = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	ColorMarker         = color.NRGBA{R: 240, G: 240, B: 240, A: 200}
)

// hiddenAlpha is the opacity of tiles filtered out of the current selection.
const hiddenAlpha = 40

// TileStyle carries the per-frame decoration state.
type TileStyle struct {
	Active    int
	HasActive bool
	Hovered   int
	HasHover  bool
	Radius    float32 // Corner radius in world units

	// Playing reports whether a tile's media is playing. Nil means none is.
	Playing func(index int) bool
}

// CategoryColor returns the fill color for a tile category.
func CategoryColor(c core.Category) color.NRGBA {
	switch c {
	case core.Photography:
		return ColorPhotography
	case core.Cinematography:
		return ColorCinematography
	case core.Direction:
		return ColorDirection
	case core.Photo:
		return lighten(ColorPlaceholder, 0.15)
	case core.Video:
		return lighten(ColorPlaceholder, 0.3)
	default:
		return ColorPlaceholder
	}
}

// DrawTiles renders the tiles of grid that intersect the camera view and
// returns how many were drawn. views and grid.Rects are indexed alike.
func DrawTiles(gtx layout.Context, views []state.TileView, grid canvaslayout.Grid, cam interact.Camera, style TileStyle) int {
	drawn := 0
	for _, i := range grid.Visible(cam.ViewRect()) {
		if i >= len(views) {
			continue
		}
		drawTile(gtx, views[i], cam.ScreenRect(grid.Rects[i]), cam.Scale, tileState{
			active:  style.HasActive && style.Active == i,
			hovered: style.HasHover && style.Hovered == i,
			playing: style.Playing != nil && style.Playing(i),
			radius:  style.Radius,
		})
		drawn++
	}
	return drawn
}

type tileState struct {
	active  bool
	hovered bool
	playing bool
	radius  float32
}

// drawTile renders one tile at a screen rectangle.
func drawTile(gtx layout.Context, v state.TileView, r core.Rect, scale float64, st tileState) {
	rect := screenRect(r)
	if rect.Empty() {
		return
	}
	radius := int(float64(st.radius) * scale)

	col := CategoryColor(v.Category)
	if st.hovered && v.Visible {
		col = lighten(col, 0.2)
	}
	if !v.Visible {
		col.A = hiddenAlpha
	}
	paint.FillShape(gtx.Ops, col, clip.UniformRRect(rect, radius).Op(gtx.Ops))

	if st.playing && showsPlayMarker(v) {
		drawPlayMarker(gtx, r, ColorMarker)
	}

	if st.active {
		width := float32(math.Max(2, 3*scale))
		paint.FillShape(gtx.Ops, ColorActive, clip.Stroke{
			Path:  clip.UniformRRect(rect, radius).Path(gtx.Ops),
			Width: width,
		}.Op())
	}
}

func showsPlayMarker(v state.TileView) bool {
	return v.Visible && v.Media != nil && v.Media.Kind == core.MediaVideo
}

// drawPlayMarker draws a triangle in the middle of a video tile.
func drawPlayMarker(gtx layout.Context, r core.Rect, col color.NRGBA) {
	size := float32(math.Min(r.W, r.H) * 0.18)
	if size < 4 {
		return
	}
	c := r.Center()
	cx, cy := float32(c.X), float32(c.Y)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx-size*0.4, cy-size*0.5))
	path.LineTo(f32.Pt(cx+size*0.6, cy))
	path.LineTo(f32.Pt(cx-size*0.4, cy+size*0.5))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func screenRect(r core.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

func lighten(c color.NRGBA, f float64) color.NRGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*f)
	}
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
