// Package widgets provides Gio UI widgets for the canvas.
package widgets

import (
	"image"
	"image/color"
	"math"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/draw"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/interact"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

const (
	dotSpacing = 40
	tileRadius = 6
)

// Canvas is the pannable, zoomable tile area.
type Canvas struct {
	state   *state.State
	ctrl    *interact.Controller
	gesture *interact.Gesture
	size    image.Point

	// OnResize is called from Layout when the canvas size changes.
	OnResize func(viewport core.Vec)

	// Drawn is the number of tiles drawn in the last frame.
	Drawn int
}

// NewCanvas creates a canvas widget over st driven by ctrl.
func NewCanvas(st *state.State, ctrl *interact.Controller) *Canvas {
	c := &Canvas{state: st}
	c.Bind(ctrl)
	return c
}

// Bind switches the canvas to a new controller.
func (c *Canvas) Bind(ctrl *interact.Controller) {
	c.ctrl = ctrl
	c.gesture = interact.NewGesture(ctrl, interact.TileHit(ctrl, c.state))
}

// Size returns the size of the last layout.
func (c *Canvas) Size() image.Point { return c.size }

// Layout renders the canvas.
func (c *Canvas) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	if bounds != c.size {
		c.size = bounds
		if c.OnResize != nil {
			c.OnResize(core.Vec{X: float64(bounds.X), Y: float64(bounds.Y)})
		}
	}

	paint.Fill(gtx.Ops, color.NRGBA{R: 22, G: 24, B: 28, A: 255})

	c.handlePointerEvents(gtx)

	cam := c.ctrl.Camera()
	draw.DrawDotGrid(gtx, cam, dotSpacing, color.NRGBA{R: 48, G: 52, B: 58, A: 255})

	style := draw.TileStyle{Radius: tileRadius}
	style.Active, style.HasActive = c.ctrl.ActiveIndex()
	style.Hovered, style.HasHover = c.ctrl.Hovered()
	style.Playing = c.ctrl.ShouldPlay
	c.Drawn = draw.DrawTiles(gtx, c.state.Views(), c.state.Grid, cam, style)

	return layout.Dimensions{Size: bounds}
}

func (c *Canvas) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	area.Pop()

	unbounded := pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  c,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll | pointer.Move | pointer.Leave,
			ScrollX: unbounded,
			ScrollY: unbounded,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			c.gesture.Handle(pe)
		}
	}
}
