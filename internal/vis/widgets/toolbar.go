package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/interact"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

// Toolbar provides the category filter and camera buttons.
type Toolbar struct {
	state *state.State
	ctrl  *interact.Controller

	allBtn     widget.Clickable
	filterBtns map[core.Category]*widget.Clickable
	zoomOutBtn widget.Clickable
}

// NewToolbar creates a new toolbar.
func NewToolbar(st *state.State, ctrl *interact.Controller) *Toolbar {
	return &Toolbar{
		state:      st,
		ctrl:       ctrl,
		filterBtns: make(map[core.Category]*widget.Clickable),
	}
}

// Bind switches the toolbar to a new controller.
func (t *Toolbar) Bind(ctrl *interact.Controller) { t.ctrl = ctrl }

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(44))

	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 36, G: 39, B: 44, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	gtx.Constraints.Max.Y = height
	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutFilters(gtx, th)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutCameraControls(gtx, th)
			}),
		)
	})
}

func (t *Toolbar) layoutFilters(gtx layout.Context, th *material.Theme) layout.Dimensions {
	cats := t.state.Categories()
	children := make([]layout.FlexChild, 0, 2*len(cats)+1)
	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return t.buttonBase(gtx, th, &t.allBtn, "All", len(t.state.Filter.Active()) == 0)
	}))
	for _, cat := range cats {
		btn := t.filterButton(cat)
		children = append(children,
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.buttonBase(gtx, th, btn, cat.String(), t.state.Filter.Selected(cat))
			}),
		)
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

func (t *Toolbar) layoutCameraControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 12, fmt.Sprintf("%d tiles", len(t.state.Tiles)))
			label.Color = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
			return label.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.layoutSeparator(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.zoomOutBtn, "Zoom out", false)
		}),
	)
}

func (t *Toolbar) filterButton(cat core.Category) *widget.Clickable {
	btn, ok := t.filterBtns[cat]
	if !ok {
		btn = new(widget.Clickable)
		t.filterBtns[cat] = btn
	}
	return btn
}

func (t *Toolbar) layoutSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

func (t *Toolbar) buttonBase(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.allBtn.Clicked(gtx) {
		t.state.Filter.Reset()
	}
	for cat, btn := range t.filterBtns {
		for btn.Clicked(gtx) {
			t.state.Filter.Toggle(cat)
		}
	}
	for t.zoomOutBtn.Clicked(gtx) {
		t.ctrl.ZoomOut()
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
