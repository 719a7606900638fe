package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/interact"
)

const statusMargin = 20

// StatusBar shows the zoom level as a draggable track, the zoom stage and the
// pan distance left before the next automatic zoom-out.
type StatusBar struct {
	ctrl     *interact.Controller
	dragging bool
}

// NewStatusBar creates a status bar for ctrl.
func NewStatusBar(ctrl *interact.Controller) *StatusBar {
	return &StatusBar{ctrl: ctrl}
}

// Bind switches the status bar to a new controller.
func (s *StatusBar) Bind(ctrl *interact.Controller) { s.ctrl = ctrl }

// Layout renders the status bar.
func (s *StatusBar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(48))
	width := gtx.Constraints.Max.X

	rect := image.Rect(0, 0, width, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 32, G: 35, B: 39, A: 255}, clip.Rect(rect).Op())

	trackWidth := width - 2*statusMargin
	s.handlePointerEvents(gtx, height, trackWidth)

	trackY := height * 2 / 3
	trackHeight := 4

	trackRect := image.Rect(statusMargin, trackY-trackHeight/2, statusMargin+trackWidth, trackY+trackHeight/2)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(trackRect).Op())

	// Stage progress under the track
	if p := s.ctrl.StageProgress(); p > 0 {
		progRect := image.Rect(statusMargin, trackY+trackHeight/2+2, statusMargin+int(float64(trackWidth)*p), trackY+trackHeight/2+4)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 200, B: 80, A: 200}, clip.Rect(progRect).Op())
	}

	// Zoom fill and handle
	fillWidth := int(float64(trackWidth) * zoomFraction(s.ctrl))
	if fillWidth > 0 {
		fillRect := image.Rect(statusMargin, trackY-trackHeight/2, statusMargin+fillWidth, trackY+trackHeight/2)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 100, G: 180, B: 255, A: 255}, clip.Rect(fillRect).Op())
	}
	handleX := statusMargin + fillWidth
	handleSize := 10
	handleRect := image.Rect(handleX-handleSize/2, trackY-handleSize/2, handleX+handleSize/2, trackY+handleSize/2)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, clip.Rect(handleRect).Op())

	s.drawLabels(gtx, th)

	return layout.Dimensions{Size: image.Point{X: width, Y: height}}
}

func (s *StatusBar) drawLabels(gtx layout.Context, th *material.Theme) {
	scaleLabel := material.Label(th, 12, fmt.Sprintf("%.2fx", s.ctrl.Scale()))
	scaleLabel.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	stageLabel := material.Label(th, 12, statusText(s.ctrl))
	stageLabel.Color = color.NRGBA{R: 150, G: 180, B: 200, A: 255}

	layout.Inset{Top: unit.Dp(4), Left: unit.Dp(statusMargin), Right: unit.Dp(statusMargin)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(scaleLabel.Layout),
			layout.Rigid(stageLabel.Layout),
		)
	})
}

func (s *StatusBar) handlePointerEvents(gtx layout.Context, height, trackWidth int) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, height)).Push(gtx.Ops)
	event.Op(gtx.Ops, s)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			s.dragging = true
			s.seekToPosition(pe.Position.X, trackWidth)
		case pointer.Drag:
			if s.dragging {
				s.seekToPosition(pe.Position.X, trackWidth)
			}
		case pointer.Release, pointer.Cancel:
			s.dragging = false
		}
	}
}

func (s *StatusBar) seekToPosition(screenX float32, trackWidth int) {
	if trackWidth <= 0 {
		return
	}
	f := (float64(screenX) - statusMargin) / float64(trackWidth)
	zoomToFraction(s.ctrl, f)
}

// zoomFraction returns the displayed scale as a fraction of the zoom range.
func zoomFraction(c *interact.Controller) float64 {
	p := c.Profile()
	span := p.ZoomMax - p.ZoomMin
	if span <= 0 {
		return 0
	}
	return clamp01((c.Scale() - p.ZoomMin) / span)
}

// zoomToFraction sets the scale to a fraction of the zoom range through the
// wheel zoom path, so the same clamping and events apply.
func zoomToFraction(c *interact.Controller, f float64) bool {
	p := c.Profile()
	if p.WheelZoomSensitivity <= 0 {
		return false
	}
	want := p.ZoomMin + clamp01(f)*(p.ZoomMax-p.ZoomMin)
	return c.ApplyWheelZoom((c.TargetScale() - want) / p.WheelZoomSensitivity)
}

func statusText(c *interact.Controller) string {
	switch {
	case c.IsIntroAnimating():
		return "loading"
	case c.IsTileAnimating():
		return "centring"
	}
	text := c.Stage().String()
	if i, ok := c.ActiveIndex(); ok {
		text += fmt.Sprintf(" | tile %d", i)
	}
	if c.IsPanning() {
		text += " | panning"
	}
	return text
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
