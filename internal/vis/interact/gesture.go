package interact

import (
	"math"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

// HitFunc returns the tile under a screen point and its screen rectangle.
type HitFunc func(screen core.Vec) (index int, rect core.Rect, ok bool)

// Gesture turns raw pointer events into controller calls. A press becomes a
// drag once it moves DragThreshold pixels; a release that never moved that
// far is a click. A press that moves while input is locked pans nothing but
// still does not click. Scrolling pans, or zooms with the shortcut modifier held.
type Gesture struct {
	ctrl *Controller
	hit  HitFunc

	DragThreshold float64

	pressed  bool
	moved    bool
	dragging bool
	source   core.InputSource
	pressPos f32.Point
	last     f32.Point

	hover    int
	hovering bool
}

// NewGesture creates a gesture adapter for ctrl. hit may be nil, in which
// case clicks and hover are ignored.
func NewGesture(ctrl *Controller, hit HitFunc) *Gesture {
	return &Gesture{
		ctrl:          ctrl,
		hit:           hit,
		DragThreshold: ctrl.Profile().DragThreshold,
	}
}

// Dragging reports whether a recognised drag is in progress.
func (g *Gesture) Dragging() bool { return g.dragging }

// Handle processes one pointer event.
func (g *Gesture) Handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		g.press(ev)
	case pointer.Drag:
		g.drag(ev)
	case pointer.Release:
		g.release(ev)
	case pointer.Cancel:
		g.cancel()
	case pointer.Scroll:
		g.scroll(ev)
	case pointer.Move:
		g.move(ev)
	case pointer.Leave:
		g.setHover(-1, false)
	}
}

func (g *Gesture) press(ev pointer.Event) {
	touch := ev.Source == pointer.Touch
	if !touch && !ev.Buttons.Contain(pointer.ButtonPrimary) {
		return
	}
	g.pressed = true
	g.moved = false
	g.dragging = false
	g.pressPos = ev.Position
	g.last = ev.Position
	g.source = core.SourceDrag
	if touch {
		g.source = core.SourceTouch
	}
}

func (g *Gesture) drag(ev pointer.Event) {
	if !g.pressed {
		return
	}
	if !g.moved {
		moved := ev.Position.Sub(g.pressPos)
		if math.Hypot(float64(moved.X), float64(moved.Y)) < g.DragThreshold {
			return
		}
		g.moved = true
		g.setHover(-1, false)
	}
	if g.ctrl.InputLocked() {
		// Keep tracking so the drag does not jump when input unlocks.
		g.last = ev.Position
		return
	}

	if !g.dragging {
		g.dragging = true
		g.ctrl.DragStart()
	}

	d := ev.Position.Sub(g.last)
	g.last = ev.Position
	g.ctrl.ApplyPanDelta(float64(d.X), float64(d.Y), g.source)
}

func (g *Gesture) release(ev pointer.Event) {
	if !g.pressed {
		return
	}
	wasDrag, wasMoved := g.dragging, g.moved
	g.pressed = false
	g.moved = false
	g.dragging = false

	if wasDrag {
		g.ctrl.DragEnd()
	}
	if wasMoved || g.hit == nil || g.ctrl.IsIntroAnimating() {
		return
	}
	if i, rect, ok := g.hit(toVec(ev.Position)); ok {
		g.ctrl.OnTileClick(i, rect)
	}
}

func (g *Gesture) cancel() {
	if g.dragging {
		g.ctrl.DragEnd()
	}
	g.pressed = false
	g.moved = false
	g.dragging = false
}

func (g *Gesture) scroll(ev pointer.Event) {
	if g.ctrl.InputLocked() {
		return
	}
	if ev.Modifiers.Contain(key.ModShortcut) {
		g.ctrl.ApplyWheelZoom(float64(ev.Scroll.Y))
		return
	}
	g.ctrl.ApplyPanDelta(-float64(ev.Scroll.X), -float64(ev.Scroll.Y), core.SourceWheel)
}

func (g *Gesture) move(ev pointer.Event) {
	if g.hit == nil || g.pressed {
		return
	}
	i, _, ok := g.hit(toVec(ev.Position))
	g.setHover(i, ok)
}

func (g *Gesture) setHover(i int, ok bool) {
	if g.hovering && (!ok || i != g.hover) {
		g.ctrl.OnTileLeave(g.hover)
		g.hovering = false
	}
	if ok && !g.hovering {
		g.hover, g.hovering = i, true
		g.ctrl.OnTileEnter(i)
	}
}

func toVec(p f32.Point) core.Vec {
	return core.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// TileHit hit-tests visible tiles of s through the controller's frame camera.
func TileHit(c *Controller, s *state.State) HitFunc {
	return func(p core.Vec) (int, core.Rect, bool) {
		cam := c.Camera()
		i, ok := s.HitTest(cam.ScreenToWorld(p))
		if !ok {
			return -1, core.Rect{}, false
		}
		r, _ := s.Rect(i)
		return i, cam.ScreenRect(r), true
	}
}
