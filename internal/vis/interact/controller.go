package interact

import (
	"math"
	"time"

	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/logutil"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/observer"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/tween"
)

// dragZoomDuration is the length of the drag feedback zoom.
const dragZoomDuration = 200 * time.Millisecond

// Controller owns the camera state of the canvas: the world offset, the
// scale, the zoom stage machine and the active tile. All methods are
// synchronous and must be called from the UI goroutine.
//
// The offset and scale are animated channels. Their targets are the
// authoritative state; Transform returns the displayed values for the frame.
type Controller struct {
	profile config.Profile

	viewport core.Vec
	content  core.Vec

	x, y  *tween.Channel
	scale *tween.Channel

	stages *state.ZoomStages
	active *state.ActiveTile
	obs    observer.Registry

	clock   time.Duration
	lastPan time.Duration
	panning bool

	dragging     bool
	dragZoomed   bool
	preDragScale float64

	introStarted   bool
	introAnimating bool
	tileAnimating  bool
	focusGen       int // Invalidates stale centring completions

	hovered  int
	hovering bool
}

// NewController creates a controller at the intro scale with input locked
// until LoadingComplete.
func NewController(p config.Profile) *Controller {
	return &Controller{
		profile:        p,
		x:              tween.NewChannel(0, p.PanSmoothing),
		y:              tween.NewChannel(0, p.PanSmoothing),
		scale:          tween.NewChannel(p.ZoomIntro, 0),
		stages:         state.NewZoomStages(p.FirstZoomOutThreshold, p.SecondZoomOutThreshold),
		active:         state.NewActiveTile(p.ActiveClearThreshold),
		introAnimating: true,
	}
}

// Profile returns the device constants in use.
func (c *Controller) Profile() config.Profile { return c.profile }

// Subscribe registers an observer and returns its unsubscribe function.
func (c *Controller) Subscribe(o observer.Observer) func() {
	return c.obs.Subscribe(o)
}

// ComputePanBounds returns the pan bounds for the current grid and viewport
// at the given scale.
func (c *Controller) ComputePanBounds(scale float64) PanBounds {
	return ComputePanBounds(c.content, c.viewport, scale, c.profile.EdgePadding)
}

// Bounds returns the pan bounds at the target scale.
func (c *Controller) Bounds() PanBounds {
	return c.ComputePanBounds(c.scale.Target())
}

// Resize sets the viewport size and re-clamps the target.
func (c *Controller) Resize(viewport core.Vec) {
	if viewport == c.viewport {
		return
	}
	c.viewport = viewport
	c.refit()
}

// SetContentSize sets the measured grid extent and re-clamps the target.
func (c *Controller) SetContentSize(size core.Vec) {
	if size == c.content {
		return
	}
	c.content = size
	c.refit()
}

func (c *Controller) refit() {
	if c.introAnimating {
		c.recenter()
		return
	}
	c.clampTarget()
}

// recenter jumps to the resting offset.
func (c *Controller) recenter() {
	mid := c.Bounds().Center()
	c.x.Set(mid.X)
	c.y.Set(mid.Y)
}

// clampTarget pulls the offset target into the bounds at the target scale.
func (c *Controller) clampTarget() {
	t := c.Bounds().Clamp(c.Target())
	if t.X != c.x.Target() || c.x.Timed() {
		c.x.Follow(t.X)
	}
	if t.Y != c.y.Target() || c.y.Timed() {
		c.y.Follow(t.Y)
	}
}

// InputLocked reports whether gesture input is currently ignored.
func (c *Controller) InputLocked() bool {
	return c.introAnimating || c.tileAnimating
}

// ApplyPanDelta moves the content by a screen-space delta. The offset target
// is clamped into the bounds at the target scale and smoothed toward. The
// distance always feeds the active tile, and feeds the zoom stage machine
// while zoomed in.
func (c *Controller) ApplyPanDelta(dx, dy float64, src core.InputSource) {
	if c.InputLocked() || (dx == 0 && dy == 0) || math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}

	s := c.scale.Target()
	if !(s > 0) {
		s = 1
	}
	t := c.Target().Add(core.Vec{X: dx / s, Y: dy / s})
	t = c.Bounds().Clamp(t)
	c.x.Follow(t.X)
	c.y.Follow(t.Y)

	c.markPanning()
	c.obs.Pan(core.Vec{X: dx, Y: dy}, src)

	c.accumulate(math.Hypot(dx, dy), c.scale.Target() > c.profile.ZoomDefault)
}

// accumulate feeds pan distance to the active tile and, while zoomed in, to
// the zoom stage machine.
func (c *Controller) accumulate(d float64, zoomed bool) {
	if i, ok := c.active.Index(); ok && c.active.Accumulate(d) {
		c.obs.ActiveChanged(i, false)
	}
	if !zoomed {
		return
	}

	switch c.stages.Accumulate(d) {
	case state.ToIntermediate:
		logutil.Debugf("zoom stage: focused -> intermediate")
		c.obs.StageChanged(state.StageFocused, state.StageIntermediate)
		c.releaseActive()
		c.animateScale(c.profile.IntermediateZoom, c.profile.ZoomOutDuration)
		c.clampTarget()
	case state.ToNone:
		logutil.Debugf("zoom stage: intermediate -> none")
		c.zoomOut(state.StageIntermediate)
	}
}

func (c *Controller) markPanning() {
	c.panning = true
	c.lastPan = c.clock
	c.hovering = false
}

// animateScale tweens the scale to target and notifies observers.
func (c *Controller) animateScale(target float64, d time.Duration) {
	c.dragZoomed = false
	if target == c.scale.Target() {
		return
	}
	c.scale.AnimateTo(target, d, tween.EaseInOutCubic, nil)
	c.obs.ScaleChanged(target)
}

func (c *Controller) releaseActive() {
	if i, ok := c.active.Index(); ok {
		c.active.Clear()
		c.obs.ActiveChanged(i, false)
	}
}

// CenterOn animates the camera so screenPoint ends up at the viewport centre
// at ZoomMax. The delta is taken at the displayed scale and added to the
// displayed offset; the result is clamped at the bounds for ZoomMax, where
// the camera will end up. Returns the new offset target.
func (c *Controller) CenterOn(screenPoint core.Vec) core.Vec {
	if c.introAnimating {
		return c.Target()
	}
	return c.centerOn(screenPoint)
}

func (c *Controller) centerOn(p core.Vec) core.Vec {
	tr := c.Transform()
	cur := core.Vec{X: tr.X, Y: tr.Y}
	target := cur.Add(CenterDelta(c.viewport, p, tr.Scale))
	target = c.ComputePanBounds(c.profile.ZoomMax).Clamp(target)

	d := c.profile.CenterDuration
	c.x.AnimateTo(target.X, d, tween.EaseOutCubic, nil)
	c.y.AnimateTo(target.Y, d, tween.EaseOutCubic, nil)

	c.focusGen++
	gen := c.focusGen
	c.tileAnimating = true
	c.dragZoomed = false
	prevScale := c.scale.Target()
	c.scale.AnimateTo(c.profile.ZoomMax, d, tween.EaseOutCubic, func() {
		if gen == c.focusGen {
			c.tileAnimating = false
		}
	})
	if prevScale != c.profile.ZoomMax {
		c.obs.ScaleChanged(c.profile.ZoomMax)
	}

	from := c.stages.Stage()
	c.stages.Focus()
	if from != state.StageFocused {
		c.obs.StageChanged(from, state.StageFocused)
	}
	return target
}

// ZoomOut animates back to the default scale, resets the zoom stage and
// releases the active tile. It is a no-op at the default scale with no stage
// in progress.
func (c *Controller) ZoomOut() {
	if c.introAnimating {
		return
	}
	c.zoomOut(c.stages.Stage())
}

func (c *Controller) zoomOut(from state.ZoomStage) {
	_, hasActive := c.active.Index()
	if from == state.StageNone && !hasActive && !c.tileAnimating &&
		c.scale.Target() == c.profile.ZoomDefault {
		return
	}

	c.stages.Reset()
	if from != state.StageNone {
		c.obs.StageChanged(from, state.StageNone)
	}
	c.releaseActive()

	c.focusGen++
	c.tileAnimating = false
	c.animateScale(c.profile.ZoomDefault, c.profile.ZoomOutDuration)
	c.clampTarget()
}

// ApplyWheelZoom changes the scale immediately by a scroll delta, clamped to
// [ZoomMin, ZoomMax]. Positive deltas zoom out. Reaching the default scale or
// below resets the zoom stage and releases the active tile. It reports whether
// the scale changed; an unchanged scale fires no event.
func (c *Controller) ApplyWheelZoom(scrollDelta float64) bool {
	if c.InputLocked() || scrollDelta == 0 || math.IsNaN(scrollDelta) {
		return false
	}
	cur := c.scale.Target()
	next := clamp(cur-scrollDelta*c.profile.WheelZoomSensitivity, c.profile.ZoomMin, c.profile.ZoomMax)
	if next == cur {
		return false
	}

	c.scale.Set(next)
	c.dragZoomed = false
	c.markPanning()
	c.obs.ScaleChanged(next)

	// Zooming back to the default by hand ends the focus.
	if from := c.stages.Stage(); next <= c.profile.ZoomDefault && from != state.StageNone {
		c.stages.Reset()
		c.obs.StageChanged(from, state.StageNone)
		c.releaseActive()
	}
	c.clampTarget()
	return true
}

// LoadingComplete starts the intro zoom. When it finishes, bounds are
// recomputed, the camera is recentred, and only then is input enabled.
func (c *Controller) LoadingComplete() {
	if !c.introAnimating || c.introStarted {
		return
	}
	c.introStarted = true
	logutil.Debugf("intro: %.2f -> %.2f over %v", c.scale.Value(), c.profile.ZoomDefault, c.profile.IntroDuration)
	c.scale.AnimateTo(c.profile.ZoomDefault, c.profile.IntroDuration, tween.EaseInOutCubic, c.finishIntro)
}

func (c *Controller) finishIntro() {
	c.recenter()
	c.introAnimating = false
	logutil.Debugf("intro complete, bounds %+v", c.Bounds())
	c.obs.IntroComplete()
}

// DragStart begins a drag. At or below the default scale the view shrinks
// slightly as feedback until DragEnd.
func (c *Controller) DragStart() {
	if c.InputLocked() || c.dragging {
		return
	}
	c.dragging = true
	c.hovering = false

	s := c.scale.Target()
	next := math.Max(s*c.profile.DragZoomFactor, c.profile.ZoomMin)
	if s <= c.profile.ZoomDefault && next < s && !c.scale.Timed() {
		c.preDragScale = s
		c.dragZoomed = true
		c.scale.AnimateTo(next, dragZoomDuration, tween.EaseOutCubic, nil)
		c.clampTarget()
	}
}

// DragEnd ends a drag and restores the scale from before it.
func (c *Controller) DragEnd() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.dragZoomed {
		c.dragZoomed = false
		c.scale.AnimateTo(c.preDragScale, dragZoomDuration, tween.EaseOutCubic, nil)
	}
}

// OnTileClick handles a click on tile index whose screen rectangle is rect.
// Clicking the active tile while zoomed in zooms out; any other click latches
// the tile and centres on it. Clicks during the intro are dropped.
func (c *Controller) OnTileClick(index int, rect core.Rect) {
	if c.introAnimating {
		logutil.Debugf("tile %d click dropped during intro", index)
		return
	}
	if c.active.Is(index) && c.scale.Target() > c.profile.ZoomDefault {
		c.ZoomOut()
		return
	}

	if prev, ok := c.active.Index(); ok && prev != index {
		c.obs.ActiveChanged(prev, false)
	}
	c.active.Set(index)
	c.obs.ActiveChanged(index, true)

	c.centerOn(rect.Center())
	c.obs.Focus(index)
}

// OnTileEnter records a hover. Hover is suppressed while panning or dragging.
func (c *Controller) OnTileEnter(index int) {
	if c.panning || c.dragging {
		return
	}
	c.hovered, c.hovering = index, true
}

// OnTileLeave clears the hover if index is the hovered tile.
func (c *Controller) OnTileLeave(index int) {
	if c.hovering && c.hovered == index {
		c.hovering = false
	}
}

// Hovered returns the hovered tile, if any.
func (c *Controller) Hovered() (int, bool) {
	if c.panning || c.dragging || !c.hovering {
		return -1, false
	}
	return c.hovered, true
}

// ShouldPlay reports whether the media of tile index should be playing. The
// active tile keeps playing while the camera moves; a hovered tile plays only
// while the camera is still.
func (c *Controller) ShouldPlay(index int) bool {
	if c.active.Is(index) {
		return true
	}
	h, ok := c.Hovered()
	return ok && h == index
}

// Tick advances controller time by dt and steps the animations. It reports
// whether another frame is needed.
func (c *Controller) Tick(dt time.Duration) bool {
	if dt < 0 {
		dt = 0
	}
	c.clock += dt

	moving := c.x.Step(dt)
	moving = c.y.Step(dt) || moving
	moving = c.scale.Step(dt) || moving

	if c.panning && c.clock-c.lastPan >= c.profile.PanIdle {
		c.panning = false
	}
	return moving || c.panning
}

// Transform returns the frame transform: the displayed scale and the
// displayed offset clamped into the bounds at that scale.
func (c *Controller) Transform() core.Transform {
	s := c.scale.Value()
	off := c.ComputePanBounds(s).Clamp(core.Vec{X: c.x.Value(), Y: c.y.Value()})
	return core.Transform{X: off.X, Y: off.Y, Scale: s}
}

// Camera returns the frame camera.
func (c *Controller) Camera() Camera {
	return CameraFor(c.viewport, c.Transform())
}

// Target returns the offset the camera is heading to.
func (c *Controller) Target() core.Vec {
	return core.Vec{X: c.x.Target(), Y: c.y.Target()}
}

// Viewport returns the viewport size.
func (c *Controller) Viewport() core.Vec { return c.viewport }

// Scale returns the displayed scale.
func (c *Controller) Scale() float64 { return c.scale.Value() }

// TargetScale returns the scale the camera is heading to.
func (c *Controller) TargetScale() float64 { return c.scale.Target() }

// Stage returns the zoom stage.
func (c *Controller) Stage() state.ZoomStage { return c.stages.Stage() }

// StageProgress returns how far the pan distance has advanced towards the
// next automatic zoom-out.
func (c *Controller) StageProgress() float64 { return c.stages.Progress() }

// ActiveIndex returns the active tile, if any.
func (c *Controller) ActiveIndex() (int, bool) { return c.active.Index() }

func (c *Controller) IsPanning() bool        { return c.panning }
func (c *Controller) IsDragging() bool       { return c.dragging }
func (c *Controller) IsIntroAnimating() bool { return c.introAnimating }
func (c *Controller) IsTileAnimating() bool  { return c.tileAnimating }
