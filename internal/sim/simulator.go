// Package sim replays scripted input against the canvas controller without a
// window.
//
// A scenario drives the same path as the desktop app:
// - layout pass over content or placeholders
// - pointer events through the gesture adapter
// - fixed-step controller ticks
// and produces a frame trace plus a summary.
package sim

import (
	"context"
	"fmt"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/content"
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/logutil"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/interact"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/observer"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

const (
	defaultFrame     = 16 * time.Millisecond
	defaultDragSteps = 10
	idleLimit        = 30 * time.Second
)

// Summary collects totals over a run.
type Summary struct {
	Frames           int              `yaml:"frames"`
	SimulatedTime    time.Duration    `yaml:"simulated_time"`
	Clicks           int              `yaml:"clicks"`
	Focuses          int              `yaml:"focuses"`
	StageChanges     int              `yaml:"stage_changes"`
	Pans             int              `yaml:"pans"`
	MinScale         float64          `yaml:"min_scale"`
	MaxScale         float64          `yaml:"max_scale"`
	BoundsViolations int              `yaml:"bounds_violations"`
	FinalStage       string           `yaml:"final_stage"`
	Events           []observer.Event `yaml:"events,omitempty"`
}

// Simulator runs one scenario.
type Simulator struct {
	sc      *Scenario
	profile config.Profile
	device  core.Device
	items   []core.Content
	step    time.Duration
	every   int

	ctrl    *interact.Controller
	state   *state.State
	gesture *interact.Gesture
	rec     *observer.Recorder

	clock   time.Duration
	current int
	trace   Trace
}

// NewSimulator prepares a run of sc over items with the given configuration.
func NewSimulator(cfg config.Config, sc *Scenario, items []core.Content) *Simulator {
	vp := sc.Viewport.Vec()
	device := core.DeviceFor(vp.X, cfg.MobileBreakpoint)
	if sc.Device != "" {
		device = core.Device{Mobile: sc.Device == "mobile"}
	}
	profile := cfg.For(device)

	s := &Simulator{
		sc:      sc,
		profile: profile,
		device:  device,
		items:   items,
		step:    sc.Frame,
		every:   sc.Every,
		ctrl:    interact.NewController(profile),
		state:   state.NewState(device),
		rec:     observer.NewRecorder(),
	}
	if s.step <= 0 {
		s.step = defaultFrame
	}
	if s.every <= 0 {
		s.every = 1
	}

	s.state.Rebuild(items, device, profile, vp.X)
	s.ctrl.Resize(vp)
	s.ctrl.SetContentSize(s.state.Grid.Size)
	s.ctrl.Subscribe(s.rec)
	s.gesture = interact.NewGesture(s.ctrl, interact.TileHit(s.ctrl, s.state))

	s.trace = Trace{
		Scenario: sc.Name,
		Device:   device.String(),
		Tiles:    len(s.state.Tiles),
		Summary:  Summary{MinScale: math.Inf(1), MaxScale: math.Inf(-1)},
	}
	return s
}

// Controller exposes the controller under test.
func (s *Simulator) Controller() *interact.Controller { return s.ctrl }

// Run executes every step, then lets animations finish.
func (s *Simulator) Run(ctx context.Context) (*Trace, error) {
	for i, st := range s.sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.current = i
		if err := s.apply(st); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
	}
	s.untilIdle()

	sum := &s.trace.Summary
	if sum.Frames%s.every != 0 {
		s.trace.Frames = append(s.trace.Frames, s.sample(s.ctrl.Transform()))
	}
	sum.SimulatedTime = s.clock
	sum.FinalStage = s.ctrl.Stage().String()
	sum.Pans = s.rec.Pans
	sum.Events = s.rec.Drain()
	for _, e := range sum.Events {
		switch e.Kind {
		case "focus":
			sum.Focuses++
		case "stage":
			sum.StageChanges++
		}
	}
	logutil.Infof("sim %q: %d frames, %d clicks, %d stage changes, %d bounds violations",
		s.sc.Name, sum.Frames, sum.Clicks, sum.StageChanges, sum.BoundsViolations)
	return &s.trace, nil
}

func (s *Simulator) apply(st Step) error {
	switch st.Action {
	case ActionLoaded:
		s.ctrl.LoadingComplete()
		s.frame()

	case ActionWait:
		if st.Duration <= 0 {
			s.untilIdle()
			return nil
		}
		for n := int(math.Ceil(float64(st.Duration) / float64(s.step))); n > 0; n-- {
			s.frame()
		}

	case ActionDrag:
		s.drag(st)

	case ActionWheel:
		s.gesture.Handle(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(float32(st.DX), float32(st.DY))})
		s.frame()

	case ActionZoom:
		s.gesture.Handle(pointer.Event{
			Kind:      pointer.Scroll,
			Scroll:    f32.Pt(0, float32(st.Delta)),
			Modifiers: key.ModShortcut,
		})
		s.frame()

	case ActionClick:
		p, err := s.clickPoint(st)
		if err != nil {
			return err
		}
		s.gesture.Handle(mouse(pointer.Press, p))
		s.gesture.Handle(mouse(pointer.Release, p))
		s.trace.Summary.Clicks++
		s.frame()

	case ActionZoomOut:
		s.ctrl.ZoomOut()
		s.frame()

	case ActionResize:
		s.resize(core.Vec{X: st.W, Y: st.H})
		s.frame()

	case ActionFilter:
		cats := make([]core.Category, 0, len(st.Categories))
		for _, name := range st.Categories {
			cats = append(cats, core.ParseCategory(name))
		}
		s.state.Filter.Set(cats...)
		s.frame()
	}
	return nil
}

func (s *Simulator) drag(st Step) {
	start := core.Vec{X: st.X, Y: st.Y}
	if start == (core.Vec{}) {
		start = s.ctrl.Viewport().Scale(0.5)
	}
	n := st.Frames
	if n <= 0 {
		n = defaultDragSteps
	}

	s.gesture.Handle(mouse(pointer.Press, start))
	var p core.Vec
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		p = start.Add(core.Vec{X: st.DX * f, Y: st.DY * f})
		s.gesture.Handle(mouse(pointer.Drag, p))
		s.frame()
	}
	s.gesture.Handle(mouse(pointer.Release, p))
	s.frame()
}

func (s *Simulator) clickPoint(st Step) (core.Vec, error) {
	if st.Tile == nil || *st.Tile < 0 {
		return core.Vec{X: st.X, Y: st.Y}, nil
	}
	r, ok := s.state.Rect(*st.Tile)
	if !ok {
		return core.Vec{}, fmt.Errorf("tile %d out of range (%d tiles)", *st.Tile, len(s.state.Tiles))
	}
	return s.ctrl.Camera().ScreenRect(r).Center(), nil
}

func (s *Simulator) resize(vp core.Vec) {
	s.state.Rebuild(s.items, s.device, s.profile, vp.X)
	s.ctrl.Resize(vp)
	s.ctrl.SetContentSize(s.state.Grid.Size)
}

func (s *Simulator) untilIdle() {
	for limit := int(idleLimit / s.step); limit > 0; limit-- {
		if !s.frame() {
			return
		}
	}
	logutil.Warnf("sim %q: still animating after %v", s.sc.Name, idleLimit)
}

// frame advances one fixed step and samples the result.
func (s *Simulator) frame() bool {
	moving := s.ctrl.Tick(s.step)
	s.clock += s.step

	sum := &s.trace.Summary
	sum.Frames++

	tr := s.ctrl.Transform()
	if !s.ctrl.ComputePanBounds(tr.Scale).Contains(core.Vec{X: tr.X, Y: tr.Y}) {
		sum.BoundsViolations++
	}
	sum.MinScale = math.Min(sum.MinScale, tr.Scale)
	sum.MaxScale = math.Max(sum.MaxScale, tr.Scale)

	if sum.Frames%s.every == 0 {
		s.trace.Frames = append(s.trace.Frames, s.sample(tr))
	}
	return moving
}

func (s *Simulator) sample(tr core.Transform) Frame {
	active := -1
	if i, ok := s.ctrl.ActiveIndex(); ok {
		active = i
	}
	return Frame{
		T:        s.clock,
		Step:     s.current,
		X:        tr.X,
		Y:        tr.Y,
		Scale:    tr.Scale,
		Stage:    s.ctrl.Stage().String(),
		Active:   active,
		Panning:  s.ctrl.IsPanning(),
		Dragging: s.ctrl.IsDragging(),
		Intro:    s.ctrl.IsIntroAnimating(),
		Centring: s.ctrl.IsTileAnimating(),
	}
}

func mouse(kind pointer.Kind, p core.Vec) pointer.Event {
	return pointer.Event{
		Kind:     kind,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(float32(p.X), float32(p.Y)),
	}
}

// RunScenario loads the scenario's content, if any, and runs it.
func RunScenario(ctx context.Context, cfg config.Config, sc *Scenario) (*Trace, error) {
	var items []core.Content
	if sc.Content != "" {
		items = content.NewFileStore(sc.Content).Projects(ctx)
	}
	return NewSimulator(cfg, sc, items).Run(ctx)
}
