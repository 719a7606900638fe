// Package vis implements the Gio desktop front end of the portfolio canvas.
package vis

import (
	"context"
	"image/color"
	"sync/atomic"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/content"
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/logutil"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/interact"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/observer"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/widgets"
)

// maxFrameStep caps the tick after a stall so animations do not jump.
const maxFrameStep = 100 * time.Millisecond

// App is the main canvas application.
type App struct {
	cfg   config.Config
	store content.Store
	theme *material.Theme

	state     *state.State
	ctrl      *interact.Controller
	canvas    *widgets.Canvas
	toolbar   *widgets.Toolbar
	statusbar *widgets.StatusBar

	unsubscribe func()
	pending     atomic.Pointer[content.Result]
	items       []core.Content
	loaded      bool
	viewport    core.Vec
	lastFrame   time.Time
}

// NewApp creates a canvas application that shows placeholders until store
// delivers content.
func NewApp(cfg config.Config, store content.Store) *App {
	device := core.Device{}
	st := state.NewState(device)
	ctrl := interact.NewController(cfg.For(device))

	a := &App{
		cfg:       cfg,
		store:     store,
		theme:     material.NewTheme(),
		state:     st,
		canvas:    widgets.NewCanvas(st, ctrl),
		toolbar:   widgets.NewToolbar(st, ctrl),
		statusbar: widgets.NewStatusBar(ctrl),
	}
	a.bind(ctrl)
	a.canvas.OnResize = a.relayout
	return a
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := content.Load(ctx, a.store)
	go func() {
		if r, ok := <-results; ok {
			a.pending.Store(&r)
			w.Invalidate()
		}
	}()

	var ops op.Ops

	// Event filters for keyboard input
	tag := new(int)
	focused := false

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			if r := a.pending.Swap(nil); r != nil {
				a.applyContent(*r)
			}
			moving := a.ctrl.Tick(a.frameStep(gtx.Now))

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			event.Op(gtx.Ops, tag)
			if !focused {
				gtx.Execute(key.FocusCmd{Tag: tag})
				focused = true
			}

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if moving || a.ctrl.IsPanning() {
				w.Invalidate()
			}
		}
	}
}

// frameStep returns the time since the previous frame.
func (a *App) frameStep(now time.Time) time.Duration {
	if a.lastFrame.IsZero() {
		a.lastFrame = now
		return 0
	}
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	return dt
}

func (a *App) applyContent(r content.Result) {
	logutil.Infof("content loaded: %d projects in %v", len(r.Items), r.Elapsed)
	a.items = r.Items
	a.loaded = true
	a.relayout(a.viewport)
	a.ctrl.LoadingComplete()
}

// relayout rebuilds the tiles for a viewport. Crossing the mobile breakpoint
// swaps in a controller with the other device profile.
func (a *App) relayout(vp core.Vec) {
	a.viewport = vp
	if vp.X <= 0 || vp.Y <= 0 {
		return
	}
	device := core.DeviceFor(vp.X, a.cfg.MobileBreakpoint)
	profile := a.cfg.For(device)
	if device != a.state.Device {
		logutil.Infof("device class changed to %s", device)
		a.bind(interact.NewController(profile))
	}

	a.state.Rebuild(a.items, device, profile, vp.X)
	a.ctrl.Resize(vp)
	a.ctrl.SetContentSize(a.state.Grid.Size)
	if a.loaded {
		a.ctrl.LoadingComplete()
	}
}

func (a *App) bind(ctrl *interact.Controller) {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.ctrl = ctrl
	a.canvas.Bind(ctrl)
	a.toolbar.Bind(ctrl)
	a.statusbar.Bind(ctrl)
	a.unsubscribe = ctrl.Subscribe(observer.Funcs{
		IntroComplete: func() { logutil.Debugf("intro complete") },
		Focus:         func(i int) { logutil.Debugf("focus tile %d", i) },
		StageChanged: func(from, to state.ZoomStage) {
			logutil.Debugf("zoom stage %s -> %s", from, to)
		},
	})
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "R", key.NameEscape:
		a.ctrl.ZoomOut()
	case "0":
		a.state.Filter.Reset()
	case "1", "2", "3":
		cats := a.state.Categories()
		if i := int(e.Name[0] - '1'); i < len(cats) {
			a.state.Filter.Toggle(cats[i])
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.canvas.Layout(gtx, a.theme)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.statusbar.Layout(gtx, a.theme)
		}),
	)
}
