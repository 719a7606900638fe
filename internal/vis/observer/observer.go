// Package observer provides explicit subscription to canvas controller events.
package observer

import (
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

// Observer is the interface for observing the canvas controller.
type Observer interface {
	// OnIntroComplete is called once the intro zoom finished and input is enabled.
	OnIntroComplete()

	// OnPan is called for every accepted pan delta, in screen units.
	OnPan(delta core.Vec, src core.InputSource)

	// OnFocus is called when a tile is centred and zoomed in on.
	OnFocus(index int)

	// OnStageChanged is called on every zoom stage transition.
	OnStageChanged(from, to state.ZoomStage)

	// OnScaleChanged is called when the target scale changes.
	OnScaleChanged(scale float64)

	// OnActiveChanged is called when a tile is latched (active true) or released.
	OnActiveChanged(index int, active bool)
}

// Funcs adapts optional callbacks to the Observer interface.
type Funcs struct {
	IntroComplete func()
	Pan           func(delta core.Vec, src core.InputSource)
	Focus         func(index int)
	StageChanged  func(from, to state.ZoomStage)
	ScaleChanged  func(scale float64)
	ActiveChanged func(index int, active bool)
}

func (f Funcs) OnIntroComplete() {
	if f.IntroComplete != nil {
		f.IntroComplete()
	}
}

func (f Funcs) OnPan(delta core.Vec, src core.InputSource) {
	if f.Pan != nil {
		f.Pan(delta, src)
	}
}

func (f Funcs) OnFocus(index int) {
	if f.Focus != nil {
		f.Focus(index)
	}
}

func (f Funcs) OnStageChanged(from, to state.ZoomStage) {
	if f.StageChanged != nil {
		f.StageChanged(from, to)
	}
}

func (f Funcs) OnScaleChanged(scale float64) {
	if f.ScaleChanged != nil {
		f.ScaleChanged(scale)
	}
}

func (f Funcs) OnActiveChanged(index int, active bool) {
	if f.ActiveChanged != nil {
		f.ActiveChanged(index, active)
	}
}

// Registry holds subscribers and notifies them in subscription order.
// It is not safe for concurrent use; the controller is single-threaded.
type Registry struct {
	nextID int
	subs   []subscription
}

type subscription struct {
	id  int
	obs Observer
}

// Subscribe adds o and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (r *Registry) Subscribe(o Observer) func() {
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscription{id: id, obs: o})
	return func() { r.remove(id) }
}

func (r *Registry) remove(id int) {
	for i, s := range r.subs {
		if s.id == id {
			r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of subscribers.
func (r *Registry) Len() int { return len(r.subs) }

// each calls fn for a snapshot of the subscribers, so observers may
// unsubscribe from inside a callback.
func (r *Registry) each(fn func(Observer)) {
	if len(r.subs) == 0 {
		return
	}
	snapshot := make([]subscription, len(r.subs))
	copy(snapshot, r.subs)
	for _, s := range snapshot {
		fn(s.obs)
	}
}

func (r *Registry) IntroComplete() {
	r.each(func(o Observer) { o.OnIntroComplete() })
}

func (r *Registry) Pan(delta core.Vec, src core.InputSource) {
	r.each(func(o Observer) { o.OnPan(delta, src) })
}

func (r *Registry) Focus(index int) {
	r.each(func(o Observer) { o.OnFocus(index) })
}

func (r *Registry) StageChanged(from, to state.ZoomStage) {
	r.each(func(o Observer) { o.OnStageChanged(from, to) })
}

func (r *Registry) ScaleChanged(scale float64) {
	r.each(func(o Observer) { o.OnScaleChanged(scale) })
}

func (r *Registry) ActiveChanged(index int, active bool) {
	r.each(func(o Observer) { o.OnActiveChanged(index, active) })
}
