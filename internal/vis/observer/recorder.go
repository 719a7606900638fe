package observer

import (
	"fmt"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

// Event is one recorded controller notification.
type Event struct {
	Kind   string  `yaml:"kind"`
	Index  int     `yaml:"index,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Detail string  `yaml:"detail,omitempty"`
}

func (e Event) String() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Detail)
	}
	return e.Kind
}

// Recorder is an Observer that keeps every notification in order. Pan events
// are counted rather than stored.
type Recorder struct {
	Events []Event
	Pans   int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Drain returns the recorded events and clears the list.
func (r *Recorder) Drain() []Event {
	ev := r.Events
	r.Events = nil
	return ev
}

func (r *Recorder) OnIntroComplete() {
	r.Events = append(r.Events, Event{Kind: "intro_complete"})
}

func (r *Recorder) OnPan(delta core.Vec, src core.InputSource) {
	r.Pans++
}

func (r *Recorder) OnFocus(index int) {
	r.Events = append(r.Events, Event{Kind: "focus", Index: index, Detail: fmt.Sprint(index)})
}

func (r *Recorder) OnStageChanged(from, to state.ZoomStage) {
	r.Events = append(r.Events, Event{Kind: "stage", Detail: from.String() + "->" + to.String()})
}

func (r *Recorder) OnScaleChanged(scale float64) {
	r.Events = append(r.Events, Event{Kind: "scale", Value: scale, Detail: fmt.Sprintf("%.3f", scale)})
}

func (r *Recorder) OnActiveChanged(index int, active bool) {
	kind := "release"
	if active {
		kind = "latch"
	}
	r.Events = append(r.Events, Event{Kind: kind, Index: index, Detail: fmt.Sprint(index)})
}
