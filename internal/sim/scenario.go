package sim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// Scenario is a scripted input session.
type Scenario struct {
	Name     string        `yaml:"name"`
	Viewport Size          `yaml:"viewport"`
	Device   string        `yaml:"device,omitempty"`  // "mobile" or "desktop"; derived from the viewport when empty
	Content  string        `yaml:"content,omitempty"` // YAML export; placeholders when empty
	Frame    time.Duration `yaml:"frame,omitempty"`   // Fixed frame step, default 16ms
	Every    int           `yaml:"trace_every,omitempty"`
	Steps    []Step        `yaml:"steps"`
}

// Size is a width and height in pixels.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (s Size) Vec() core.Vec { return core.Vec{X: s.W, Y: s.H} }

// Step actions.
const (
	ActionLoaded  = "loaded"   // Signal loading complete
	ActionWait    = "wait"     // Run frames for Duration, or until idle
	ActionDrag    = "drag"     // Press at (X, Y), move by (DX, DY) over Frames, release
	ActionWheel   = "wheel"    // Scroll by (DX, DY)
	ActionZoom    = "zoom"     // Shortcut-scroll by Delta
	ActionClick   = "click"    // Click tile Tile, or (X, Y) when Tile < 0
	ActionZoomOut = "zoom_out" // Explicit zoom out
	ActionResize  = "resize"   // Viewport becomes (W, H)
	ActionFilter  = "filter"   // Set the category filter
)

// Step is one scripted action.
type Step struct {
	Action     string        `yaml:"action"`
	X          float64       `yaml:"x,omitempty"`
	Y          float64       `yaml:"y,omitempty"`
	DX         float64       `yaml:"dx,omitempty"`
	DY         float64       `yaml:"dy,omitempty"`
	Delta      float64       `yaml:"delta,omitempty"`
	Frames     int           `yaml:"frames,omitempty"`
	Tile       *int          `yaml:"tile,omitempty"`
	W          float64       `yaml:"w,omitempty"`
	H          float64       `yaml:"h,omitempty"`
	Duration   time.Duration `yaml:"duration,omitempty"`
	Categories []string      `yaml:"categories,omitempty"`
}

// ReadScenario reads a scenario from a YAML file.
func ReadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the viewport and every step.
func (sc *Scenario) Validate() error {
	if sc.Viewport.W <= 0 || sc.Viewport.H <= 0 {
		return fmt.Errorf("scenario %q: viewport must be positive", sc.Name)
	}
	switch sc.Device {
	case "", "mobile", "desktop":
	default:
		return fmt.Errorf("scenario %q: unknown device %q", sc.Name, sc.Device)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case ActionLoaded, ActionWait, ActionWheel, ActionZoom, ActionZoomOut, ActionFilter:
		case ActionDrag:
			if st.DX == 0 && st.DY == 0 {
				return fmt.Errorf("step %d: drag needs dx or dy", i)
			}
		case ActionClick:
		case ActionResize:
			if st.W <= 0 || st.H <= 0 {
				return fmt.Errorf("step %d: resize needs w and h", i)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}

// Trace is the output of a run.
type Trace struct {
	Scenario string  `yaml:"scenario"`
	Device   string  `yaml:"device"`
	Tiles    int     `yaml:"tiles"`
	Frames   []Frame `yaml:"frames"`
	Summary  Summary `yaml:"summary"`
}

// Frame is a sampled controller state.
type Frame struct {
	T        time.Duration `yaml:"t"`
	Step     int           `yaml:"step"`
	X        float64       `yaml:"x"`
	Y        float64       `yaml:"y"`
	Scale    float64       `yaml:"scale"`
	Stage    string        `yaml:"stage"`
	Active   int           `yaml:"active"` // -1 when none
	Panning  bool          `yaml:"panning,omitempty"`
	Dragging bool          `yaml:"dragging,omitempty"`
	Intro    bool          `yaml:"intro,omitempty"`
	Centring bool          `yaml:"centring,omitempty"`
}

// WriteTrace writes a trace as YAML.
func WriteTrace(t *Trace, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
