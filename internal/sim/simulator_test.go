package sim

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
)

const focusScenario = `name: focus-and-wander
viewport: {w: 1000, h: 800}
device: desktop
trace_every: 4
steps:
  - action: click
    tile: 54
  - action: loaded
  - action: wait
  - action: click
    tile: 54
  - action: wait
  - {action: drag, dx: 250}
  - {action: drag, dx: -250}
  - {action: drag, dx: 300}
  - {action: drag, dx: -300}
  - action: wait
`

func run(t *testing.T, doc string) *Trace {
	t.Helper()
	sc, err := ParseScenario([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	trace, err := NewSimulator(config.Default(), sc, nil).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return trace
}

func TestFocusAndWander(t *testing.T) {
	trace := run(t, focusScenario)
	sum := trace.Summary

	if trace.Tiles != 100 || trace.Device != "desktop" {
		t.Errorf("tiles=%d device=%s", trace.Tiles, trace.Device)
	}
	if sum.BoundsViolations != 0 {
		t.Errorf("%d frames outside the pan bounds", sum.BoundsViolations)
	}
	if sum.Clicks != 2 || sum.Focuses != 1 {
		t.Errorf("clicks=%d focuses=%d; the intro click should be dropped", sum.Clicks, sum.Focuses)
	}
	if sum.StageChanges != 3 || sum.FinalStage != "none" {
		t.Errorf("stage changes=%d final=%s", sum.StageChanges, sum.FinalStage)
	}
	if sum.MinScale != 0.35 || sum.MaxScale != 3 {
		t.Errorf("scale range [%v, %v]", sum.MinScale, sum.MaxScale)
	}

	var sawFocused, sawActive bool
	for _, f := range trace.Frames {
		if f.Stage == "focused" {
			sawFocused = true
		}
		if f.Active == 54 {
			sawActive = true
		}
		if f.Step == 0 && !f.Intro {
			t.Fatal("intro lock released before loading")
		}
	}
	if !sawFocused || !sawActive {
		t.Errorf("focused=%v active=%v", sawFocused, sawActive)
	}

	last := trace.Frames[len(trace.Frames)-1]
	if last.Scale != 1 || last.Active != -1 || last.Panning {
		t.Errorf("last frame %+v", last)
	}
}

func TestWheelZoomScenario(t *testing.T) {
	trace := run(t, `name: zoom
viewport: {w: 1000, h: 800}
steps:
  - action: loaded
  - action: wait
  - {action: zoom, delta: -5000}
  - {action: zoom, delta: -10}
  - {action: wheel, dy: 120}
  - {action: filter, categories: [photo]}
  - {action: resize, w: 1200, h: 700}
  - action: zoom_out
  - action: wait
`)
	if trace.Summary.MaxScale != 3 {
		t.Errorf("max scale = %v", trace.Summary.MaxScale)
	}
	if trace.Summary.Pans != 1 {
		t.Errorf("pans = %d", trace.Summary.Pans)
	}
	if trace.Summary.BoundsViolations != 0 {
		t.Errorf("bounds violations = %d", trace.Summary.BoundsViolations)
	}
	// Wheel zoom is not a focus; zoom_out only resets the scale.
	if trace.Summary.StageChanges != 0 {
		t.Errorf("stage changes = %d", trace.Summary.StageChanges)
	}
	if last := trace.Frames[len(trace.Frames)-1]; last.Scale != 1 {
		t.Errorf("final scale = %v", last.Scale)
	}
}

func TestMobileDerivedFromViewport(t *testing.T) {
	trace := run(t, "name: phone\nviewport: {w: 390, h: 844}\nsteps: [{action: loaded}]\n")
	if trace.Device != "mobile" {
		t.Errorf("device = %s", trace.Device)
	}
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"viewport", "name: x\nsteps: []\n", "viewport"},
		{"device", "viewport: {w: 1, h: 1}\ndevice: tablet\n", "unknown device"},
		{"action", "viewport: {w: 1, h: 1}\nsteps: [{action: jump}]\n", "unknown action"},
		{"drag", "viewport: {w: 1, h: 1}\nsteps: [{action: drag}]\n", "drag needs"},
		{"resize", "viewport: {w: 1, h: 1}\nsteps: [{action: resize, w: 5}]\n", "resize needs"},
		{"yaml", "viewport: [", "parse scenario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestClickTileOutOfRange(t *testing.T) {
	sc, err := ParseScenario([]byte("viewport: {w: 800, h: 600}\nsteps: [{action: click, tile: 5000}]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSimulator(config.Default(), sc, nil).Run(context.Background()); err == nil {
		t.Error("expected an error for a missing tile")
	}
}

func TestWriteTrace(t *testing.T) {
	trace := run(t, "name: short\nviewport: {w: 1000, h: 800}\nsteps: [{action: loaded}]\n")
	path := filepath.Join(t.TempDir(), "trace.yaml")
	if err := WriteTrace(trace, path); err != nil {
		t.Fatal(err)
	}
}

func TestBrowseScenarioFile(t *testing.T) {
	sc, err := ReadScenario(filepath.Join("testdata", "browse.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "browse" || sc.Every != 8 || len(sc.Steps) != 14 {
		t.Fatalf("parsed %q every=%d steps=%d", sc.Name, sc.Every, len(sc.Steps))
	}

	trace, err := RunScenario(context.Background(), config.Default(), sc)
	if err != nil {
		t.Fatal(err)
	}
	sum := trace.Summary
	if sum.BoundsViolations != 0 {
		t.Errorf("%d frames outside the pan bounds", sum.BoundsViolations)
	}
	if sum.Focuses != 1 || sum.FinalStage != "none" {
		t.Errorf("focuses=%d final stage=%s", sum.Focuses, sum.FinalStage)
	}
	if last := trace.Frames[len(trace.Frames)-1]; last.Scale != 1 {
		t.Errorf("final scale = %v, want 1 after zoom out", last.Scale)
	}
}
