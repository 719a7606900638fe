package tween

import (
	"math"
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

// run steps the channel until it settles or limit frames pass.
func run(c *Channel, limit int) int {
	for i := 0; i < limit; i++ {
		if !c.Step(frame) {
			return i + 1
		}
	}
	return limit
}

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]Easing{
		"linear":     Linear,
		"outCubic":   EaseOutCubic,
		"inOutCubic": EaseInOutCubic,
		"outExpo":    EaseOutExpo,
	}
	for name, e := range easings {
		if got := e(0); math.Abs(got) > 1e-3 {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := e(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v", name, got)
		}
	}
	if EaseOutCubic(0.5) <= 0.5 {
		t.Error("ease-out should be ahead of linear at the midpoint")
	}
	if math.Abs(EaseInOutCubic(0.5)-0.5) > 1e-9 {
		t.Error("ease-in-out should be symmetric at the midpoint")
	}
}

func TestFollowConverges(t *testing.T) {
	c := NewChannel(0, 200*time.Millisecond)
	c.Follow(100)

	frames := run(c, 500)
	if frames == 500 {
		t.Fatalf("did not settle, value %v", c.Value())
	}
	if c.Value() != 100 || !c.Settled() {
		t.Errorf("value = %v, settled = %v", c.Value(), c.Settled())
	}
}

func TestFollowNeverOvershootsFromRest(t *testing.T) {
	c := NewChannel(0, 150*time.Millisecond)
	c.Follow(50)
	for i := 0; i < 200; i++ {
		c.Step(frame)
		if c.Value() > 50 {
			t.Fatalf("overshot to %v at frame %d", c.Value(), i)
		}
	}
}

func TestFollowRedirectKeepsVelocity(t *testing.T) {
	c := NewChannel(0, 300*time.Millisecond)
	c.Follow(1000)
	for i := 0; i < 5; i++ {
		c.Step(frame)
	}
	v := c.Velocity()
	if v <= 0 {
		t.Fatalf("expected positive velocity, got %v", v)
	}

	c.Follow(2000)
	if c.Velocity() != v {
		t.Errorf("redirect changed velocity from %v to %v", v, c.Velocity())
	}
}

func TestZeroSmoothingFollowsInstantly(t *testing.T) {
	c := NewChannel(0, 0)
	c.Follow(42)
	if c.Step(frame) {
		t.Error("instant channel reported movement")
	}
	if c.Value() != 42 {
		t.Errorf("value = %v, want 42", c.Value())
	}
}

func TestAnimateToReachesTargetOnTime(t *testing.T) {
	c := NewChannel(1, 0)
	doneCalls := 0
	c.AnimateTo(3, 150*time.Millisecond, EaseOutCubic, func() { doneCalls++ })

	for i := 0; i < 9; i++ {
		if !c.Step(frame) {
			t.Fatalf("finished early at frame %d", i)
		}
		if doneCalls != 0 {
			t.Fatal("callback fired early")
		}
	}
	c.Step(frame)

	if c.Value() != 3 || !c.Settled() {
		t.Errorf("value = %v, settled = %v", c.Value(), c.Settled())
	}
	if doneCalls != 1 {
		t.Errorf("callback fired %d times", doneCalls)
	}
}

func TestAnimateToMonotonic(t *testing.T) {
	c := NewChannel(0, 0)
	c.AnimateTo(100, time.Second, EaseOutCubic, nil)
	prev := 0.0
	for c.Step(frame) {
		if c.Value() < prev {
			t.Fatalf("value went backwards: %v < %v", c.Value(), prev)
		}
		prev = c.Value()
	}
}

func TestAnimateToRedirect(t *testing.T) {
	c := NewChannel(0, 0)
	first, second := 0, 0
	c.AnimateTo(100, time.Second, Linear, func() { first++ })
	for i := 0; i < 10; i++ {
		c.Step(frame)
	}
	mid := c.Value()

	c.AnimateTo(-50, 500*time.Millisecond, Linear, func() { second++ })
	c.Step(frame)
	if c.Value() >= mid {
		t.Errorf("redirected tween should head down from %v, got %v", mid, c.Value())
	}

	run(c, 100)
	if c.Value() != -50 {
		t.Errorf("value = %v, want -50", c.Value())
	}
	if first != 0 || second != 1 {
		t.Errorf("callbacks: first=%d second=%d", first, second)
	}
}

func TestFollowAfterTweenKeepsVelocity(t *testing.T) {
	c := NewChannel(0, 200*time.Millisecond)
	c.AnimateTo(100, time.Second, Linear, nil)
	for i := 0; i < 10; i++ {
		c.Step(frame)
	}
	v := c.Velocity()
	if math.Abs(v-100) > 1 {
		t.Fatalf("linear tween velocity = %v, want ~100/s", v)
	}

	c.Follow(200)
	if c.Timed() {
		t.Error("Follow should end the timed tween")
	}
	if c.Velocity() != v {
		t.Errorf("handover lost velocity: %v -> %v", v, c.Velocity())
	}
}

func TestZeroDurationAnimateCompletesImmediately(t *testing.T) {
	c := NewChannel(0, 0)
	called := false
	c.AnimateTo(5, 0, nil, func() { called = true })
	if c.Value() != 5 || !called || !c.Settled() {
		t.Errorf("value=%v called=%v settled=%v", c.Value(), called, c.Settled())
	}
}

func TestSetStopsAnimation(t *testing.T) {
	c := NewChannel(0, 0)
	called := false
	c.AnimateTo(10, time.Second, Linear, func() { called = true })
	c.Step(frame)
	c.Set(3)

	if c.Step(frame) {
		t.Error("channel still moving after Set")
	}
	if c.Value() != 3 || called {
		t.Errorf("value=%v called=%v", c.Value(), called)
	}
}
