package tween

import (
	"math"
	"time"
)

// epsilon below which a follow animation snaps to its target.
const epsilon = 1e-3

// Channel is one animated scalar. It runs in one of two modes:
//
//   - follow: a critically damped spring chases the target. Redirecting the
//     target keeps the current velocity.
//   - timed: an eased tween from the value at the time of the call to the
//     target over a fixed duration, with an optional completion callback.
//
// Switching from timed to follow hands over the tween's current velocity.
type Channel struct {
	value    float64
	velocity float64 // units per second
	target   float64

	smoothTime float64 // seconds, follow mode

	// Timed mode
	timed    bool
	from     float64
	elapsed  float64
	duration float64
	easing   Easing
	done     func()
}

// NewChannel creates a channel resting at v. smooth is the follow-mode
// smoothing time; zero follows instantly.
func NewChannel(v float64, smooth time.Duration) *Channel {
	return &Channel{value: v, target: v, smoothTime: smooth.Seconds()}
}

// Value returns the current animated value.
func (c *Channel) Value() float64 { return c.value }

// Target returns the value the channel is heading to.
func (c *Channel) Target() float64 { return c.target }

// Velocity returns the current velocity in units per second.
func (c *Channel) Velocity() float64 { return c.velocity }

// Timed reports whether a timed tween is in flight.
func (c *Channel) Timed() bool { return c.timed }

// Settled reports whether the channel is at rest on its target.
func (c *Channel) Settled() bool {
	return !c.timed && c.value == c.target && c.velocity == 0
}

// Set jumps to v and stops any animation. A pending completion callback is
// dropped.
func (c *Channel) Set(v float64) {
	c.value, c.target, c.velocity = v, v, 0
	c.timed = false
	c.done = nil
}

// Follow redirects the channel to target in follow mode. A timed tween in
// flight is abandoned without running its callback.
func (c *Channel) Follow(target float64) {
	c.target = target
	if c.timed {
		c.timed = false
		c.done = nil
	}
}

// AnimateTo starts a timed tween from the current value. A tween already in
// flight is redirected; its callback is dropped in favour of done.
func (c *Channel) AnimateTo(target float64, d time.Duration, ease Easing, done func()) {
	if ease == nil {
		ease = Linear
	}
	c.target = target
	if d <= 0 {
		c.value, c.velocity = target, 0
		c.timed = false
		c.done = nil
		if done != nil {
			done()
		}
		return
	}
	c.timed = true
	c.from = c.value
	c.elapsed = 0
	c.duration = d.Seconds()
	c.easing = ease
	c.done = done
}

// Step advances the animation by dt and reports whether the channel is still
// moving. Completion callbacks run after the final value is committed.
func (c *Channel) Step(dt time.Duration) bool {
	s := dt.Seconds()
	if s <= 0 {
		return !c.Settled()
	}
	if c.timed {
		return c.stepTimed(s)
	}
	return c.stepFollow(s)
}

func (c *Channel) stepTimed(s float64) bool {
	prev := c.value
	c.elapsed += s
	if c.elapsed >= c.duration {
		c.value, c.velocity = c.target, 0
		c.timed = false
		done := c.done
		c.done = nil
		if done != nil {
			done()
		}
		return !c.Settled()
	}
	t := clamp01(c.elapsed / c.duration)
	c.value = lerp(c.from, c.target, c.easing(t))
	c.velocity = (c.value - prev) / s
	return true
}

// stepFollow is a critically damped spring (the SmoothDamp formulation) with
// overshoot protection.
func (c *Channel) stepFollow(s float64) bool {
	if c.Settled() {
		return false
	}
	if c.smoothTime <= 0 {
		c.value, c.velocity = c.target, 0
		return false
	}

	omega := 2 / c.smoothTime
	x := omega * s
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := c.value - c.target
	temp := (c.velocity + omega*change) * s
	c.velocity = (c.velocity - omega*temp) * decay
	out := c.target + (change+temp)*decay

	// Do not pass the target when we were approaching it.
	if (c.target-c.value > 0) == (out > c.target) {
		out = c.target
		c.velocity = 0
	}
	c.value = out

	if math.Abs(c.value-c.target) < epsilon && math.Abs(c.velocity) < epsilon {
		c.value, c.velocity = c.target, 0
		return false
	}
	return true
}
