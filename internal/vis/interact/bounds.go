package interact

import (
	"math"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// PanBounds is the rectangle of permissible world offsets at one scale.
// MinX <= MaxX and MinY <= MaxY always hold.
type PanBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ComputePanBounds returns how far the camera may travel. At rest the grid is
// centred in the viewport; the grid's far edge can be brought to the viewport
// edge plus padding, and travel grows with scale so edge tiles stay reachable
// when zoomed in. Degenerate input (zero, negative or non-finite sizes or
// scale) gives the zero bounds.
func ComputePanBounds(content, viewport core.Vec, scale, padding float64) PanBounds {
	if !positive(content.X) || !positive(content.Y) ||
		!positive(viewport.X) || !positive(viewport.Y) || !positive(scale) {
		return PanBounds{}
	}
	if math.IsNaN(padding) || math.IsInf(padding, 0) {
		padding = 0
	}

	minX, maxX := axisBounds(content.X, viewport.X, scale, padding)
	minY, maxY := axisBounds(content.Y, viewport.Y, scale, padding)
	return PanBounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

func axisBounds(c, v, s, p float64) (lo, hi float64) {
	half := math.Max(0, (c*s-v+2*p)/(2*s))
	mid := v/2 - c/2
	return mid - half, mid + half
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// Clamp returns p limited to the bounds.
func (b PanBounds) Clamp(p core.Vec) core.Vec {
	return core.Vec{
		X: clamp(p.X, b.MinX, b.MaxX),
		Y: clamp(p.Y, b.MinY, b.MaxY),
	}
}

// Contains reports whether p lies within the bounds.
func (b PanBounds) Contains(p core.Vec) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Center returns the resting offset.
func (b PanBounds) Center() core.Vec {
	return core.Vec{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// CenterDelta is the world offset change that moves screenPoint to the
// viewport centre at the given scale.
func CenterDelta(viewport, screenPoint core.Vec, scale float64) core.Vec {
	if !positive(scale) {
		return core.Vec{}
	}
	return viewport.Scale(0.5).Sub(screenPoint).Scale(1 / scale)
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if math.IsNaN(v) {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
