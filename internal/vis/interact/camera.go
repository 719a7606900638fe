// Package interact handles user interaction with the canvas: the camera
// transform, pan bounds, the world offset controller and the pointer adapter.
package interact

import (
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// Camera maps between world and screen space. Scale is anchored at the
// viewport centre Vc:
//
//	screen = Vc + Scale*(world + Offset - Vc)
type Camera struct {
	Viewport core.Vec // Screen size in pixels
	Offset   core.Vec // World offset
	Scale    float64
}

// CameraFor builds a camera from a frame transform.
func CameraFor(viewport core.Vec, t core.Transform) Camera {
	return Camera{
		Viewport: viewport,
		Offset:   core.Vec{X: t.X, Y: t.Y},
		Scale:    t.Scale,
	}
}

func (c Camera) center() core.Vec {
	return c.Viewport.Scale(0.5)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c Camera) WorldToScreen(p core.Vec) core.Vec {
	vc := c.center()
	return vc.Add(p.Add(c.Offset).Sub(vc).Scale(c.Scale))
}

// ScreenToWorld converts screen coordinates to world coordinates. A
// non-positive scale is treated as 1.
func (c Camera) ScreenToWorld(p core.Vec) core.Vec {
	s := c.Scale
	if !(s > 0) {
		s = 1
	}
	vc := c.center()
	return p.Sub(vc).Scale(1 / s).Add(vc).Sub(c.Offset)
}

// ScreenRect converts a world rectangle to screen space.
func (c Camera) ScreenRect(r core.Rect) core.Rect {
	tl := c.WorldToScreen(core.Vec{X: r.X, Y: r.Y})
	return core.Rect{X: tl.X, Y: tl.Y, W: r.W * c.Scale, H: r.H * c.Scale}
}

// ViewRect returns the world rectangle currently on screen.
func (c Camera) ViewRect() core.Rect {
	tl := c.ScreenToWorld(core.Vec{})
	br := c.ScreenToWorld(c.Viewport)
	return core.Rect{X: tl.X, Y: tl.Y, W: br.X - tl.X, H: br.Y - tl.Y}
}
