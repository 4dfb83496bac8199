package quadgraph

import (
	"math"

	"github.com/gogpu/gg"
)

// Zoom limits in screen pixels per world unit.
const (
	MinZoom = 8
	MaxZoom = 400

	DefaultZoom = 100
)

// Viewport is the visible world-space rectangle.
//
// Left, Right, Top and Bottom are offsets from the center in world units;
// the visible x range is [Left+CenterX, Right+CenterX] and the visible y
// range is [Top+CenterY, Bottom+CenterY]. Zoom is the number of screen
// pixels per world unit.
//
// By default the world x axis grows to the right and the world y axis grows
// upwards. FlipX and FlipY reverse the respective screen direction.
//
// Methods return a new Viewport instead of modifying the receiver.
type Viewport struct {
	Left, Right, Top, Bottom float64
	CenterX, CenterY         float64
	Zoom                     float64

	// Width and Height are the screen size in pixels.
	Width, Height float64

	FlipX, FlipY bool
}

// NewViewport creates a Viewport centered on the world origin for a screen
// of the given size. The zoom is clamped to [MinZoom, MaxZoom].
func NewViewport(width, height, zoom float64) Viewport {
	v := Viewport{Width: width, Height: height, Zoom: clampZoom(zoom)}
	return v.recompute()
}

func clampZoom(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return DefaultZoom
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}

func (v Viewport) recompute() Viewport {
	v.Left = -v.Width / 2 / v.Zoom
	v.Right = v.Width / 2 / v.Zoom
	v.Top = -v.Height / 2 / v.Zoom
	v.Bottom = v.Height / 2 / v.Zoom
	return v
}

// Resize returns the viewport for a new screen size.
func (v Viewport) Resize(width, height float64) Viewport {
	v.Width, v.Height = width, height
	return v.recompute()
}

// SetZoom returns the viewport at zoom z, clamped to [MinZoom, MaxZoom].
func (v Viewport) SetZoom(z float64) Viewport {
	v.Zoom = clampZoom(z)
	return v.recompute()
}

// AddZoom returns the viewport with delta added to its zoom. The result
// never leaves [MinZoom, MaxZoom].
func (v Viewport) AddZoom(delta float64) Viewport {
	return v.SetZoom(v.Zoom + delta)
}

// SetCenter returns the viewport centered on the world point (x, y).
func (v Viewport) SetCenter(x, y float64) Viewport {
	v.CenterX, v.CenterY = x, y
	return v
}

// MoveCenter returns the viewport with its center shifted by (dx, dy).
func (v Viewport) MoveCenter(dx, dy float64) Viewport {
	return v.SetCenter(v.CenterX+dx, v.CenterY+dy)
}

// MinX returns the smallest visible world x.
func (v Viewport) MinX() float64 { return v.Left + v.CenterX }

// MaxX returns the largest visible world x.
func (v Viewport) MaxX() float64 { return v.Right + v.CenterX }

// MinY returns the smallest visible world y.
func (v Viewport) MinY() float64 { return v.Top + v.CenterY }

// MaxY returns the largest visible world y.
func (v Viewport) MaxY() float64 { return v.Bottom + v.CenterY }

// ContainsY reports whether y lies inside the visible y range.
func (v Viewport) ContainsY(y float64) bool {
	return y >= v.MinY() && y <= v.MaxY()
}

func (v Viewport) signs() (sx, sy float64) {
	sx, sy = 1, -1
	if v.FlipX {
		sx = -sx
	}
	if v.FlipY {
		sy = -sy
	}
	return sx, sy
}

// Transform returns the world-to-screen matrix: the world point at the
// center maps to the middle of the screen and one world unit spans Zoom
// pixels.
func (v Viewport) Transform() gg.Matrix {
	sx, sy := v.signs()
	return gg.Translate(v.Width/2, v.Height/2).
		Multiply(gg.Scale(sx*v.Zoom, sy*v.Zoom)).
		Multiply(gg.Translate(-v.CenterX, -v.CenterY))
}

// WorldToScreen maps a world point to screen pixels.
func (v Viewport) WorldToScreen(p gg.Point) gg.Point {
	return v.Transform().TransformPoint(p)
}

// ScreenToWorld maps a pointer position in screen pixels to world
// coordinates.
func (v Viewport) ScreenToWorld(x, y float64) gg.Point {
	sx, sy := v.signs()
	return gg.Pt(
		sx*(x-v.Width/2)/v.Zoom+v.CenterX,
		sy*(y-v.Height/2)/v.Zoom+v.CenterY,
	)
}
