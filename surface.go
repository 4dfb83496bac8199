package quadgraph

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Surface is the drawing target of a Renderer. Coordinates passed to path
// methods are transformed by the current matrix, which the renderer sets to
// the viewport's world-to-screen transform while drawing in world units.
//
// *gg.Context implements Surface.
type Surface interface {
	Push()
	Pop()
	Transform(m gg.Matrix)

	ClearWithColor(c gg.RGBA)
	SetColor(c color.Color)
	SetLineWidth(width float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawEllipse(x, y, rx, ry float64)
	ClearPath()
	Stroke() error
	Fill() error
}

// TextSurface is a Surface that can also draw text in screen pixels.
// The font must be set by the owner of the surface.
type TextSurface interface {
	Surface
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var (
	_ Surface     = (*gg.Context)(nil)
	_ TextSurface = (*gg.Context)(nil)
)
