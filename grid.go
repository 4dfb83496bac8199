package quadgraph

import (
	"iter"
	"math"

	"github.com/gogpu/gg"
)

// maxGridLines bounds the number of lines per direction so that a tiny
// spacing on a large viewport cannot stall a render pass.
const maxGridLines = 4096

// gridStride returns the distance between drawn lines across [lo, hi]: the
// smallest multiple of spacing that needs at most maxGridLines lines.
func gridStride(lo, hi, spacing float64) float64 {
	if n := (hi-lo)/spacing + 1; n > maxGridLines {
		return spacing * math.Ceil(n/maxGridLines)
	}
	return spacing
}

// RoundDown returns the largest multiple of spacing that is not greater
// than v. A non-positive spacing returns v unchanged.
func RoundDown(v, spacing float64) float64 {
	if spacing <= 0 {
		return v
	}
	return math.Floor(v/spacing) * spacing
}

// GridLine is a grid segment in world coordinates. Axis is set for the
// lines through the world origin.
type GridLine struct {
	From, To gg.Point
	Vertical bool
	Axis     bool
}

// GridLines yields the vertical lines of the visible area followed by the
// horizontal ones. Lines sit on world-space multiples of spacing, so they
// stay put while the viewport pans. When spacing is too fine for
// maxGridLines, only every n-th line is drawn.
func (v Viewport) GridLines(spacing float64) iter.Seq[GridLine] {
	return func(yield func(GridLine) bool) {
		if !(spacing > 0) {
			return
		}
		minX, maxX := v.MinX(), v.MaxX()
		minY, maxY := v.MinY(), v.MaxY()
		eps := spacing * 1e-9

		sx := gridStride(minX, maxX, spacing)
		x0 := RoundDown(minX, sx)
		for i := 0; i < maxGridLines; i++ {
			x := x0 + float64(i)*sx
			if x >= maxX {
				break
			}
			if !yield(GridLine{From: gg.Pt(x, minY), To: gg.Pt(x, maxY), Vertical: true, Axis: math.Abs(x) < eps}) {
				return
			}
		}

		sy := gridStride(minY, maxY, spacing)
		y0 := RoundDown(minY, sy)
		for i := 0; i < maxGridLines; i++ {
			y := y0 + float64(i)*sy
			if y >= maxY {
				break
			}
			if !yield(GridLine{From: gg.Pt(minX, y), To: gg.Pt(maxX, y), Axis: math.Abs(y) < eps}) {
				return
			}
		}
	}
}
