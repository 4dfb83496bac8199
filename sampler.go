package quadgraph

import (
	"iter"
	"math"

	"github.com/gogpu/gg"
)

// DefaultGridSpacing is the world distance between grid lines.
const DefaultGridSpacing = 1.0

// maxSamples caps a single sampling pass. Past it the step widens instead,
// so samples still reach the right edge.
const maxSamples = 1 << 16

// SampledPoint is a point of a curve in world coordinates.
//
// Visible is false when y lies outside the viewport's y range or is not a
// finite number. Such points are still produced so that nearest-point
// search sees them, but a path must not connect across them: the next
// visible point starts a new subpath.
type SampledPoint struct {
	gg.Point
	Visible bool
}

// Sampler walks a Curve across a Viewport.
//
// Samples start at the left edge rounded down to a multiple of GridSpacing
// and advance by GridSpacing/Zoom world units, which is GridSpacing screen
// pixels.
type Sampler struct {
	GridSpacing float64
}

func (s Sampler) spacing() float64 {
	if s.GridSpacing > 0 {
		return s.GridSpacing
	}
	return DefaultGridSpacing
}

// Step returns the world distance between two samples for v, or 0 when v
// cannot be sampled. It is GridSpacing/Zoom unless that would take more than
// maxSamples points to cross the viewport.
func (s Sampler) Step(v Viewport) float64 {
	if !(v.Zoom > 0) || math.IsInf(v.Zoom, 0) {
		return 0
	}
	step := s.spacing() / v.Zoom
	if span := v.MaxX() - RoundDown(v.MinX(), s.spacing()); span/step > maxSamples {
		step = span / maxSamples
	}
	return step
}

// Sample returns the sampled points of c across v. The sequence is lazy:
// each iteration evaluates the curve again, so it may be ranged over any
// number of times.
//
// Sample panics if c is nil.
func (s Sampler) Sample(v Viewport, c *Curve) iter.Seq[SampledPoint] {
	if c == nil {
		panic("quadgraph: Sample called with nil Curve")
	}
	return func(yield func(SampledPoint) bool) {
		step := s.Step(v)
		if step == 0 {
			return
		}
		x0 := RoundDown(v.MinX(), s.spacing())
		maxX := v.MaxX()
		for i := 0; i < maxSamples; i++ {
			// Multiplying instead of accumulating keeps x free of drift.
			x := x0 + float64(i)*step
			if x >= maxX {
				return
			}
			y := c.Y(x)
			p := SampledPoint{
				Point:   gg.Pt(x, y),
				Visible: !math.IsInf(y, 0) && v.ContainsY(y),
			}
			if !yield(p) {
				return
			}
		}
	}
}

// AppendSamples appends the samples of c across v to dst and returns the
// extended slice.
//
// It lets a caller reuse one buffer across render passes: pass buf[:0] and
// keep the result. The returned points alias dst's backing array and are
// overwritten by the next call that reuses it.
func (s Sampler) AppendSamples(dst []SampledPoint, v Viewport, c *Curve) []SampledPoint {
	for p := range s.Sample(v, c) {
		dst = append(dst, p)
	}
	return dst
}
