package quadgraph

import (
	"iter"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// NearestPoint is the sampled point closest to a cursor and its Euclidean
// distance in world units.
type NearestPoint struct {
	SampledPoint
	Distance float64
}

// Nearest scans points once and returns the one closest to cursor. Ties go
// to the point seen first. Points whose distance is NaN are skipped. The
// boolean is false when no point qualifies.
func Nearest(points iter.Seq[SampledPoint], cursor gg.Point) (NearestPoint, bool) {
	best := NearestPoint{Distance: math.Inf(1)}
	found := false
	for p := range points {
		d := p.Distance(cursor)
		if d < best.Distance {
			best = NearestPoint{SampledPoint: p, Distance: d}
			found = true
		}
	}
	return best, found
}

// NearestIn is Nearest over a slice.
func NearestIn(points []SampledPoint, cursor gg.Point) (NearestPoint, bool) {
	return Nearest(slices.Values(points), cursor)
}
