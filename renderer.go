package quadgraph

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// Frame describes the outcome of the last render pass.
type Frame struct {
	// Samples is the number of sampled points; Visible counts those inside
	// the viewport's y range.
	Samples int
	Visible int

	// Cursor is the cursor position in world coordinates, valid when
	// HasCursor is set.
	Cursor    gg.Point
	HasCursor bool

	// Nearest is the sampled point closest to the cursor, valid when
	// HasNearest is set. Highlighted reports whether it was close enough
	// to be marked.
	Nearest     NearestPoint
	HasNearest  bool
	Highlighted bool
}

// Renderer draws a Curve over a grid and tracks the point nearest to the
// cursor.
//
// State changes only mark the renderer dirty. The work (sampling, nearest
// point search, drawing) happens in Render, so any number of changes
// between two frames cost one pass. A Renderer is not safe for concurrent
// use.
type Renderer struct {
	cfg     config
	vp      Viewport
	sampler Sampler
	curve   *Curve

	cursor    gg.Point
	hasCursor bool

	dirty   bool
	samples []SampledPoint
	frame   Frame
}

// NewRenderer creates a Renderer for a screen of width×height pixels.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	vp := NewViewport(float64(width), float64(height), cfg.zoom)
	vp.FlipX, vp.FlipY = cfg.flipX, cfg.flipY
	vp = vp.SetCenter(cfg.centerX, cfg.centerY)

	return &Renderer{
		cfg:     cfg,
		vp:      vp,
		sampler: Sampler{GridSpacing: cfg.gridSpacing},
		dirty:   true,
	}
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() Viewport { return r.vp }

// Curve returns the curve being drawn, or nil.
func (r *Renderer) Curve() *Curve { return r.curve }

// Frame returns the result of the last render pass.
func (r *Renderer) Frame() Frame { return r.frame }

// Samples returns the points sampled by the last render pass. The slice is
// reused by the next pass; copy it to keep it.
func (r *Renderer) Samples() []SampledPoint { return r.samples }

// NeedsRender reports whether state changed since the last render pass.
func (r *Renderer) NeedsRender() bool { return r.dirty }

// Invalidate forces the next Render to draw.
func (r *Renderer) Invalidate() { r.dirty = true }

// SetCurve replaces the curve. A curve whose ProbeError is non-nil is
// rejected: the previous curve stays and the error is returned. A nil curve
// clears the plot.
func (r *Renderer) SetCurve(c *Curve) error {
	if c != nil {
		if err := c.ProbeError(); err != nil {
			Logger().Warn("quadgraph: formula rejected", "formula", c.Source(), "err", err)
			return err
		}
		Logger().Info("quadgraph: formula set", "formula", c.String())
	}
	r.curve = c
	r.dirty = true
	return nil
}

// SetFormula parses formula and, if it is valid, makes it the current
// curve. The new curve is returned either way so that callers can inspect
// it.
func (r *Renderer) SetFormula(formula string) (*Curve, error) {
	c := NewCurve(formula, r.cfg.curveOptions...)
	return c, r.SetCurve(c)
}

// SetCursor sets the pointer position in screen pixels.
func (r *Renderer) SetCursor(x, y float64) {
	r.cursor = gg.Pt(x, y)
	r.hasCursor = true
	r.dirty = true
}

// ClearCursor removes the pointer, e.g. when it leaves the window.
func (r *Renderer) ClearCursor() {
	r.hasCursor = false
	r.dirty = true
}

// SetCenter centers the view on the world point (x, y).
func (r *Renderer) SetCenter(x, y float64) {
	r.vp = r.vp.SetCenter(x, y)
	r.dirty = true
}

// MoveCenter shifts the view center by (dx, dy) world units.
func (r *Renderer) MoveCenter(dx, dy float64) {
	r.vp = r.vp.MoveCenter(dx, dy)
	r.dirty = true
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom].
func (r *Renderer) SetZoom(z float64) {
	r.vp = r.vp.SetZoom(z)
	r.dirty = true
}

// AddZoom adds delta to the zoom, clamped to [MinZoom, MaxZoom].
func (r *Renderer) AddZoom(delta float64) {
	r.vp = r.vp.AddZoom(delta)
	r.dirty = true
}

// Resize updates the screen size. It is a no-op when the size is
// unchanged.
func (r *Renderer) Resize(width, height int) {
	w, h := float64(width), float64(height)
	if w == r.vp.Width && h == r.vp.Height {
		return
	}
	r.vp = r.vp.Resize(w, h)
	r.dirty = true
	Logger().Info("quadgraph: resize", "width", width, "height", height)
}

// ApplyInput pans the view by one tick of held input and reports whether
// the view moved.
func (r *Renderer) ApplyInput(s InputState) bool {
	dx, dy := Displacement(s, r.cfg.panSpeed, r.vp.Zoom)
	if dx == 0 && dy == 0 {
		return false
	}
	r.MoveCenter(dx, dy)
	return true
}

// Render draws a frame onto s if anything changed since the last pass and
// reports whether it drew. Drawing errors of individual layers are joined;
// the pass still completes.
//
// Render panics if s is nil.
func (r *Renderer) Render(s Surface) (bool, error) {
	if s == nil {
		panic("quadgraph: Render called with nil Surface")
	}
	if !r.dirty {
		return false, nil
	}
	r.dirty = false

	vp := r.vp
	lw := r.cfg.lineWidth / vp.Zoom
	var frame Frame
	var errs []error

	s.ClearWithColor(r.cfg.colors.Background)
	s.Push()
	s.Transform(vp.Transform())

	if r.cfg.grid {
		errs = append(errs, r.drawGrid(s, lw))
	}

	r.samples = r.samples[:0]
	if r.curve != nil {
		r.samples = r.sampler.AppendSamples(r.samples, vp, r.curve)
		frame.Samples = len(r.samples)
		visible, err := r.drawCurve(s, lw)
		frame.Visible = visible
		errs = append(errs, err)
	}

	if r.hasCursor {
		frame.Cursor = vp.ScreenToWorld(r.cursor.X, r.cursor.Y)
		frame.HasCursor = true
		frame.Nearest, frame.HasNearest = NearestIn(r.samples, frame.Cursor)
		if frame.HasNearest && frame.Nearest.Visible && frame.Nearest.Distance < r.cfg.cursorRadius {
			frame.Highlighted = true
			errs = append(errs, r.drawMarker(s, frame.Nearest, lw))
		}
	}
	s.Pop()

	if ts, ok := s.(TextSurface); ok && r.cfg.labels {
		r.drawLabels(ts, frame)
	}

	r.frame = frame
	err := errors.Join(errs...)
	if err != nil {
		Logger().Warn("quadgraph: render", "err", err)
	}
	Logger().Debug("quadgraph: frame",
		"samples", frame.Samples,
		"visible", frame.Visible,
		"nearest", frame.HasNearest,
		"zoom", vp.Zoom)
	return true, err
}

func (r *Renderer) drawGrid(s Surface, lw float64) error {
	var errs []error
	spacing := r.sampler.spacing()

	for _, axis := range []bool{false, true} {
		s.ClearPath()
		n := 0
		for l := range r.vp.GridLines(spacing) {
			if l.Axis != axis {
				continue
			}
			s.MoveTo(l.From.X, l.From.Y)
			s.LineTo(l.To.X, l.To.Y)
			n++
		}
		if n == 0 {
			continue
		}
		col, w := r.cfg.colors.Grid, lw
		if axis {
			col, w = r.cfg.colors.Axis, 2*lw
		}
		s.SetColor(col.Color())
		s.SetLineWidth(w)
		errs = append(errs, s.Stroke())
	}

	// Origin marker: a square of side spacing rotated by 45 degrees.
	h := spacing / math.Sqrt2
	s.ClearPath()
	s.MoveTo(h, 0)
	s.LineTo(0, h)
	s.LineTo(-h, 0)
	s.LineTo(0, -h)
	s.LineTo(h, 0)
	s.SetColor(r.cfg.colors.Origin.Color())
	errs = append(errs, s.Fill())

	return errors.Join(errs...)
}

// drawCurve strokes the visible samples, starting a new subpath after every
// point that is not visible.
func (r *Renderer) drawCurve(s Surface, lw float64) (int, error) {
	s.ClearPath()
	visible := 0
	connected := false
	for _, p := range r.samples {
		if !p.Visible {
			connected = false
			continue
		}
		if connected {
			s.LineTo(p.X, p.Y)
		} else {
			s.MoveTo(p.X, p.Y)
			connected = true
		}
		visible++
	}
	if visible == 0 {
		return 0, nil
	}
	s.SetColor(r.cfg.colors.Curve.Color())
	s.SetLineWidth(lw)
	return visible, s.Stroke()
}

func (r *Renderer) drawMarker(s Surface, p NearestPoint, lw float64) error {
	radius := 4 / r.vp.Zoom
	s.ClearPath()
	s.DrawEllipse(p.X, p.Y, radius, radius)
	s.SetColor(r.cfg.colors.Cursor.Color())
	s.SetLineWidth(4 * lw)
	return s.Stroke()
}

// drawLabels writes tick values along both axes and, when a point is
// highlighted, its coordinates. Text is placed in screen pixels.
func (r *Renderer) drawLabels(s TextSurface, f Frame) {
	vp := r.vp
	step := TickStep(minLabelSpacing / vp.Zoom)
	s.SetColor(r.cfg.colors.Label.Color())

	// Axes clamped into view so labels stay visible when the origin is not.
	ax := clamp(0, vp.MinX(), vp.MaxX())
	ay := clamp(0, vp.MinY(), vp.MaxY())

	x0 := RoundDown(vp.MinX(), step)
	for i := 0; i < maxGridLines; i++ {
		x := x0 + float64(i)*step
		if x >= vp.MaxX() {
			break
		}
		p := vp.WorldToScreen(gg.Pt(x, ay))
		s.DrawStringAnchored(FormatTick(x), p.X+3, p.Y+3, 0, 1)
	}

	y0 := RoundDown(vp.MinY(), step)
	for i := 0; i < maxGridLines; i++ {
		y := y0 + float64(i)*step
		if y >= vp.MaxY() {
			break
		}
		if math.Abs(y) < step*1e-9 {
			continue
		}
		p := vp.WorldToScreen(gg.Pt(ax, y))
		s.DrawStringAnchored(FormatTick(y), p.X+3, p.Y-3, 0, 0)
	}

	if f.Highlighted {
		s.SetColor(r.cfg.colors.Cursor.Color())
		s.DrawStringAnchored(FormatPoint(f.Nearest.X, f.Nearest.Y), 8, 8, 0, 1)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
