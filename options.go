package quadgraph

import "github.com/gogpu/gg"

// Option configures a Renderer during creation.
// Use functional options to customize the initial view and appearance.
//
// Example:
//
//	// Default view: origin centered, 100 pixels per unit
//	r := quadgraph.NewRenderer(800, 600)
//
//	// Zoomed out, centered on (3, 1), without grid
//	r := quadgraph.NewRenderer(800, 600,
//	    quadgraph.WithZoom(40),
//	    quadgraph.WithCenter(3, 1),
//	    quadgraph.WithGrid(false))
type Option func(*config)

// Colors is the palette used by a Renderer.
type Colors struct {
	Background gg.RGBA
	Grid       gg.RGBA
	Axis       gg.RGBA
	Origin     gg.RGBA
	Curve      gg.RGBA
	Cursor     gg.RGBA
	Label      gg.RGBA
}

// DefaultColors returns the dark theme: white grid on black, blue curve.
func DefaultColors() Colors {
	return Colors{
		Background: gg.Black,
		Grid:       gg.RGBA2(1, 1, 1, 0.35),
		Axis:       gg.White,
		Origin:     gg.Hex("#ffffff55"),
		Curve:      gg.Hex("#3b82f6"),
		Cursor:     gg.Hex("#3b82f6"),
		Label:      gg.RGBA2(1, 1, 1, 0.8),
	}
}

// config holds optional configuration for Renderer creation.
type config struct {
	zoom             float64
	centerX, centerY float64
	flipX, flipY     bool
	gridSpacing      float64
	grid             bool
	labels           bool
	lineWidth        float64
	panSpeed         float64
	cursorRadius     float64
	colors           Colors
	curveOptions     []CurveOption
}

// defaultConfig returns the default renderer configuration.
func defaultConfig() config {
	return config{
		zoom:         DefaultZoom,
		gridSpacing:  DefaultGridSpacing,
		grid:         true,
		labels:       true,
		lineWidth:    0.5,
		panSpeed:     DefaultPanSpeed,
		cursorRadius: 1,
		colors:       DefaultColors(),
	}
}

// WithZoom sets the initial zoom in pixels per world unit.
// The value is clamped to [MinZoom, MaxZoom].
func WithZoom(zoom float64) Option {
	return func(c *config) {
		c.zoom = zoom
	}
}

// WithCenter sets the world point shown in the middle of the screen.
func WithCenter(x, y float64) Option {
	return func(c *config) {
		c.centerX, c.centerY = x, y
	}
}

// WithAxisDirection reverses the horizontal and/or vertical screen
// direction of the world axes. By default x grows to the right and y
// grows upwards.
func WithAxisDirection(flipX, flipY bool) Option {
	return func(c *config) {
		c.flipX, c.flipY = flipX, flipY
	}
}

// WithGridSpacing sets the world distance between grid lines. The sample
// step is spacing/zoom, so it also controls sampling density.
func WithGridSpacing(spacing float64) Option {
	return func(c *config) {
		if spacing > 0 {
			c.gridSpacing = spacing
		}
	}
}

// WithGrid enables or disables drawing the grid.
func WithGrid(enabled bool) Option {
	return func(c *config) {
		c.grid = enabled
	}
}

// WithLabels enables or disables axis labels and the cursor readout.
// Labels are drawn only on surfaces that can draw text.
func WithLabels(enabled bool) Option {
	return func(c *config) {
		c.labels = enabled
	}
}

// WithLineWidth sets the stroke width in screen pixels.
func WithLineWidth(width float64) Option {
	return func(c *config) {
		if width > 0 {
			c.lineWidth = width
		}
	}
}

// WithPanSpeed sets how many screen pixels one tick of held input pans.
func WithPanSpeed(speed float64) Option {
	return func(c *config) {
		c.panSpeed = speed
	}
}

// WithCursorRadius sets the world distance within which the nearest
// sampled point is highlighted.
func WithCursorRadius(radius float64) Option {
	return func(c *config) {
		c.cursorRadius = radius
	}
}

// WithColors replaces the palette.
func WithColors(colors Colors) Option {
	return func(c *config) {
		c.colors = colors
	}
}

// WithCurveOptions sets the options applied to curves created by
// Renderer.SetFormula.
func WithCurveOptions(opts ...CurveOption) Option {
	return func(c *config) {
		c.curveOptions = append(c.curveOptions, opts...)
	}
}
