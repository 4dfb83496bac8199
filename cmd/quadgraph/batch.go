package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/quadgraph"
	"golang.org/x/sync/errgroup"
)

// settings holds the command line options shared by every renderer.
type settings struct {
	width, height int
	zoom          float64
	spacing       float64
	variable      string
	center        pointFlag
	cursor        pointFlag
	grid          bool
	labels        bool
}

func (s settings) newRenderer() *quadgraph.Renderer {
	r := quadgraph.NewRenderer(s.width, s.height,
		quadgraph.WithZoom(s.zoom),
		quadgraph.WithCenter(s.center.X, s.center.Y),
		quadgraph.WithGridSpacing(s.spacing),
		quadgraph.WithGrid(s.grid),
		quadgraph.WithLabels(s.labels),
		quadgraph.WithCurveOptions(quadgraph.WithVariable(s.variable)))
	if s.cursor.valid {
		r.SetCursor(s.cursor.X, s.cursor.Y)
	}
	return r
}

// newContext returns a canvas of the configured size with the label font set.
func (s settings) newContext() (*gg.Context, error) {
	if s.width <= 0 || s.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", s.width, s.height)
	}
	face, err := quadgraph.LoadLabelFace(quadgraph.DefaultLabelSize)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(s.width, s.height)
	dc.SetFont(face)
	return dc, nil
}

// plot is the outcome of rendering one formula.
type plot struct {
	formula string
	output  string
	curve   *quadgraph.Curve
	frame   quadgraph.Frame
	err     error // formula rejected
}

// outputName derives the file name of the i-th of n plots. A single plot
// uses pattern as is; otherwise %d is replaced by i, or the index is added
// before the extension.
func outputName(pattern string, i, n int) string {
	if n == 1 {
		return pattern
	}
	if strings.Contains(pattern, "%d") {
		return fmt.Sprintf(pattern, i)
	}
	ext := filepath.Ext(pattern)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(pattern, ext), i, ext)
}

// renderAll renders every formula to its own file in parallel. Rejected
// formulas are reported in the result; I/O errors abort the batch.
func renderAll(ctx context.Context, s settings, formulas []string, pattern string) ([]plot, error) {
	plots := make([]plot, len(formulas))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, f := range formulas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := plot{formula: f, output: outputName(pattern, i, len(formulas))}
			r := s.newRenderer()
			p.curve, p.err = r.SetFormula(f)
			if p.err != nil {
				plots[i] = p
				return nil
			}

			dc, err := s.newContext()
			if err != nil {
				return err
			}
			defer dc.Close()
			if _, err := r.Render(dc); err != nil {
				return fmt.Errorf("render %q: %w", f, err)
			}
			if err := dc.SavePNG(p.output); err != nil {
				return fmt.Errorf("save %s: %w", p.output, err)
			}
			p.frame = r.Frame()
			plots[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plots, nil
}

func runBatch(ctx context.Context, s settings, formulas []string, pattern string) error {
	plots, err := renderAll(ctx, s, formulas, pattern)
	if err != nil {
		return err
	}
	rejected := 0
	for _, p := range plots {
		if p.err != nil {
			rejected++
			fmt.Fprintf(os.Stdout, "%q: %v\n", p.formula, p.err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: y = %s\n", p.output, p.curve)
		if p.frame.HasNearest {
			fmt.Fprintf(os.Stdout, "  nearest %s at distance %.3f\n",
				quadgraph.FormatPoint(p.frame.Nearest.X, p.frame.Nearest.Y), p.frame.Nearest.Distance)
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d formulas rejected", rejected, len(plots))
	}
	return nil
}
