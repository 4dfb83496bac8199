// Command quadgraph plots polynomial formulas in one variable to PNG files.
//
// Usage:
//
//	quadgraph -formula "1x^2 -1x +1" -output plot.png
//	quadgraph -formula x^2 -formula 2x -output plot-%d.png
//	quadgraph -i -output plot.png
//
// With -i, formulas and commands are read from standard input; type :help
// for the command list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"
	"github.com/gogpu/quadgraph"
)

func main() {
	var (
		formulas    formulaList
		center      pointFlag
		cursor      pointFlag
		width       = flag.Int("width", 800, "image width")
		height      = flag.Int("height", 600, "image height")
		zoom        = flag.Float64("zoom", quadgraph.DefaultZoom, "pixels per world unit")
		spacing     = flag.Float64("spacing", quadgraph.DefaultGridSpacing, "grid spacing in world units")
		variable    = flag.String("var", quadgraph.DefaultVariable, "name of the input variable")
		output      = flag.String("output", "plot.png", "output file; %d is replaced by the formula index")
		noGrid      = flag.Bool("no-grid", false, "do not draw the grid")
		noLabels    = flag.Bool("no-labels", false, "do not draw axis labels")
		interactive = flag.Bool("i", false, "read formulas and commands from standard input")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Var(&formulas, "formula", "formula to plot (repeatable)")
	flag.Var(&center, "center", "view center in world units, as x,y")
	flag.Var(&cursor, "cursor", "cursor position in pixels, as x,y")
	flag.Parse()
	formulas = append(formulas, flag.Args()...)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	quadgraph.SetLogger(logger)

	if a := gg.Accelerator(); a != nil {
		logger.Info("gpu accelerator registered", "name", a.Name())
		defer a.Close()
	}

	s := settings{
		width:    *width,
		height:   *height,
		zoom:     *zoom,
		spacing:  *spacing,
		variable: *variable,
		center:   center,
		cursor:   cursor,
		grid:     !*noGrid,
		labels:   !*noLabels,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *interactive:
		err = runInteractive(ctx, s, formulas, *output)
	case len(formulas) == 0:
		flag.Usage()
		os.Exit(2)
	default:
		err = runBatch(ctx, s, formulas, *output)
	}
	if err != nil {
		logger.Error("quadgraph failed", "err", err)
		os.Exit(1)
	}
}

// runInteractive starts a session on stdin, seeded with the last formula
// given on the command line.
func runInteractive(ctx context.Context, s settings, formulas []string, output string) error {
	sess, err := newSession(s, os.Stdout, output)
	if err != nil {
		return err
	}
	defer sess.Close()

	if n := len(formulas); n > 0 {
		if _, err := sess.exec(command{formula: formulas[n-1]}); err != nil {
			fmt.Fprintln(os.Stdout, err)
		}
	}
	return sess.run(ctx, os.Stdin)
}
