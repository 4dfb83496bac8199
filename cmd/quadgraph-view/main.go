// Command quadgraph-view opens a window that plots the formula being typed.
//
// Typing edits the formula, Backspace deletes, arrow keys pan, the mouse
// wheel zooms and the point of the curve nearest to the pointer is marked.
// Escape quits.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/quadgraph"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		width   = flag.Int("width", 960, "window width")
		height  = flag.Int("height", 720, "window height")
		formula = flag.String("formula", "1x^2 -1x +1", "initial formula")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

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

	v, err := newViewer(*width, *height, *formula)
	if err != nil {
		logger.Error("quadgraph-view: setup", "err", err)
		os.Exit(1)
	}
	defer v.Close()

	ebiten.SetWindowTitle("quadgraph")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("quadgraph-view: run", "err", err)
		os.Exit(1)
	}
}
