package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/gogpu/quadgraph"
)

func TestViewer_Edit(t *testing.T) {
	v, err := newViewer(320, 240, "1x^2")
	if err != nil {
		t.Fatal(err)
	}
	defer v.Close()
	if v.invalid {
		t.Fatal("initial formula marked invalid")
	}
	good := v.r.Curve()

	if !v.edit([]rune("^"), false) {
		t.Fatal("typing did not change the formula")
	}
	v.setFormula()
	if !v.invalid {
		t.Error("1x^2^ should be invalid")
	}
	if v.r.Curve() != good {
		t.Error("invalid edit replaced the curve")
	}

	if !v.edit(nil, true) {
		t.Fatal("backspace did not change the formula")
	}
	v.setFormula()
	if v.invalid || string(v.formula) != "1x^2" {
		t.Errorf("after backspace: formula %q, invalid %v", string(v.formula), v.invalid)
	}

	if v.edit(nil, false) {
		t.Error("no input reported a change")
	}
	v.formula = v.formula[:0]
	if v.edit(nil, true) {
		t.Error("backspace on empty text reported a change")
	}
}

func TestViewer_PaintOnlyWhenDirty(t *testing.T) {
	v, err := newViewer(320, 240, "2x")
	if err != nil {
		t.Fatal(err)
	}
	defer v.Close()

	if !v.paint() {
		t.Fatal("first paint did not draw")
	}
	if v.paint() {
		t.Error("second paint drew without changes")
	}

	v.pointer(160, 120)
	if !v.paint() {
		t.Error("pointer move did not redraw")
	}
	if f := v.r.Frame(); !f.HasCursor {
		t.Error("cursor not set")
	}
	v.pointer(160, 120)
	if v.paint() {
		t.Error("unchanged pointer caused a redraw")
	}

	v.pointer(-1, -1)
	v.paint()
	if f := v.r.Frame(); f.HasCursor {
		t.Error("pointer outside the window kept the cursor")
	}
}

func TestViewer_FlushAfterPaint(t *testing.T) {
	orig := quadgraph.Logger()
	t.Cleanup(func() { quadgraph.SetLogger(orig) })
	var buf bytes.Buffer
	quadgraph.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	v, err := newViewer(320, 240, "1x")
	if err != nil {
		t.Fatal(err)
	}
	defer v.Close()

	if !v.paint() {
		t.Fatal("first paint did not draw")
	}
	if !v.flush() {
		t.Errorf("flush() = false on the CPU path; log: %s", buf.String())
	}
	if v.r.NeedsRender() {
		t.Error("successful flush scheduled another frame")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected warnings: %s", buf.String())
	}
}
