package main

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/quadgraph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelZoomStep is the zoom change per wheel notch.
const wheelZoomStep = 10

var (
	formulaColor = gg.White
	invalidColor = gg.Hex("#ef4444")
)

// viewer is the ebiten game: it feeds input to a Renderer, draws into a
// gg canvas and uploads the pixels when a frame was drawn.
type viewer struct {
	r  *quadgraph.Renderer
	dc *gg.Context

	img     *ebiten.Image
	formula []rune
	chars   []rune
	invalid bool

	cursorX, cursorY int
}

func newViewer(width, height int, formula string) (*viewer, error) {
	face, err := quadgraph.LoadLabelFace(quadgraph.DefaultLabelSize)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	dc.SetFont(face)

	v := &viewer{
		r:       quadgraph.NewRenderer(width, height),
		dc:      dc,
		formula: []rune(formula),
		cursorX: -1,
		cursorY: -1,
	}
	v.setFormula()
	return v, nil
}

// Close releases the canvas.
func (v *viewer) Close() error { return v.dc.Close() }

// setFormula applies the edited text. An invalid formula keeps the last
// valid curve on screen and turns the text red.
func (v *viewer) setFormula() {
	_, err := v.r.SetFormula(string(v.formula))
	v.invalid = err != nil
	v.r.Invalidate()
}

// edit applies typed characters and backspace, reporting whether the text
// changed.
func (v *viewer) edit(typed []rune, backspace bool) bool {
	changed := false
	if backspace && len(v.formula) > 0 {
		v.formula = v.formula[:len(v.formula)-1]
		changed = true
	}
	if len(typed) > 0 {
		v.formula = append(v.formula, typed...)
		changed = true
	}
	return changed
}

// pointer moves the cursor marker, ignoring positions outside the window.
func (v *viewer) pointer(x, y int) {
	if x == v.cursorX && y == v.cursorY {
		return
	}
	v.cursorX, v.cursorY = x, y
	vp := v.r.Viewport()
	if x < 0 || y < 0 || float64(x) >= vp.Width || float64(y) >= vp.Height {
		v.r.ClearCursor()
		return
	}
	v.r.SetCursor(float64(x), float64(y))
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	v.chars = ebiten.AppendInputChars(v.chars[:0])
	backspace := inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		(ebiten.IsKeyPressed(ebiten.KeyBackspace) && inpututil.KeyPressDuration(ebiten.KeyBackspace) > 30)
	if v.edit(v.chars, backspace) {
		v.setFormula()
	}

	v.r.ApplyInput(quadgraph.InputState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	})

	if _, wy := ebiten.Wheel(); wy != 0 {
		v.r.AddZoom(wy * wheelZoomStep)
	}

	v.pointer(ebiten.CursorPosition())
	return nil
}

// paint renders a frame into the canvas if needed and reports whether the
// pixels changed.
func (v *viewer) paint() bool {
	drawn, err := v.r.Render(v.dc)
	if err != nil {
		quadgraph.Logger().Warn("quadgraph-view: render", "err", err)
	}
	if !drawn {
		return false
	}
	col := formulaColor
	if v.invalid {
		col = invalidColor
	}
	v.dc.SetColor(col.Color())
	v.dc.DrawStringAnchored("y = "+string(v.formula), 8, float64(v.dc.Height())-8, 0, 0)
	return true
}

// flush completes pending GPU work on the canvas and reports whether its
// pixels are ready. On failure the frame is drawn again on the next tick.
func (v *viewer) flush() bool {
	if err := v.dc.FlushGPU(); err != nil {
		quadgraph.Logger().Warn("quadgraph-view: flush", "err", err)
		v.r.Invalidate()
		return false
	}
	return true
}

func (v *viewer) Draw(screen *ebiten.Image) {
	w, h := v.dc.Width(), v.dc.Height()
	if v.img == nil || v.img.Bounds().Dx() != w || v.img.Bounds().Dy() != h {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(w, h)
		v.r.Invalidate()
	}
	if v.paint() && v.flush() {
		v.img.WritePixels(v.dc.ResizeTarget().Data())
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		if err := v.dc.Resize(outsideWidth, outsideHeight); err == nil {
			v.r.Resize(outsideWidth, outsideHeight)
		}
	}
	return v.dc.Width(), v.dc.Height()
}
