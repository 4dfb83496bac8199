// Package quadgraph parses single-variable polynomial formulas and plots
// them with gg.
//
// # Overview
//
// A formula such as "-1x^3 + 1x" is parsed into an [Expression], a sum of
// [Term] values of the form c·v^e. A [Curve] wraps an Expression and
// evaluates y = f(x). A [Sampler] walks a Curve across a [Viewport] and
// [Nearest] finds the sampled point closest to the pointer. A [Renderer]
// ties these together and draws onto any [Surface], such as *gg.Context.
//
// # Quick Start
//
//	r := quadgraph.NewRenderer(800, 600)
//	if _, err := r.SetFormula("1x^2 -1x +1"); err != nil {
//	    log.Fatal(err)
//	}
//	r.SetCursor(500, 200)
//
//	dc := gg.NewContext(800, 600)
//	if _, err := r.Render(dc); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("plot.png")
//
// # Grammar
//
// A formula is a sequence of terms separated by '+' or '-'. White space is
// ignored. Each term is an optional signed decimal coefficient, an
// optional variable name made of ASCII letters, and an optional '^'
// followed by a signed decimal exponent. There is no multiplication and
// there are no parentheses.
//
// # Errors
//
// Parsing never fails outright. Malformed terms are kept and carry a
// [ParseError]; evaluating a variable that is not bound returns an
// [UnboundVariableError]. [Curve.ProbeError] reports both.
//
// # Coordinate System
//
// World coordinates are the mathematical plane: x grows to the right and
// y grows upwards unless the viewport flips an axis. Zoom is the number of
// screen pixels per world unit and is kept within [MinZoom, MaxZoom].
package quadgraph
