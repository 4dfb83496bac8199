package quadgraph

import (
	"math"
	"math/rand/v2"
)

// DefaultVariable is the variable name a Curve binds unless configured
// otherwise.
const DefaultVariable = "x"

// probeSample picks the point at which ProbeError evaluates a curve.
var probeSample = rand.Float64

// CurveOption configures a Curve during creation.
type CurveOption func(*Curve)

// WithVariable sets the variable name the curve binds its input to.
func WithVariable(name string) CurveOption {
	return func(c *Curve) {
		c.variable = name
	}
}

// Curve is a single-variable function y = f(x) backed by an Expression.
// Curves are replaced, never mutated, when the formula changes.
type Curve struct {
	source   string
	expr     Expression
	variable string
}

// NewCurve parses formula into a Curve. It always returns a usable Curve;
// check ProbeError before trusting its values.
func NewCurve(formula string, opts ...CurveOption) *Curve {
	c := &Curve{
		source:   formula,
		expr:     ParseExpression(formula),
		variable: DefaultVariable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the formula text the curve was created from.
func (c *Curve) Source() string { return c.source }

// Expression returns the parsed expression.
func (c *Curve) Expression() Expression { return c.expr }

// Variable returns the name bound to x during evaluation.
func (c *Curve) Variable() string { return c.variable }

// Evaluate returns f(x).
func (c *Curve) Evaluate(x float64) (float64, error) {
	return c.expr.Evaluate(Bind(c.variable, x))
}

// Y returns f(x), or NaN when evaluation fails.
func (c *Curve) Y(x float64) float64 {
	y, err := c.Evaluate(x)
	if err != nil {
		return math.NaN()
	}
	return y
}

// ProbeError reports whether the curve can be drawn.
//
// It returns the parse error if there is one. Otherwise it evaluates the
// curve once at a pseudo-random point and returns the evaluation error,
// which catches formulas such as "1y" whose variable is never bound.
func (c *Curve) ProbeError() error {
	if err := c.expr.Err(); err != nil {
		return err
	}
	if _, err := c.Evaluate(probeSample()); err != nil {
		return err
	}
	return nil
}

// String returns the reconstructed formula.
func (c *Curve) String() string { return c.expr.String() }
