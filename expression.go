package quadgraph

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Expression is a sum of Terms, kept in the order they appeared in the
// formula. The order only matters for String.
type Expression struct {
	terms []Term
	err   *ParseError
}

// ParseExpression parses a formula such as "1x^2 -1x +1".
//
// The formula is normalized first (see NormalizeFormula), then split in
// front of every '+' or '-' that does not start a term and does not follow
// '^'. Each piece is parsed by ParseTerm. Errors of all terms are collected
// into one ParseError; the returned Expression is always usable.
func ParseExpression(formula string) Expression {
	formula = NormalizeFormula(formula)

	var e Expression
	for i := 0; i < len(formula); {
		chunk := scanComponent(formula, i)
		t := ParseTerm(chunk)
		e.err = e.err.join(t.err)
		e.terms = append(e.terms, t)
		i += len(chunk)
	}
	return e
}

// scanComponent returns the term starting at start: everything up to the
// next sign that is neither the first character nor part of an exponent.
func scanComponent(s string, start int) string {
	for i := start + 1; i < len(s); i++ {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != '^' {
			return s[start:i]
		}
	}
	return s[start:]
}

// Terms returns a copy of the parsed terms.
func (e Expression) Terms() []Term {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)
	return out
}

// Len returns the number of terms.
func (e Expression) Len() int { return len(e.terms) }

// Err returns the combined parse error of all terms, or nil.
func (e Expression) Err() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

// Variables returns the distinct variable names in order of first use.
func (e Expression) Variables() []string {
	var names []string
	for _, t := range e.terms {
		if t.variable != "" && !slices.Contains(names, t.variable) {
			names = append(names, t.variable)
		}
	}
	return names
}

// Evaluate returns the sum of all terms under b. An empty expression
// evaluates to 0. The first term error is returned with a NaN result.
func (e Expression) Evaluate(b Binding) (float64, error) {
	if e.err != nil {
		return math.NaN(), fmt.Errorf("%w: %w", ErrInvalidExpression, e.err)
	}
	sum := 0.0
	for _, t := range e.terms {
		v, err := t.Evaluate(b)
		if err != nil {
			return math.NaN(), err
		}
		sum += v
	}
	return sum, nil
}

// String reconstructs the formula. Re-parsing it yields an expression that
// evaluates identically, though the text may differ from the input.
func (e Expression) String() string {
	parts := make([]string, len(e.terms))
	for i, t := range e.terms {
		parts[i] = t.format(i != 0)
	}
	return strings.Join(parts, " ")
}
