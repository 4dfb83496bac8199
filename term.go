package quadgraph

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binding supplies the value of a single named variable during evaluation.
type Binding struct {
	Name  string
	Value float64
}

// Bind is a convenience function to create a Binding.
func Bind(name string, value float64) Binding {
	return Binding{Name: name, Value: value}
}

// Term is a single monomial c·v^e, or a bare constant c^e when it has no
// variable. A Term is immutable once parsed.
type Term struct {
	coefficient float64
	variable    string
	exponent    float64

	text string
	err  *ParseError
}

// NewTerm creates a valid Term from its parts.
func NewTerm(coefficient float64, variable string, exponent float64) Term {
	return Term{coefficient: coefficient, variable: variable, exponent: exponent}
}

// Coefficient returns the numeric factor. It is NaN when the coefficient
// text failed to parse.
func (t Term) Coefficient() float64 { return t.coefficient }

// Variable returns the variable name, or "" for a constant term.
func (t Term) Variable() string { return t.variable }

// Exponent returns the power applied to the variable (or to the
// coefficient for a constant term).
func (t Term) Exponent() float64 { return t.exponent }

// Err returns the parse error of the term, or nil.
func (t Term) Err() error {
	if t.err == nil {
		return nil
	}
	return t.err
}

// ParseTerm parses a single term such as "-1x^3", "2.5", "x" or "+4y^-2".
//
// The text must not contain a top-level sign other than an optional leading
// one; splitting a formula into terms is the job of ParseExpression.
// ParseTerm never fails: malformed input produces a Term whose Err is set.
func ParseTerm(s string) Term {
	t := Term{coefficient: 1, exponent: 1, text: s}

	i := 0
	coef := scanNumber(s, i)
	i += len(coef)

	t.variable = scanLetters(s, i)
	i += len(t.variable)

	switch {
	case coef == "":
	case isSign(coef):
		// A bare sign scales the variable; on its own it is not a number.
		if t.variable == "" {
			t.fail(coef + " not a number")
		} else if coef == "-" {
			t.coefficient = -1
		}
	default:
		c, ok := parseNumber(coef)
		if !ok {
			t.fail(coef + " not a number")
		} else {
			t.coefficient = c
		}
	}

	if i < len(s) && s[i] == '^' {
		i++
		exp := scanNumber(s, i)
		i += len(exp)
		if exp == "" {
			t.fail("^ missing exponent")
		} else if e, ok := parseNumber(exp); !ok {
			t.fail(exp + " not a number")
		} else {
			t.exponent = e
		}
	}

	if i < len(s) {
		t.fail(s[i:] + " unexpected")
	}
	if t.err != nil {
		t.coefficient = math.NaN()
	}
	return t
}

// parseNumber parses scanned number text. A value too large for float64
// becomes ±Inf rather than an error.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func (t *Term) fail(msg string) {
	t.err = t.err.join(newParseError(msg))
}

// Evaluate returns the value of the term under b.
//
// A constant term ignores b and returns coefficient^exponent. A term with a
// variable returns coefficient·value^exponent when b binds that variable
// and an *UnboundVariableError otherwise. Non-finite results such as a
// negative base raised to a fractional power are returned as NaN without
// an error.
func (t Term) Evaluate(b Binding) (float64, error) {
	if t.err != nil {
		return math.NaN(), fmt.Errorf("%w: %w", ErrInvalidExpression, t.err)
	}
	if t.variable == "" {
		return math.Pow(t.coefficient, t.exponent), nil
	}
	if b.Name != t.variable {
		return math.NaN(), &UnboundVariableError{Name: t.variable}
	}
	return t.coefficient * math.Pow(b.Value, t.exponent), nil
}

// String returns the term in a form ParseTerm accepts. Terms that failed
// to parse return their original text.
func (t Term) String() string {
	return t.format(false)
}

func (t Term) format(leadingPlus bool) string {
	if t.err != nil {
		return t.text
	}
	var sb strings.Builder
	if leadingPlus && !math.Signbit(t.coefficient) {
		sb.WriteByte('+')
	}
	sb.WriteString(formatNumber(t.coefficient))
	sb.WriteString(t.variable)
	if t.exponent != 1 {
		sb.WriteByte('^')
		sb.WriteString(formatNumber(t.exponent))
	}
	return sb.String()
}

// formatNumber prints v in plain decimal notation, never with an exponent,
// so that the scanner can read it back.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// scanNumber returns the longest prefix of s[start:] made of an optional
// leading sign followed by digits and decimal points. A sign anywhere else
// ends the scan.
func scanNumber(s string, start int) string {
	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	return s[start:i]
}

// scanLetters returns the longest run of ASCII letters starting at start.
func scanLetters(s string, start int) string {
	i := start
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	return s[start:i]
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isSign(s string) bool { return s == "+" || s == "-" }
