package quadgraph

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseTerm(t *testing.T) {
	tests := []struct {
		in       string
		coef     float64
		variable string
		exp      float64
	}{
		{"-1x^3", -1, "x", 3},
		{"x", 1, "x", 1},
		{"+x", 1, "x", 1},
		{"-x", -1, "x", 1},
		{"2.5", 2.5, "", 1},
		{"3x^2", 3, "x", 2},
		{"+4y^-2", 4, "y", -2},
		{".5x^.5", 0.5, "x", 0.5},
		{"abcx", 1, "abcx", 1},
		{"2^3", 2, "", 3},
		{"", 1, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			term := ParseTerm(tt.in)
			if err := term.Err(); err != nil {
				t.Fatalf("ParseTerm(%q).Err() = %v, want nil", tt.in, err)
			}
			if term.Coefficient() != tt.coef {
				t.Errorf("Coefficient() = %v, want %v", term.Coefficient(), tt.coef)
			}
			if term.Variable() != tt.variable {
				t.Errorf("Variable() = %q, want %q", term.Variable(), tt.variable)
			}
			if term.Exponent() != tt.exp {
				t.Errorf("Exponent() = %v, want %v", term.Exponent(), tt.exp)
			}
		})
	}
}

func TestParseTerm_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3x", "1.2.3 not a number"},
		{"-", "- not a number"},
		{"+", "+ not a number"},
		{".", ". not a number"},
		{"x^", "^ missing exponent"},
		{"x^1.2.3", "1.2.3 not a number"},
		{"x^-", "- not a number"},
		{"2x*3", "*3 unexpected"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			term := ParseTerm(tt.in)
			err := term.Err()
			if err == nil {
				t.Fatalf("ParseTerm(%q).Err() = nil, want error", tt.in)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Err() = %q, want it to contain %q", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Err() = %T, want *ParseError", err)
			}
			if got := term.String(); got != tt.in {
				t.Errorf("String() = %q, want original text %q", got, tt.in)
			}
		})
	}
}

func TestParseTerm_Overflow(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	tests := []struct {
		in        string
		coef, exp float64
	}{
		{huge + "x", math.Inf(1), 1},
		{"-" + huge + "x", math.Inf(-1), 1},
		{"x^" + huge, 1, math.Inf(1)},
	}
	for _, tt := range tests {
		term := ParseTerm(tt.in)
		if err := term.Err(); err != nil {
			t.Errorf("ParseTerm(%.12q...) error = %v, want nil", tt.in, err)
			continue
		}
		if term.Coefficient() != tt.coef || term.Exponent() != tt.exp {
			t.Errorf("ParseTerm(%.12q...) = %v, %v; want %v, %v",
				tt.in, term.Coefficient(), term.Exponent(), tt.coef, tt.exp)
		}
	}

	if v, err := ParseTerm(huge + "x").Evaluate(Bind("x", 2)); err != nil || !math.IsInf(v, 1) {
		t.Errorf("Evaluate() = %v, %v; want +Inf, nil", v, err)
	}
}

func TestTerm_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		term string
		b    Binding
		want float64
	}{
		{"monomial", "3x^2", Bind("x", 2), 12},
		{"negative coefficient", "-1x^3", Bind("x", 2), -8},
		{"constant", "5", Bind("x", 100), 5},
		{"constant power", "2^3", Binding{}, 8},
		{"negative exponent", "x^-1", Bind("x", 4), 0.25},
		{"other variable", "2t", Bind("t", 1.5), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTerm(tt.term).Evaluate(tt.b)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerm_EvaluateUnbound(t *testing.T) {
	_, err := ParseTerm("2y").Evaluate(Bind("x", 1))
	if !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("Evaluate() error = %v, want ErrUnboundVariable", err)
	}
	var ue *UnboundVariableError
	if !errors.As(err, &ue) || ue.Name != "y" {
		t.Errorf("Evaluate() error = %#v, want UnboundVariableError{Name: \"y\"}", err)
	}
}

func TestTerm_EvaluateNaN(t *testing.T) {
	// A negative base raised to a fractional power is not a number, which
	// propagates as a value rather than an error.
	got, err := ParseTerm("x^0.5").Evaluate(Bind("x", -4))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Evaluate() = %v, want NaN", got)
	}
}

func TestTerm_EvaluateInvalid(t *testing.T) {
	got, err := ParseTerm("1.2.3x").Evaluate(Bind("x", 1))
	if !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("Evaluate() error = %v, want ErrInvalidExpression", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Evaluate() = %v, want NaN", got)
	}
}

func TestTerm_String(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{NewTerm(-1, "x", 3), "-1x^3"},
		{NewTerm(1, "x", 1), "1x"},
		{NewTerm(0, "x", 2), "0x^2"},
		{NewTerm(2.5, "", 1), "2.5"},
		{NewTerm(1e21, "", 1), "1000000000000000000000"},
		{NewTerm(4, "y", -2), "4y^-2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.term.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		s     string
		start int
		want  string
	}{
		{"-12x", 0, "-12"},
		{"1-2x", 0, "1"},
		{"--1", 0, "-"},
		{"x^-2", 2, "-2"},
		{"1.5.2", 0, "1.5.2"},
		{"abc", 0, ""},
		{"12", 2, ""},
	}

	for _, tt := range tests {
		if got := scanNumber(tt.s, tt.start); got != tt.want {
			t.Errorf("scanNumber(%q, %d) = %q, want %q", tt.s, tt.start, got, tt.want)
		}
	}
}
