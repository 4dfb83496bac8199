package quadgraph

import (
	"errors"
	"strings"
)

// ErrUnboundVariable is returned when a term names a variable that the
// supplied Binding does not provide.
var ErrUnboundVariable = errors.New("quadgraph: unbound variable")

// ErrInvalidExpression is returned when an expression that failed to parse
// is evaluated anyway.
var ErrInvalidExpression = errors.New("quadgraph: invalid expression")

// UnboundVariableError reports the variable name that had no binding.
// It unwraps to ErrUnboundVariable.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "Couldn't find an input for " + e.Name
}

func (e *UnboundVariableError) Unwrap() error { return ErrUnboundVariable }

// ParseError carries the human-readable messages collected while parsing a
// formula. Messages keep the order in which terms appeared.
type ParseError struct {
	Messages []string
}

func (e *ParseError) Error() string {
	return strings.Join(e.Messages, " ")
}

// join appends the messages of other to e. A nil receiver is allowed.
func (e *ParseError) join(other *ParseError) *ParseError {
	if other == nil {
		return e
	}
	if e == nil {
		e = &ParseError{}
	}
	e.Messages = append(e.Messages, other.Messages...)
	return e
}

func newParseError(msg string) *ParseError {
	return &ParseError{Messages: []string{msg}}
}
