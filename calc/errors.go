package calc

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported = errors.New("unsupported character")
	ErrEndOfInput  = errors.New("unexpected end of input")
	ErrUnexpected  = errors.New("unexpected token")
	ErrTrailing    = errors.New("trailing tokens")
	ErrZero        = errors.New("division by zero")
)

type CharError struct {
	Char rune
	Position
}

func (e CharError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Position, ErrUnsupported, e.Char)
}

func (e CharError) Unwrap() error {
	return ErrUnsupported
}

// Expectation names the class of token a grammar rule required.
type Expectation int

const (
	ExpectNothing Expectation = iota
	ExpectTerm
	ExpectRightParen
)

func (e Expectation) String() string {
	switch e {
	case ExpectTerm:
		return "number or '('"
	case ExpectRightParen:
		return "')'"
	default:
		return "end of input"
	}
}

type SyntaxError struct {
	Cause    error
	Expected Expectation
	Actual   Token
	Position
}

func syntaxError(cause error, expected Expectation, actual Token) error {
	return SyntaxError{
		Cause:    cause,
		Expected: expected,
		Actual:   actual,
		Position: actual.Position,
	}
}

func (e SyntaxError) Error() string {
	switch e.Cause {
	case ErrUnexpected:
		return fmt.Sprintf("%s: %s: expected %s, got %s", e.Position, e.Cause, e.Expected, e.Actual)
	case ErrTrailing:
		return fmt.Sprintf("%s: %s starting at %s", e.Position, e.Cause, e.Actual)
	default:
		return fmt.Sprintf("%s: %s", e.Position, e.Cause)
	}
}

func (e SyntaxError) Unwrap() error {
	return e.Cause
}
