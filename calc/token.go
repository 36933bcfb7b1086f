package calc

import (
	"fmt"
	"strconv"
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

const (
	EOF rune = -(1 + iota)
	Value
	Plus
	Minus
	Times
	Div
	LeftParen
	RightParen
)

type Token struct {
	Type  rune
	Value uint64
	Position
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<eof>"
	case Value:
		return fmt.Sprintf("number(%d)", t.Value)
	case Plus:
		return "<add>"
	case Minus:
		return "<subtract>"
	case Times:
		return "<multiply>"
	case Div:
		return "<divide>"
	case LeftParen:
		return "<begin-group>"
	case RightParen:
		return "<end-group>"
	default:
		return "<unknown>"
	}
}

// Text gives back the token as it would appear in an expression.
func (t Token) Text() string {
	switch t.Type {
	case Value:
		return strconv.FormatUint(t.Value, 10)
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Div:
		return "/"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	default:
		return ""
	}
}

func (t Token) Is(kind rune) bool {
	return t.Type == kind
}

const (
	plus   = '+'
	dash   = '-'
	star   = '*'
	slash  = '/'
	lparen = '('
	rparen = ')'
	nl     = '\n'
)

var operators = map[rune]rune{
	plus:   Plus,
	dash:   Minus,
	star:   Times,
	slash:  Div,
	lparen: LeftParen,
	rparen: RightParen,
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
