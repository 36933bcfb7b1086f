package calc

import (
	"fmt"
	"strconv"
)

type Op rune

const (
	Add Op = plus
	Sub Op = dash
	Mul Op = star
	Quo Op = slash
)

func (o Op) String() string {
	return string(o)
}

// Expr is a node of a parsed expression. The set of nodes is closed: only
// Literal and Binary implement it.
type Expr interface {
	fmt.Stringer
	isExpr()
}

type Literal struct {
	Value int64
}

func (_ Literal) isExpr() {}

func (i Literal) String() string {
	return strconv.FormatInt(i.Value, 10)
}

type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (_ Binary) isExpr() {}

func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Equal reports whether a and b have the same shape with the same operators
// and values at every position.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Value == y.Value
	case Binary:
		y, ok := b.(Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}

var binaryOps = map[rune]Op{
	Plus:  Add,
	Minus: Sub,
	Times: Mul,
	Div:   Quo,
}
