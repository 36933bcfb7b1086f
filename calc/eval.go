package calc

import (
	"fmt"
)

type BinaryFunc func(int64, int64) (int64, error)

var binaryFuncs = map[Op]BinaryFunc{
	Add: doAdd,
	Sub: doSub,
	Mul: doMul,
	Quo: doQuo,
}

func doAdd(left, right int64) (int64, error) {
	return left + right, nil
}

func doSub(left, right int64) (int64, error) {
	return left - right, nil
}

func doMul(left, right int64) (int64, error) {
	return left * right, nil
}

// doQuo truncates toward zero.
func doQuo(left, right int64) (int64, error) {
	if right == 0 {
		return 0, ErrZero
	}
	return left / right, nil
}

// Eval computes the value of expr, the left operand of a node always
// before its right operand.
func Eval(expr Expr) (int64, error) {
	switch e := expr.(type) {
	case Literal:
		return e.Value, nil
	case Binary:
		return evalBinary(e)
	default:
		return 0, fmt.Errorf("%T: unsupported expression", expr)
	}
}

func evalBinary(b Binary) (int64, error) {
	fn, ok := binaryFuncs[b.Op]
	if !ok {
		return 0, fmt.Errorf("%s: unsupported operator", b.Op)
	}
	left, err := Eval(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := Eval(b.Right)
	if err != nil {
		return 0, err
	}
	return fn(left, right)
}
