package calc

import (
	"io"
	"strconv"
	"strings"
)

// Debug renders the structure of expr, one function-like form per node:
// add(literal(4), literal(1)).
func Debug(expr Expr) string {
	var str strings.Builder
	debugExpr(&str, expr)
	return str.String()
}

func debugExpr(w io.Writer, expr Expr) {
	switch v := expr.(type) {
	case Literal:
		io.WriteString(w, "literal")
		io.WriteString(w, "(")
		io.WriteString(w, strconv.FormatInt(v.Value, 10))
		io.WriteString(w, ")")
	case Binary:
		io.WriteString(w, opNames[v.Op])
		io.WriteString(w, "(")
		debugExpr(w, v.Left)
		io.WriteString(w, ", ")
		debugExpr(w, v.Right)
		io.WriteString(w, ")")
	default:
		io.WriteString(w, "unknown")
	}
}

var opNames = map[Op]string{
	Add: "add",
	Sub: "subtract",
	Mul: "multiply",
	Quo: "divide",
}

// Depth gives the number of nodes on the longest path from expr to a leaf.
func Depth(expr Expr) int {
	b, ok := expr.(Binary)
	if !ok {
		return 1
	}
	return 1 + max(Depth(b.Left), Depth(b.Right))
}
