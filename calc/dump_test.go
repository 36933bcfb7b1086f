package calc

import (
	"testing"
)

func TestDebug(t *testing.T) {
	tests := []struct {
		Expr  string
		Debug string
		Infix string
		Depth int
	}{
		{
			Expr:  "4",
			Debug: "literal(4)",
			Infix: "4",
			Depth: 1,
		},
		{
			Expr:  "4 + 1",
			Debug: "add(literal(4), literal(1))",
			Infix: "(4 + 1)",
			Depth: 2,
		},
		{
			Expr:  "8 - 3 - 2",
			Debug: "subtract(subtract(literal(8), literal(3)), literal(2))",
			Infix: "((8 - 3) - 2)",
			Depth: 3,
		},
		{
			Expr:  "2 * (3 / 4)",
			Debug: "multiply(literal(2), divide(literal(3), literal(4)))",
			Infix: "(2 * (3 / 4))",
			Depth: 3,
		},
	}
	for _, tt := range tests {
		expr, err := ParseString(tt.Expr)
		if err != nil {
			t.Errorf("%s: fail to parse: %s", tt.Expr, err)
			continue
		}
		if got := Debug(expr); got != tt.Debug {
			t.Errorf("%s: debug mismatched! want %q, got %q", tt.Expr, tt.Debug, got)
		}
		if got := expr.String(); got != tt.Infix {
			t.Errorf("%s: infix mismatched! want %q, got %q", tt.Expr, tt.Infix, got)
		}
		if got := Depth(expr); got != tt.Depth {
			t.Errorf("%s: depth mismatched! want %d, got %d", tt.Expr, tt.Depth, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		Token
		String string
		Text   string
	}{
		{Token: Token{Type: Plus}, String: "<add>", Text: "+"},
		{Token: Token{Type: Value, Value: 42}, String: "number(42)", Text: "42"},
		{Token: Token{Type: RightParen}, String: "<end-group>", Text: ")"},
		{Token: Token{Type: EOF}, String: "<eof>", Text: ""},
	}
	for _, tt := range tests {
		if got := tt.Token.String(); got != tt.String {
			t.Errorf("string mismatched! want %q, got %q", tt.String, got)
		}
		if got := tt.Token.Text(); got != tt.Text {
			t.Errorf("text mismatched! want %q, got %q", tt.Text, got)
		}
	}
}
