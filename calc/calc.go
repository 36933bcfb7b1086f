// Package calc evaluates integer arithmetic expressions made of unsigned
// literals, the binary operators + - * / and parentheses.
//
// Evaluation is a pull pipeline: the Parser asks the Scanner for one token
// at a time and the Scanner asks its Source for one character at a time.
// Nothing is shared between two evaluations, so Evaluate may be called from
// several goroutines at once.
package calc

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Evaluate parses and computes source. The returned error is one of the
// errors of this package with a stack attached; its message is left intact.
func Evaluate(source string) (int64, error) {
	return EvaluateReader(strings.NewReader(source))
}

func EvaluateReader(r io.Reader) (int64, error) {
	return EvaluateWith(NewParser(Scan(Chars(r))))
}

// EvaluateWith runs an already configured Parser to completion and evaluates
// its result.
func EvaluateWith(p *Parser) (int64, error) {
	expr, err := p.Parse()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	res, err := Eval(expr)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return res, nil
}
