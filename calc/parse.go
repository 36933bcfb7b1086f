package calc

import (
	"io"
	"slices"
)

// Parser builds an Expr from the tokens of a Scanner with a single token of
// lookahead:
//
//	add   := mul add'
//	add'  := ε | ('+'|'-') mul add'
//	mul   := term mul'
//	mul'  := ε | ('*'|'/') term mul'
//	term  := <number> | '(' add ')'
type Parser struct {
	scan *Scanner
	head Token
	full bool

	Tracer
}

func NewParser(scan *Scanner) *Parser {
	return &Parser{
		scan:   scan,
		Tracer: discardTracer{},
	}
}

func Parse(r io.Reader) (Expr, error) {
	return NewParser(Scan(Chars(r))).Parse()
}

func ParseString(str string) (Expr, error) {
	return NewParser(ScanString(str)).Parse()
}

// Parse reads a whole expression. The input must end right after it.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !tok.Is(EOF) {
		err = syntaxError(ErrTrailing, ExpectNothing, tok)
		p.Error("parse", err)
		return nil, err
	}
	return expr, nil
}

type operation struct {
	op   Op
	expr Expr
}

func (p *Parser) parseAdd() (Expr, error) {
	p.Enter("add")
	defer p.Leave("add")

	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	list, err := p.parseTail("add'", p.parseMul, Plus, Minus)
	if err != nil {
		return nil, err
	}
	return fold(left, list), nil
}

func (p *Parser) parseMul() (Expr, error) {
	p.Enter("mul")
	defer p.Leave("mul")

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	list, err := p.parseTail("mul'", p.parseTerm, Times, Div)
	if err != nil {
		return nil, err
	}
	return fold(left, list), nil
}

// parseTail collects the (operator, operand) pairs following the first
// operand of a precedence level. It stops without consuming anything as
// soon as the head token is not one of kinds.
func (p *Parser) parseTail(rule string, operand func() (Expr, error), kinds ...rune) ([]operation, error) {
	p.Enter(rule)
	defer p.Leave(rule)

	var list []operation
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !slices.Contains(kinds, tok.Type) {
			return list, nil
		}
		p.consume()

		expr, err := operand()
		if err != nil {
			return nil, err
		}
		list = append(list, operation{
			op:   binaryOps[tok.Type],
			expr: expr,
		})
	}
}

// fold makes each pair the new root of the tree with the tree built so far
// as its left operand, which gives left associativity.
func fold(left Expr, list []operation) Expr {
	for _, o := range list {
		left = Binary{
			Op:    o.op,
			Left:  left,
			Right: o.expr,
		}
	}
	return left
}

func (p *Parser) parseTerm() (Expr, error) {
	p.Enter("term")
	defer p.Leave("term")

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case Value:
		return Literal{Value: int64(tok.Value)}, nil
	case LeftParen:
		expr, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !tok.Is(RightParen) {
			return nil, p.unexpected("term", ExpectRightParen, tok)
		}
		return expr, nil
	default:
		return nil, p.unexpected("term", ExpectTerm, tok)
	}
}

func (p *Parser) unexpected(rule string, want Expectation, tok Token) error {
	cause := ErrUnexpected
	if tok.Is(EOF) {
		cause = ErrEndOfInput
	}
	err := syntaxError(cause, want, tok)
	p.Error(rule, err)
	return err
}

func (p *Parser) peek() (Token, error) {
	if p.full {
		return p.head, nil
	}
	tok, err := p.scan.Scan()
	if err != nil {
		p.Error("scan", err)
		return tok, err
	}
	p.head, p.full = tok, true
	return tok, nil
}

func (p *Parser) next() (Token, error) {
	tok, err := p.peek()
	if err == nil {
		p.consume()
	}
	return tok, err
}

func (p *Parser) consume() {
	p.full = false
}
