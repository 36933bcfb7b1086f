package calc

import (
	"iter"
	"unicode"
)

// unread marks the pending slot of a Scanner as empty.
const unread rune = -1

// Scanner turns the characters of a Source into tokens, one token per call
// to Scan.
type Scanner struct {
	src     *Source
	pending rune
	prev    rune

	Position
}

func Scan(src *Source) *Scanner {
	scan := Scanner{
		src:     src,
		pending: unread,
		prev:    unread,
	}
	scan.Line = 1
	return &scan
}

func ScanString(str string) *Scanner {
	return Scan(CharsString(str))
}

// Scan returns the next token. Once the input is exhausted, every call
// returns a token of type EOF.
func (s *Scanner) Scan() (Token, error) {
	var tok Token

	c, ok := s.read()
	for ok && unicode.IsSpace(c) {
		c, ok = s.read()
	}
	if !ok {
		tok.Type = EOF
		tok.Position = s.Position
		tok.Column++
		return tok, s.src.Err()
	}
	tok.Position = s.Position
	if isDigit(c) {
		s.scanNumber(c, &tok)
		return tok, nil
	}
	kind, ok := operators[c]
	if !ok {
		return tok, CharError{
			Char:     c,
			Position: tok.Position,
		}
	}
	tok.Type = kind
	return tok, nil
}

// Tokens yields the remaining tokens up to, but not including, EOF. A
// lexical error is yielded once and ends the sequence.
func (s *Scanner) Tokens() iter.Seq2[Token, error] {
	fn := func(yield func(Token, error) bool) {
		for {
			tok, err := s.Scan()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Is(EOF) || !yield(tok, nil) {
				return
			}
		}
	}
	return fn
}

func (s *Scanner) scanNumber(c rune, tok *Token) {
	tok.Type = Value
	tok.Value = uint64(c - '0')
	for {
		c, ok := s.read()
		if !ok {
			return
		}
		if !isDigit(c) {
			s.pending = c
			return
		}
		tok.Value = tok.Value*10 + uint64(c-'0')
	}
}

func (s *Scanner) read() (rune, bool) {
	if c := s.pending; c != unread {
		s.pending = unread
		return c, true
	}
	c, ok := s.src.Next()
	if !ok {
		return c, ok
	}
	if s.prev == nl {
		s.Line++
		s.Column = 0
	}
	s.Column++
	s.prev = c
	return c, true
}

// Tokenize collects all the tokens of str.
func Tokenize(str string) ([]Token, error) {
	var list []Token
	for tok, err := range ScanString(str).Tokens() {
		if err != nil {
			return nil, err
		}
		list = append(list, tok)
	}
	return list, nil
}
