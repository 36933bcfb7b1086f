package calc

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Source hands out the characters of an input one at a time. It never reads
// ahead of what its caller asks for.
type Source struct {
	input *bufio.Reader
	err   error
	done  bool
}

func Chars(r io.Reader) *Source {
	return &Source{
		input: bufio.NewReader(r),
	}
}

func CharsString(str string) *Source {
	return Chars(strings.NewReader(str))
}

// Next returns the next character and true, or false once the input is
// exhausted.
func (s *Source) Next() (rune, bool) {
	if s.done {
		return 0, false
	}
	c, _, err := s.input.ReadRune()
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return 0, false
	}
	return c, true
}

// Err reports the read error that ended the sequence, if any.
func (s *Source) Err() error {
	return s.err
}
