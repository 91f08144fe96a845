// Package parse reads the literal array notation used by the va tool:
// numbers, double-quoted strings (character arrays), and bracketed groups
// of literals. A bracketed group rebuilds through the row-rebuilding
// protocol with the fill flag set, so ragged groups like ["ab" "cde"]
// pad to a rectangle.
package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/vara-lang/go-vara/array"
	"github.com/vara-lang/go-vara/debug"
	"github.com/vara-lang/go-vara/rt"
	"github.com/vara-lang/go-vara/value"
)

type scanner struct {
	src  []rune
	pos  int
	line int
	col  int
	ctx  *rt.Ctx
}

func newScanner(src string, ctx *rt.Ctx) *scanner {
	return &scanner{src: []rune(src), line: 1, col: 1, ctx: ctx}
}

// Literal parses exactly one literal from src.
func Literal(src string, ctx *rt.Ctx) (value.Value, error) {
	vals, err := Literals(src, ctx)
	if err != nil {
		return value.Value{}, err
	}
	if len(vals) != 1 {
		return value.Value{}, &rt.Error{
			Err: fmt.Errorf("%w: want one literal, have %d", rt.ErrParse, len(vals)),
		}
	}
	return vals[0], nil
}

// Literals parses a whitespace-separated sequence of literals from src.
func Literals(src string, ctx *rt.Ctx) ([]value.Value, error) {
	if debug.Parse() {
		fmt.Fprintf(os.Stderr, "parse %q\n", src)
	}
	s := newScanner(src, ctx)
	var vals []value.Value
	for {
		s.skipSpace()
		if s.eof() {
			return vals, nil
		}
		v, err := s.literal()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

func (s *scanner) literal() (value.Value, error) {
	switch c := s.peek(); {
	case c == '[':
		return s.group()
	case c == '"':
		return s.str()
	case c == '-' || c == '.' || unicode.IsDigit(c) || unicode.IsLetter(c):
		return s.atom()
	default:
		return value.Value{}, s.errorf("unexpected character %q", c)
	}
}

// group parses a bracketed sequence of literals and rebuilds them as the
// rows of one array.
func (s *scanner) group() (value.Value, error) {
	open := s.span()
	s.next()
	var rows []value.Value
	for {
		s.skipSpace()
		if s.eof() {
			return value.Value{}, s.errorfAt(open, "unclosed bracket")
		}
		if s.peek() == ']' {
			s.next()
			break
		}
		v, err := s.literal()
		if err != nil {
			return value.Value{}, err
		}
		rows = append(rows, v)
	}
	s.ctx.Push(open)
	defer s.ctx.Pop()
	return value.FromRows(rows, true, s.ctx)
}

func (s *scanner) str() (value.Value, error) {
	start := s.span()
	s.next()
	var sb strings.Builder
	for {
		if s.eof() {
			return value.Value{}, s.errorfAt(start, "unclosed string")
		}
		c := s.next()
		switch c {
		case '"':
			return value.OfChar(array.FromString(sb.String())), nil
		case '\\':
			if s.eof() {
				return value.Value{}, s.errorfAt(start, "unclosed string")
			}
			switch e := s.next(); e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '0':
				sb.WriteByte(0)
			case '"', '\\':
				sb.WriteRune(e)
			default:
				return value.Value{}, s.errorf("unknown escape %q", e)
			}
		default:
			sb.WriteRune(c)
		}
	}
}

// atom parses a number or a bare word. The word "nan" denotes the numeric
// fill sentinel, so fill behavior can be written down directly.
func (s *scanner) atom() (value.Value, error) {
	at := s.span()
	start := s.pos
	for !s.eof() && !unicode.IsSpace(s.peek()) && s.peek() != ']' && s.peek() != '[' {
		s.next()
	}
	word := string(s.src[start:s.pos])
	if word == "nan" {
		return value.OfNum(array.Unit(array.Num(0).Fill())), nil
	}
	f, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return value.Value{}, s.errorfAt(at, "bad number %q", word)
	}
	return value.OfNum(array.Unit(array.Num(f))), nil
}

func (s *scanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	return s.src[s.pos]
}

func (s *scanner) next() rune {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *scanner) span() rt.Span {
	return rt.Span{Line: s.line, Col: s.col}
}

func (s *scanner) errorf(format string, args ...any) error {
	return s.errorfAt(s.span(), format, args...)
}

func (s *scanner) errorfAt(at rt.Span, format string, args ...any) error {
	return &rt.Error{
		Span: at,
		Err:  fmt.Errorf("%w: "+format, append([]any{rt.ErrParse}, args...)...),
	}
}
