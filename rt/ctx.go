// Package rt provides the execution context for the vara array runtime.
//
// A Ctx is threaded through every fallible array operation. It carries a
// stack of source spans so that an error surfacing from deep inside a row
// combination can be attributed to the call site that triggered it. The
// array core never inspects a Ctx beyond error attribution.
package rt

import "fmt"

// Span is a source location: 1-based line and column plus the source text
// fragment, when known. The zero Span means "no location".
type Span struct {
	Line, Col int
	Text      string
}

func (s Span) String() string {
	if s.Text != "" {
		return fmt.Sprintf("%d:%d %q", s.Line, s.Col, s.Text)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Ctx is the execution context. The zero value is usable and attributes
// errors to no location.
type Ctx struct {
	spans []Span
}

func NewCtx() *Ctx {
	return &Ctx{}
}

// Push enters a call site. Every Push must be paired with a Pop.
func (c *Ctx) Push(s Span) {
	c.spans = append(c.spans, s)
}

func (c *Ctx) Pop() {
	c.spans = c.spans[:len(c.spans)-1]
}

// Span returns the innermost call-site span, or the zero Span.
func (c *Ctx) Span() Span {
	if c == nil || len(c.spans) == 0 {
		return Span{}
	}
	return c.spans[len(c.spans)-1]
}

// Errorf builds an *Error wrapping the given class sentinel, attributed to
// the innermost span. The class should be one of the package sentinels.
func (c *Ctx) Errorf(class error, format string, args ...any) error {
	return &Error{
		Span: c.Span(),
		Err:  fmt.Errorf("%w: "+format, append([]any{class}, args...)...),
	}
}
