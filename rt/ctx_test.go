package rt

import (
	"errors"
	"testing"
)

func TestErrorfAttributesInnermostSpan(t *testing.T) {
	ctx := NewCtx()
	ctx.Push(Span{Line: 1, Col: 1})
	ctx.Push(Span{Line: 3, Col: 7, Text: "[1 2"})
	defer ctx.Pop()
	defer ctx.Pop()

	err := ctx.Errorf(ErrShape, "cannot couple")
	if !errors.Is(err, ErrShape) {
		t.Errorf("err = %v, want an ErrShape", err)
	}
	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %T, want *Error", err)
	}
	if rerr.Span.Line != 3 || rerr.Span.Col != 7 {
		t.Errorf("Span = %v, want the innermost span 3:7", rerr.Span)
	}
}

func TestZeroCtx(t *testing.T) {
	var ctx *Ctx
	if got := ctx.Span(); got != (Span{}) {
		t.Errorf("Span() = %v, want the zero span", got)
	}
	err := (&Ctx{}).Errorf(ErrShape, "oops")
	if !errors.Is(err, ErrShape) {
		t.Errorf("err = %v, want an ErrShape", err)
	}
}
