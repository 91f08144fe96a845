package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vara-lang/go-vara/rt"
	"github.com/vara-lang/go-vara/value"
)

func TestLiteral(t *testing.T) {
	ctx := rt.NewCtx()
	tests := []struct {
		name  string
		src   string
		kind  value.Kind
		shape []int
		show  string
	}{
		{"scalar", "5", value.NumKind, nil, "5"},
		{"negative float", "-2.5", value.NumKind, nil, "-2.5"},
		{"string", `"vara"`, value.CharKind, []int{4}, "vara"},
		{"escapes", `"a\nb"`, value.CharKind, []int{3}, "a\nb"},
		{"number list", "[1 2 3]", value.NumKind, []int{3}, "[1 2 3]"},
		{"nested", "[[1 2] [3 4]]", value.NumKind, []int{2, 2}, "[2 2, 1 2 3 4]"},
		{"string rows", `["ab" "cd"]`, value.CharKind, []int{2, 2}, "[2 2, a b c d]"},
		{"empty group", "[]", value.NumKind, []int{0}, "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Literal(tt.src, ctx)
			if err != nil {
				t.Fatalf("Literal(%q): %v", tt.src, err)
			}
			if got.Kind() != tt.kind {
				t.Errorf("Kind() = %s, want %s", got.Kind(), tt.kind)
			}
			if diff := cmp.Diff(tt.shape, got.Shape()); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s", diff)
			}
			if got.String() != tt.show {
				t.Errorf("String() = %q, want %q", got.String(), tt.show)
			}
		})
	}
}

func TestRaggedLiteralPads(t *testing.T) {
	ctx := rt.NewCtx()
	got, err := Literal(`["ab" "cde"]`, ctx)
	if err != nil {
		t.Fatalf("Literal: %v", err)
	}
	if diff := cmp.Diff([]int{2, 3}, got.Shape()); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
	if !got.Fill() {
		t.Errorf("ragged literal must be fill-tainted")
	}
}

func TestLiterals(t *testing.T) {
	ctx := rt.NewCtx()
	vals, err := Literals(`[1 2] "xy" 7`, ctx)
	if err != nil {
		t.Fatalf("Literals: %v", err)
	}
	if len(vals) != 3 {
		t.Fatalf("parsed %d literals, want 3", len(vals))
	}
	wantKinds := []value.Kind{value.NumKind, value.CharKind, value.NumKind}
	for i, k := range wantKinds {
		if vals[i].Kind() != k {
			t.Errorf("vals[%d].Kind() = %s, want %s", i, vals[i].Kind(), k)
		}
	}
}

func TestParseErrors(t *testing.T) {
	ctx := rt.NewCtx()
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed bracket", "[1 2"},
		{"unclosed string", `"ab`},
		{"bad number", "1x2"},
		{"stray character", "}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Literal(tt.src, ctx)
			if !errors.Is(err, rt.ErrParse) {
				t.Errorf("err = %v, want an rt.ErrParse", err)
			}
			var rerr *rt.Error
			if !errors.As(err, &rerr) {
				t.Errorf("err = %v, want an *rt.Error with a span", err)
			}
		})
	}
}
