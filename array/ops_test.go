package array

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vara-lang/go-vara/rt"
)

func TestCouple(t *testing.T) {
	ctx := rt.NewCtx()
	t.Run("same shape stacks", func(t *testing.T) {
		a := FromSlice(nums(1, 2, 3))
		b := FromSlice(nums(4, 5, 6))
		got, err := a.Couple(b, ctx)
		if err != nil {
			t.Fatalf("Couple: %v", err)
		}
		if diff := cmp.Diff([]int{2, 3}, got.Shape()); diff != "" {
			t.Errorf("shape mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(nums(1, 2, 3, 4, 5, 6), got.Data()); diff != "" {
			t.Errorf("data mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("scalars couple to a pair", func(t *testing.T) {
		got, err := Unit(Num(1)).Couple(Unit(Num(2)), ctx)
		if err != nil {
			t.Fatalf("Couple: %v", err)
		}
		if diff := cmp.Diff([]int{2}, got.Shape()); diff != "" {
			t.Errorf("shape mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("mismatch without fill errors", func(t *testing.T) {
		_, err := FromSlice(nums(1, 2)).Couple(FromSlice(nums(1, 2, 3)), ctx)
		if !errors.Is(err, rt.ErrShape) {
			t.Errorf("err = %v, want an rt.ErrShape", err)
		}
	})
	t.Run("fill pads ragged sides", func(t *testing.T) {
		a := FromString("ab")
		b := FromString("cdef")
		got, err := a.Couple(b, ctx)
		if err != nil {
			t.Fatalf("Couple: %v", err)
		}
		if diff := cmp.Diff([]int{2, 4}, got.Shape()); diff != "" {
			t.Errorf("shape mismatch (-want +got):\n%s", diff)
		}
		want := []Char{'a', 'b', 0, 0, 'c', 'd', 'e', 'f'}
		if diff := cmp.Diff(want, got.Data()); diff != "" {
			t.Errorf("data mismatch (-want +got):\n%s", diff)
		}
		if !got.Fill() {
			t.Errorf("padded result must be fill-tainted")
		}
	})
}

func TestJoin(t *testing.T) {
	ctx := rt.NewCtx()
	t.Run("exact row appends", func(t *testing.T) {
		a := New([]int{2, 2}, nums(1, 2, 3, 4))
		got, err := a.Join(FromSlice(nums(5, 6)), ctx)
		if err != nil {
			t.Fatalf("Join: %v", err)
		}
		if diff := cmp.Diff([]int{3, 2}, got.Shape()); diff != "" {
			t.Errorf("shape mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("rank mismatch errors", func(t *testing.T) {
		a := New([]int{2, 2}, nums(1, 2, 3, 4))
		_, err := a.Join(Unit(Num(5)), ctx)
		if !errors.Is(err, rt.ErrShape) {
			t.Errorf("err = %v, want an rt.ErrShape", err)
		}
	})
	t.Run("short row pads", func(t *testing.T) {
		a := New([]int{1, 3}, []Char{'a', 'b', 'c'})
		a.fill = true
		got, err := a.Join(FromString("d"), ctx)
		if err != nil {
			t.Fatalf("Join: %v", err)
		}
		want := []Char{'a', 'b', 'c', 'd', 0, 0}
		if diff := cmp.Diff(want, got.Data()); diff != "" {
			t.Errorf("data mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("long row regrows existing rows", func(t *testing.T) {
		a := New([]int{2, 2}, []Char{'a', 'b', 'c', 'd'})
		a.fill = true
		got, err := a.Join(FromString("efg"), ctx)
		if err != nil {
			t.Fatalf("Join: %v", err)
		}
		if diff := cmp.Diff([]int{3, 3}, got.Shape()); diff != "" {
			t.Errorf("shape mismatch (-want +got):\n%s", diff)
		}
		want := []Char{'a', 'b', 0, 'c', 'd', 0, 'e', 'f', 'g'}
		if diff := cmp.Diff(want, got.Data()); diff != "" {
			t.Errorf("data mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRaggedJoinScenario(t *testing.T) {
	ctx := rt.NewCtx()
	rows := []*Array[Char]{FromString("ab"), FromString("cde"), FromString("f")}
	got, err := FromRowArrays(slices.Values(rows), true, ctx)
	if err != nil {
		t.Fatalf("FromRowArrays: %v", err)
	}
	if diff := cmp.Diff([]int{3, 3}, got.Shape()); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
	want := []Char{'a', 'b', 0, 'c', 'd', 'e', 'f', 0, 0}
	if diff := cmp.Diff(want, got.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
	if !got.Fill() {
		t.Errorf("ragged join must taint the result")
	}
}

func TestTruncateAfterRaggedJoin(t *testing.T) {
	ctx := rt.NewCtx()
	rows := []*Array[Char]{FromString("ab"), FromString("")}
	got, err := FromRowArrays(slices.Values(rows), true, ctx)
	if err != nil {
		t.Fatalf("FromRowArrays: %v", err)
	}
	if diff := cmp.Diff([]int{2, 2}, got.Shape()); diff != "" {
		t.Fatalf("shape mismatch (-want +got):\n%s", diff)
	}
	got.Truncate()
	if diff := cmp.Diff([]int{1, 2}, got.Shape()); diff != "" {
		t.Errorf("shape after Truncate (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Char{'a', 'b'}, got.Data()); diff != "" {
		t.Errorf("data after Truncate (-want +got):\n%s", diff)
	}
}
