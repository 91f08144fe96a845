package array

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The derived Arrayish operations must not care whether the value owns its
// storage, borrows it, or is a row projection.
func TestArrayishUniformity(t *testing.T) {
	owned := New([]int{2, 3}, nums(1, 2, 3, 4, 5, 6))
	borrowed := Slice[Num]{Sh: owned.Shape(), Dt: owned.Data()}
	tests := []struct {
		name string
		ar   Arrayish[Num]
	}{
		{"owned array", owned},
		{"borrowed pair", borrowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RankOf(tt.ar); got != 2 {
				t.Errorf("RankOf() = %d, want 2", got)
			}
			if got := FlatLenOf(tt.ar); got != 6 {
				t.Errorf("FlatLenOf() = %d, want 6", got)
			}
			if got := RowLenOf(tt.ar); got != 3 {
				t.Errorf("RowLenOf() = %d, want 3", got)
			}
			var chunks [][]Num
			for c := range Chunks(tt.ar) {
				chunks = append(chunks, c)
			}
			want := [][]Num{nums(1, 2, 3), nums(4, 5, 6)}
			if diff := cmp.Diff(want, chunks); diff != "" {
				t.Errorf("Chunks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRowAsArrayish(t *testing.T) {
	cube := New([]int{2, 2, 2}, nums(1, 2, 3, 4, 5, 6, 7, 8))
	row := cube.Row(1)
	if got := RankOf[Num](row); got != 2 {
		t.Errorf("RankOf(row) = %d, want 2", got)
	}
	if got := RowLenOf[Num](row); got != 2 {
		t.Errorf("RowLenOf(row) = %d, want 2", got)
	}
	var chunks [][]Num
	for c := range Chunks[Num](row) {
		chunks = append(chunks, c)
	}
	want := [][]Num{nums(5, 6), nums(7, 8)}
	if diff := cmp.Diff(want, chunks); diff != "" {
		t.Errorf("Chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestShapePrefixesMatch(t *testing.T) {
	a := New([]int{2, 3}, nums(1, 2, 3, 4, 5, 6))
	tests := []struct {
		name string
		b    Arrayish[Char]
		want bool
	}{
		{"same shape", FromLines([]string{"abc", "def"}), true},
		{"scalar matches everything", Unit[Char]('x'), true},
		{"mismatched leading dim", FromString("abc"), false},
		{"matching leading dim", FromString("ab"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShapePrefixesMatch[Num, Char](a, tt.b); got != tt.want {
				t.Errorf("ShapePrefixesMatch() = %v, want %v", got, tt.want)
			}
		})
	}
}
