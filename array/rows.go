package array

import (
	"cmp"
	"iter"
	"slices"

	"github.com/vara-lang/go-vara/rt"
)

// Row is a non-owning view of one top-level slice of an array. It holds
// only the owning array and a row index, so it is trivially copyable, and
// its shape is the owner's shape with the leading dimension dropped.
//
// A Row must not outlive its array. Any number of Rows may coexist read
// only, but none may be used across a RowsMut iteration of the owner; Go
// has no borrow checker, so this single-writer/multiple-reader discipline
// is the caller's to uphold.
type Row[T ArrayValue[T]] struct {
	arr *Array[T]
	idx int
}

// Shape is the owning array's shape minus its leading dimension.
func (r Row[T]) Shape() []int {
	if len(r.arr.shape) == 0 {
		return nil
	}
	return r.arr.shape[1:]
}

// Data is the row's slice of the owner's flat storage.
func (r Row[T]) Data() []T {
	return r.arr.RowSlice(r.idx)
}

// Eq compares rows pairwise by element equality.
func (r Row[T]) Eq(o Row[T]) bool {
	a, b := r.Data(), o.Data()
	for i := range min(len(a), len(b)) {
		if !Eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Cmp compares rows pairwise in storage order, breaking a full tie by the
// owning arrays' flat lengths.
func (r Row[T]) Cmp(o Row[T]) int {
	a, b := r.Data(), o.Data()
	for i := range min(len(a), len(b)) {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(r.arr.data), len(o.arr.data))
}

// Row returns the i-th row view in constant time. An index outside
// RowCount is an internal invariant violation and panics.
func (a *Array[T]) Row(i int) Row[T] {
	if i < 0 || i >= a.RowCount() {
		panic("array: row index out of range")
	}
	return Row[T]{arr: a, idx: i}
}

// RowSlice returns the i-th row's slice of flat storage.
func (a *Array[T]) RowSlice(i int) []T {
	rl := a.RowLen()
	return a.data[i*rl : (i+1)*rl]
}

// Rows iterates the array's row views in index order. The sequence is
// finite, has exactly RowCount elements, and restarts on each range.
func (a *Array[T]) Rows() iter.Seq[Row[T]] {
	return func(yield func(Row[T]) bool) {
		for i := range a.RowCount() {
			if !yield(Row[T]{arr: a, idx: i}) {
				return
			}
		}
	}
}

// RowsRev iterates row views in descending index order.
func (a *Array[T]) RowsRev() iter.Seq[Row[T]] {
	return func(yield func(Row[T]) bool) {
		for i := a.RowCount() - 1; i >= 0; i-- {
			if !yield(Row[T]{arr: a, idx: i}) {
				return
			}
		}
	}
}

// RowsMut iterates the rows as mutable slices of the flat storage, in
// index order. It requires exclusive access to the array for the duration
// of the iteration and invalidates outstanding Row views.
func (a *Array[T]) RowsMut() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		rl := a.RowLen()
		for i := range a.RowCount() {
			if !yield(a.data[i*rl : (i+1)*rl]) {
				return
			}
		}
	}
}

// IntoRows consumes the array into owned rank-reduced arrays, draining
// RowLen elements at a time from the front of the flat storage. A rank-0
// array yields exactly one row equal to the whole array. The source array
// must not be used after.
func (a *Array[T]) IntoRows() iter.Seq[*Array[T]] {
	rowShape, rowCount, rowLen := a.rowDims()
	return func(yield func(*Array[T]) bool) {
		for i := range rowCount {
			row := New(slices.Clone(rowShape), slices.Clone(a.data[i*rowLen:(i+1)*rowLen]))
			if !yield(row) {
				return
			}
		}
	}
}

// IntoRowsRev is IntoRows' partition drained from the back: rows are
// yielded in descending index order with content equal to the
// corresponding forward row.
func (a *Array[T]) IntoRowsRev() iter.Seq[*Array[T]] {
	rowShape, rowCount, rowLen := a.rowDims()
	return func(yield func(*Array[T]) bool) {
		for i := rowCount - 1; i >= 0; i-- {
			row := New(slices.Clone(rowShape), slices.Clone(a.data[i*rowLen:(i+1)*rowLen]))
			if !yield(row) {
				return
			}
		}
	}
}

func (a *Array[T]) rowDims() (rowShape []int, rowCount, rowLen int) {
	rowLen = a.RowLen()
	if len(a.shape) == 0 {
		return nil, 1, rowLen
	}
	return a.shape[1:], a.shape[0], rowLen
}

// FromRowArrays rebuilds a single array from a finite sequence of row
// arrays. No rows produce the canonical empty array; one row becomes the
// sole row of a rank-(r+1) array; two or more rows are combined by Couple
// and then row-append Join, with each row's fill flag OR'd with the given
// fill first, so one ragged row poisons the whole result's fill status.
// Shape mismatch failures from Couple and Join propagate unchanged.
func FromRowArrays[T ArrayValue[T]](rows iter.Seq[*Array[T]], fill bool, ctx *rt.Ctx) (*Array[T], error) {
	next, stop := iter.Pull(rows)
	defer stop()
	value, ok := next()
	if !ok {
		return Empty[T](), nil
	}
	count := 1
	for {
		row, ok := next()
		if !ok {
			break
		}
		row.fill = row.fill || fill
		count++
		var err error
		if count == 2 {
			value, err = value.Couple(row, ctx)
		} else {
			value, err = value.Join(row, ctx)
		}
		if err != nil {
			return nil, err
		}
	}
	if count == 1 {
		value.shape = append([]int{1}, value.shape...)
	}
	return value, nil
}
