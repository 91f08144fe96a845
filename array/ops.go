package array

import (
	"fmt"
	"os"
	"slices"

	"github.com/vara-lang/go-vara/debug"
	"github.com/vara-lang/go-vara/rt"
)

// Couple stacks two arrays into a rank-(r+1) array of two rows. The
// shapes must match exactly unless either side is fill-tainted, in which
// case both sides pad to the elementwise maximum shape and the result is
// fill-tainted. Anything else is a shape mismatch, reported through ctx.
func (a *Array[T]) Couple(b *Array[T], ctx *rt.Ctx) (*Array[T], error) {
	if debug.Ops() {
		fmt.Fprintf(os.Stderr, "couple %v %v\n", a.shape, b.shape)
	}
	if !slices.Equal(a.shape, b.shape) {
		if a.Rank() != b.Rank() || !(a.fill || b.fill) {
			return nil, ctx.Errorf(rt.ErrShape,
				"cannot couple arrays of shapes %v and %v", a.shape, b.shape)
		}
		target := maxShape(a.shape, b.shape)
		a = a.padTo(target)
		b = b.padTo(target)
	}
	shape := append([]int{2}, a.shape...)
	data := make([]T, 0, len(a.data)+len(b.data))
	data = append(data, a.data...)
	data = append(data, b.data...)
	res := New(shape, data)
	res.fill = a.fill || b.fill
	return res, nil
}

// Join appends a rank-r row to a rank-(r+1) array. An exactly matching
// row shape concatenates; a fill-tainted mismatch pads the row, or every
// existing row, to the elementwise maximum shape; anything else is a
// shape mismatch, reported through ctx.
func (a *Array[T]) Join(row *Array[T], ctx *rt.Ctx) (*Array[T], error) {
	if debug.Ops() {
		fmt.Fprintf(os.Stderr, "join %v %v\n", a.shape, row.shape)
	}
	if a.Rank() != row.Rank()+1 {
		return nil, ctx.Errorf(rt.ErrShape,
			"cannot join row of shape %v to array of shape %v", row.shape, a.shape)
	}
	rowShape := a.shape[1:]
	if !slices.Equal(rowShape, row.shape) {
		if !(a.fill || row.fill) {
			return nil, ctx.Errorf(rt.ErrShape,
				"cannot join row of shape %v to array of shape %v", row.shape, a.shape)
		}
		target := maxShape(rowShape, row.shape)
		if !slices.Equal(target, rowShape) {
			a = a.growRows(target)
		}
		if !slices.Equal(target, row.shape) {
			row = row.padTo(target)
		}
	}
	shape := slices.Clone(a.shape)
	shape[0]++
	data := make([]T, 0, len(a.data)+len(row.data))
	data = append(data, a.data...)
	data = append(data, row.data...)
	res := New(shape, data)
	res.fill = a.fill || row.fill
	return res, nil
}

// maxShape is the elementwise maximum of two equal-rank shapes.
func maxShape(a, b []int) []int {
	res := make([]int, len(a))
	for i := range a {
		res[i] = max(a[i], b[i])
	}
	return res
}

// padTo embeds the array into a larger same-rank shape, row-major, with
// fill sentinels in the uncovered region. The result is fill-tainted.
func (a *Array[T]) padTo(target []int) *Array[T] {
	data := make([]T, prod(target))
	for i := range data {
		data[i] = fillValue[T]()
	}
	padData(data, target, a.data, a.shape)
	res := New(slices.Clone(target), data)
	res.fill = true
	return res
}

// growRows re-lays the array so every row has the target row shape,
// padding with fill sentinels.
func (a *Array[T]) growRows(target []int) *Array[T] {
	n := a.RowCount()
	rl := prod(target)
	data := make([]T, n*rl)
	for i := range data {
		data[i] = fillValue[T]()
	}
	srcRL := a.RowLen()
	for i := range n {
		padData(data[i*rl:(i+1)*rl], target, a.data[i*srcRL:(i+1)*srcRL], a.shape[1:])
	}
	shape := append([]int{n}, target...)
	res := New(shape, data)
	res.fill = true
	return res
}

// padData copies src (shape srcShape) into the leading corner of dst
// (shape dstShape), block by block. Both shapes have equal rank and every
// src dimension is <= its dst dimension.
func padData[T ArrayValue[T]](dst []T, dstShape []int, src []T, srcShape []int) {
	if len(srcShape) <= 1 {
		copy(dst, src)
		return
	}
	dstRL := prod(dstShape[1:])
	srcRL := prod(srcShape[1:])
	for i := range srcShape[0] {
		padData(dst[i*dstRL:(i+1)*dstRL], dstShape[1:], src[i*srcRL:(i+1)*srcRL], srcShape[1:])
	}
}
