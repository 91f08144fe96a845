package array

import (
	"slices"
	"strconv"
	"strings"
)

// Array is a shape-tagged, flat-storage multidimensional array. The shape
// is a sequence of non-negative dimension sizes and the data is stored
// flat in row major order. An array owns its storage exclusively; only Row
// views may borrow from it.
//
// The structural invariant every other runtime component depends on:
// len(data) == product(shape) at every observable point. Constructors
// establish it, and it is checked only under the vadebug build tag; in
// ordinary builds callers must uphold it.
//
// The fill flag records that the array was produced by a ragged join and
// may carry trailing fill sentinel padding.
type Array[T ArrayValue[T]] struct {
	shape []int
	data  []T
	fill  bool
}

// New constructs an array from a shape and flat data. The data length must
// equal the product of the shape; see the package invariant note.
func New[T ArrayValue[T]](shape []int, data []T) *Array[T] {
	validateShape(shape, data)
	return &Array[T]{shape: shape, data: data, fill: defaultFill[T]()}
}

// Empty is the canonical empty array: shape [0], no data.
func Empty[T ArrayValue[T]]() *Array[T] {
	return New[T]([]int{0}, nil)
}

// Unit wraps a single element as a rank-0 array.
func Unit[T ArrayValue[T]](v T) *Array[T] {
	return New(nil, []T{v})
}

// FromSlice wraps flat data as a rank-1 array.
func FromSlice[T ArrayValue[T]](data []T) *Array[T] {
	return New([]int{len(data)}, data)
}

// FromString builds a rank-1 character array from a string.
func FromString(s string) *Array[Char] {
	data := make([]Char, 0, len(s))
	for _, r := range s {
		data = append(data, Char(r))
	}
	return FromSlice(data)
}

// FromLines builds a rank-2 character array from lines of text, padding
// shorter lines to the longest with the fill sentinel.
func FromLines(lines []string) *Array[Char] {
	rows := make([][]Char, len(lines))
	maxLen := 0
	for i, line := range lines {
		for _, r := range line {
			rows[i] = append(rows[i], Char(r))
		}
		maxLen = max(maxLen, len(rows[i]))
	}
	data := make([]Char, 0, len(lines)*maxLen)
	for _, row := range rows {
		data = append(data, row...)
		for range maxLen - len(row) {
			data = append(data, 0)
		}
	}
	return New([]int{len(lines), maxLen}, data)
}

// Shape returns the array's shape. Callers must not modify it.
func (a *Array[T]) Shape() []int {
	return a.shape
}

// Data returns the flat storage in row major order.
func (a *Array[T]) Data() []T {
	return a.data
}

// Rank is the number of dimensions. 0 means scalar.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// RowCount is the leading dimension, or 1 for a scalar.
func (a *Array[T]) RowCount() int {
	if len(a.shape) == 0 {
		return 1
	}
	return a.shape[0]
}

// RowLen is the number of elements in one row: the product of all
// dimensions after the first (1 for rank <= 1).
func (a *Array[T]) RowLen() int {
	if len(a.shape) == 0 {
		return 1
	}
	return prod(a.shape[1:])
}

// FlatLen is the raw storage length.
func (a *Array[T]) FlatLen() int {
	return len(a.data)
}

// Len is the logical length. For rank-1 arrays it counts the leading
// elements before the first fill sentinel, supporting ragged semantics;
// for any other rank it equals RowCount.
func (a *Array[T]) Len() int {
	if a.Rank() == 1 {
		n := 0
		for _, v := range a.data {
			if v.IsFill() {
				break
			}
			n++
		}
		return n
	}
	return a.RowCount()
}

// Fill reports whether the array is fill-tainted.
func (a *Array[T]) Fill() bool {
	return a.fill
}

// Taint marks the array fill-tainted, recording that it may carry fill
// sentinel padding.
func (a *Array[T]) Taint() {
	a.fill = true
}

// ResetFill restores the fill flag to the element kind's default, used
// when a later exact-shape operation has resolved the array's raggedness.
func (a *Array[T]) ResetFill() {
	a.fill = defaultFill[T]()
}

// Clone deep-copies the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape: slices.Clone(a.shape),
		data:  slices.Clone(a.data),
		fill:  a.fill,
	}
}

// Convert maps every element through conv, preserving shape and fill flag.
// Used to promote one element kind to another without reshaping.
func Convert[T ArrayValue[T], U ArrayValue[U]](a *Array[T], conv func(T) U) *Array[U] {
	data := make([]U, len(a.data))
	for i, v := range a.data {
		data[i] = conv(v)
	}
	return &Array[U]{
		shape: slices.Clone(a.shape),
		data:  data,
		fill:  a.fill,
	}
}

// EmptyRow returns the identity element for fold-style row combination: a
// clone for a scalar, otherwise an empty array shaped like one row. The
// result intentionally carries no data.
func (a *Array[T]) EmptyRow() *Array[T] {
	if a.Rank() == 0 {
		return a.Clone()
	}
	return &Array[T]{
		shape: slices.Clone(a.shape[1:]),
		fill:  defaultFill[T](),
	}
}

// Truncate removes wholly-fill trailing rows introduced by ragged
// padding. It is a no-op unless the array is fill-tainted and rank >= 1,
// never inspects partially real rows, and is idempotent.
func (a *Array[T]) Truncate() {
	if !a.fill || a.Rank() == 0 {
		return
	}
	newLen := a.RowCount()
	for i := a.RowCount() - 1; i >= 0; i-- {
		if allFill(a.RowSlice(i)) {
			newLen = i
		} else {
			break
		}
	}
	a.data = a.data[:newLen*a.RowLen()]
	a.shape[0] = newLen
}

func allFill[T ArrayValue[T]](vs []T) bool {
	for _, v := range vs {
		if !v.IsFill() {
			return false
		}
	}
	return true
}

// String renders the array: scalars as a bare element, rank-1 arrays with
// the kind's delimiters and separator, higher ranks as shape then data.
func (a *Array[T]) String() string {
	var z T
	var sb strings.Builder
	switch a.Rank() {
	case 0:
		sb.WriteString(a.data[0].Format())
	case 1:
		start, end := z.Delims()
		sb.WriteString(start)
		for i, v := range a.data {
			if i > 0 {
				sb.WriteString(z.Sep())
			}
			sb.WriteString(v.Format())
		}
		sb.WriteString(end)
	default:
		sb.WriteByte('[')
		for i, dim := range a.shape {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(dim))
		}
		sb.WriteByte(',')
		for _, v := range a.data {
			sb.WriteByte(' ')
			sb.WriteString(v.Format())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func prod(shape []int) int {
	p := 1
	for _, d := range shape {
		p *= d
	}
	return p
}
