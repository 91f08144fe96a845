package array

import "iter"

// Arrayish is any array-like value: something exposing a shape and a flat
// data view, regardless of whether it owns the storage. *Array, Row and
// the borrowed Slice pair all implement it (and since Go slices are
// usable for both reading and writing, Slice covers the mutable borrowed
// case too). Generic algorithms elsewhere accept an Arrayish and get one
// code path over all of them without copying data.
type Arrayish[T ArrayValue[T]] interface {
	Shape() []int
	Data() []T
}

// Slice is a borrowed (shape, data) pair.
type Slice[T ArrayValue[T]] struct {
	Sh []int
	Dt []T
}

func (s Slice[T]) Shape() []int {
	return s.Sh
}

func (s Slice[T]) Data() []T {
	return s.Dt
}

// RankOf is the number of dimensions of an array-like.
func RankOf[T ArrayValue[T]](ar Arrayish[T]) int {
	return len(ar.Shape())
}

// FlatLenOf is the raw data length of an array-like.
func FlatLenOf[T ArrayValue[T]](ar Arrayish[T]) int {
	return len(ar.Data())
}

// RowLenOf is the product of all dimensions after the first.
func RowLenOf[T ArrayValue[T]](ar Arrayish[T]) int {
	sh := ar.Shape()
	if len(sh) == 0 {
		return 1
	}
	return prod(sh[1:])
}

// Chunks iterates the array-like's rows as slices of its flat data.
func Chunks[T ArrayValue[T]](ar Arrayish[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		rl := RowLenOf(ar)
		if rl == 0 {
			return
		}
		data := ar.Data()
		for i := 0; i+rl <= len(data); i += rl {
			if !yield(data[i : i+rl]) {
				return
			}
		}
	}
}

// ShapePrefixesMatch reports elementwise equality over the overlapping
// shape prefix of two array-likes.
func ShapePrefixesMatch[T ArrayValue[T], U ArrayValue[U]](a Arrayish[T], b Arrayish[U]) bool {
	as, bs := a.Shape(), b.Shape()
	for i := range min(len(as), len(bs)) {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
