package array

import (
	"cmp"
	"slices"
)

// Eq is fill-aware equality. The shapes and flat lengths must match; the
// data then compare over the runs obtained by skipping a leading run of
// fill sentinels in each array and stopping at the next sentinel on either
// side, up to the shorter run. When fills only ever occur as a trailing
// pad this reduces to comparing the non-padded prefixes.
//
// Eq deliberately diverges from Cmp, which never skips sentinels. Sorting
// and deduplication elsewhere in the runtime rely on that asymmetry.
func (a *Array[T]) Eq(b *Array[T]) bool {
	if !slices.Equal(a.shape, b.shape) || len(a.data) != len(b.data) {
		return false
	}
	ad := fillRun(a.data)
	bd := fillRun(b.data)
	for i := range min(len(ad), len(bd)) {
		if ad[i].Cmp(bd[i]) != 0 {
			return false
		}
	}
	return true
}

// fillRun skips a leading run of fill sentinels and returns the following
// run of non-sentinel elements.
func fillRun[T ArrayValue[T]](data []T) []T {
	i := 0
	for i < len(data) && data[i].IsFill() {
		i++
	}
	j := i
	for j < len(data) && !data[j].IsFill() {
		j++
	}
	return data[i:j]
}

// Cmp is the strict total order: data compare pairwise in storage order
// via the element order, fill sentinels included, and a full tie breaks by
// flat length (shorter sorts first).
func (a *Array[T]) Cmp(b *Array[T]) int {
	for i := range min(len(a.data), len(b.data)) {
		if c := a.data[i].Cmp(b.data[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.data), len(b.data))
}

// ValEq is cross-kind value equality: the other array's elements convert
// into this kind and every data element compares pairwise. Unlike Eq it
// does not skip fill sentinels; both behaviors are observable contracts
// and are kept distinct.
func ValEq[T ArrayValue[T], U ArrayValue[U]](a *Array[T], b *Array[U], conv func(U) T) bool {
	if !slices.Equal(a.shape, b.shape) || len(a.data) != len(b.data) {
		return false
	}
	for i, v := range a.data {
		if !Eq(v, conv(b.data[i])) {
			return false
		}
	}
	return true
}

// ValCmp is the cross-kind total order, with the same contract as Cmp.
func ValCmp[T ArrayValue[T], U ArrayValue[U]](a *Array[T], b *Array[U], conv func(U) T) int {
	for i := range min(len(a.data), len(b.data)) {
		if c := a.data[i].Cmp(conv(b.data[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.data), len(b.data))
}
