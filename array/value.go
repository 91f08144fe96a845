package array

// ArrayValue is the capability set every storable element kind implements.
// The kind set is closed: Num, Byte, Char and *Fn. The sealed method keeps
// it that way; the runtime's type system has exactly these four kinds and
// the rest of the runtime dispatches over them exhaustively.
//
// Every method is total. Sentinel fill values are ordinary values of the
// kind and every operation is defined for them too.
type ArrayValue[T any] interface {
	// Cmp is a total order over the kind. Kinds with non-orderable values
	// (NaN for Num) fall back to a secondary rank rather than panicking.
	Cmp(T) int
	// Fill returns the kind's reserved fill sentinel.
	Fill() T
	// IsFill reports whether the value is the fill sentinel. Num matches
	// by is-NaN, since NaN never compares equal to itself bitwise.
	IsFill() bool
	// DefaultFill reports whether newly constructed arrays of the kind
	// start fill-tainted. True only for Char: text is the common case
	// for ragged joins.
	DefaultFill() bool
	// KindName is the kind's name in diagnostics.
	KindName() string
	// Delims returns the opening and closing delimiters for rank-1
	// display. Char arrays render as a bare run.
	Delims() (string, string)
	// Sep separates elements in rank-1 display.
	Sep() string
	// Format renders a single element.
	Format() string

	sealed()
}

// Eq is the derived per-element equality: Cmp == 0.
func Eq[T ArrayValue[T]](a, b T) bool {
	return a.Cmp(b) == 0
}

func fillValue[T ArrayValue[T]]() T {
	var z T
	return z.Fill()
}

func defaultFill[T ArrayValue[T]]() bool {
	var z T
	return z.DefaultFill()
}
