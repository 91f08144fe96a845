// Package value provides the dynamic value union of the vara runtime: one
// type ranging over the four array kinds, so code that does not know an
// array's element kind statically (the parser, the REPL, the evaluator)
// has a single thing to pass around.
package value

import (
	"cmp"
	"slices"

	"github.com/vara-lang/go-vara/array"
	"github.com/vara-lang/go-vara/rt"
)

// Kind tags the element kind of a Value.
type Kind int

const (
	NumKind Kind = iota
	ByteKind
	CharKind
	FnKind
)

func (k Kind) String() string {
	switch k {
	case NumKind:
		return "number"
	case ByteKind:
		return "byte"
	case CharKind:
		return "character"
	case FnKind:
		return "function"
	}
	return "kind(?)"
}

// Value is a tagged union: exactly the arm matching the kind is set.
type Value struct {
	kind Kind
	num  *array.Array[array.Num]
	byt  *array.Array[array.Byte]
	char *array.Array[array.Char]
	fn   *array.Array[*array.Fn]
}

func OfNum(a *array.Array[array.Num]) Value {
	return Value{kind: NumKind, num: a}
}

func OfByte(a *array.Array[array.Byte]) Value {
	return Value{kind: ByteKind, byt: a}
}

func OfChar(a *array.Array[array.Char]) Value {
	return Value{kind: CharKind, char: a}
}

func OfFn(a *array.Array[*array.Fn]) Value {
	return Value{kind: FnKind, fn: a}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Num returns the numeric arm, or nil.
func (v Value) Num() *array.Array[array.Num] {
	return v.num
}

// Byte returns the byte arm, or nil.
func (v Value) Byte() *array.Array[array.Byte] {
	return v.byt
}

// Char returns the character arm, or nil.
func (v Value) Char() *array.Array[array.Char] {
	return v.char
}

// Fn returns the function arm, or nil.
func (v Value) Fn() *array.Array[*array.Fn] {
	return v.fn
}

func (v Value) Shape() []int {
	switch v.kind {
	case NumKind:
		return v.num.Shape()
	case ByteKind:
		return v.byt.Shape()
	case CharKind:
		return v.char.Shape()
	case FnKind:
		return v.fn.Shape()
	}
	return nil
}

func (v Value) Rank() int {
	return len(v.Shape())
}

func (v Value) FlatLen() int {
	switch v.kind {
	case NumKind:
		return v.num.FlatLen()
	case ByteKind:
		return v.byt.FlatLen()
	case CharKind:
		return v.char.FlatLen()
	case FnKind:
		return v.fn.FlatLen()
	}
	return 0
}

func (v Value) Fill() bool {
	switch v.kind {
	case NumKind:
		return v.num.Fill()
	case ByteKind:
		return v.byt.Fill()
	case CharKind:
		return v.char.Fill()
	case FnKind:
		return v.fn.Fill()
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case NumKind:
		return v.num.String()
	case ByteKind:
		return v.byt.String()
	case CharKind:
		return v.char.String()
	case FnKind:
		return v.fn.String()
	}
	return ""
}

// Truncate removes wholly-fill trailing rows of the underlying array.
func (v Value) Truncate() {
	switch v.kind {
	case NumKind:
		v.num.Truncate()
	case ByteKind:
		v.byt.Truncate()
	case CharKind:
		v.char.Truncate()
	case FnKind:
		v.fn.Truncate()
	}
}

// promote unifies the kinds of two values for combination: a byte array
// promotes to numbers when met by a number array. Other kind mixes do not
// unify.
func promote(a, b Value) (Value, Value, bool) {
	if a.kind == b.kind {
		return a, b, true
	}
	if a.kind == NumKind && b.kind == ByteKind {
		return a, OfNum(array.Convert(b.byt, array.ByteToNum)), true
	}
	if a.kind == ByteKind && b.kind == NumKind {
		return OfNum(array.Convert(a.byt, array.ByteToNum)), b, true
	}
	return a, b, false
}

// Couple stacks two values into a two-row value, promoting bytes to
// numbers when the kinds mix that way.
func (v Value) Couple(o Value, ctx *rt.Ctx) (Value, error) {
	a, b, ok := promote(v, o)
	if !ok {
		return Value{}, ctx.Errorf(rt.ErrShape,
			"cannot couple %s array with %s array", v.kind, o.kind)
	}
	switch a.kind {
	case NumKind:
		res, err := a.num.Couple(b.num, ctx)
		return OfNum(res), err
	case ByteKind:
		res, err := a.byt.Couple(b.byt, ctx)
		return OfByte(res), err
	case CharKind:
		res, err := a.char.Couple(b.char, ctx)
		return OfChar(res), err
	case FnKind:
		res, err := a.fn.Couple(b.fn, ctx)
		return OfFn(res), err
	}
	return Value{}, ctx.Errorf(rt.ErrShape, "cannot couple %s array", a.kind)
}

// Join appends a row value, promoting like Couple.
func (v Value) Join(o Value, ctx *rt.Ctx) (Value, error) {
	a, b, ok := promote(v, o)
	if !ok {
		return Value{}, ctx.Errorf(rt.ErrShape,
			"cannot join %s array to %s array", o.kind, v.kind)
	}
	switch a.kind {
	case NumKind:
		res, err := a.num.Join(b.num, ctx)
		return OfNum(res), err
	case ByteKind:
		res, err := a.byt.Join(b.byt, ctx)
		return OfByte(res), err
	case CharKind:
		res, err := a.char.Join(b.char, ctx)
		return OfChar(res), err
	case FnKind:
		res, err := a.fn.Join(b.fn, ctx)
		return OfFn(res), err
	}
	return Value{}, ctx.Errorf(rt.ErrShape, "cannot join %s array", a.kind)
}

// FromRows rebuilds one value from a sequence of row values, following
// the row-rebuilding protocol: no rows give an empty numeric array, one
// row gains a leading dimension, more rows couple then join. The fill
// flag poisons ragged rows the same way array.FromRowArrays does.
func FromRows(rows []Value, fill bool, ctx *rt.Ctx) (Value, error) {
	if len(rows) == 0 {
		return OfNum(array.Empty[array.Num]()), nil
	}
	if len(rows) == 1 {
		// Delegate to the array layer so the leading dimension insertion
		// stays in one place.
		one := rows[0]
		switch one.kind {
		case NumKind:
			res, err := array.FromRowArrays(slices.Values([]*array.Array[array.Num]{one.num}), fill, ctx)
			return OfNum(res), err
		case ByteKind:
			res, err := array.FromRowArrays(slices.Values([]*array.Array[array.Byte]{one.byt}), fill, ctx)
			return OfByte(res), err
		case CharKind:
			res, err := array.FromRowArrays(slices.Values([]*array.Array[array.Char]{one.char}), fill, ctx)
			return OfChar(res), err
		case FnKind:
			res, err := array.FromRowArrays(slices.Values([]*array.Array[*array.Fn]{one.fn}), fill, ctx)
			return OfFn(res), err
		}
		return Value{}, ctx.Errorf(rt.ErrShape, "cannot build rows from %s array", one.kind)
	}
	acc := rows[0]
	var err error
	for i, row := range rows[1:] {
		if fill {
			row = row.taint()
		}
		if i == 0 {
			acc, err = acc.Couple(row, ctx)
		} else {
			acc, err = acc.Join(row, ctx)
		}
		if err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}

// taint marks the underlying array fill-tainted, mirroring the fill OR in
// array.FromRowArrays.
func (v Value) taint() Value {
	switch v.kind {
	case NumKind:
		a := v.num.Clone()
		a.Taint()
		return OfNum(a)
	case ByteKind:
		a := v.byt.Clone()
		a.Taint()
		return OfByte(a)
	case CharKind:
		a := v.char.Clone()
		a.Taint()
		return OfChar(a)
	case FnKind:
		a := v.fn.Clone()
		a.Taint()
		return OfFn(a)
	}
	return v
}

// Eq compares two values. Same kinds use fill-aware array equality;
// number/byte mixes use cross-kind value equality after promotion, which
// does not skip fill sentinels; other mixes are never equal.
func (v Value) Eq(o Value) bool {
	if v.kind == o.kind {
		switch v.kind {
		case NumKind:
			return v.num.Eq(o.num)
		case ByteKind:
			return v.byt.Eq(o.byt)
		case CharKind:
			return v.char.Eq(o.char)
		case FnKind:
			return v.fn.Eq(o.fn)
		}
	}
	if v.kind == NumKind && o.kind == ByteKind {
		return array.ValEq(v.num, o.byt, array.ByteToNum)
	}
	if v.kind == ByteKind && o.kind == NumKind {
		return array.ValEq(o.num, v.byt, array.ByteToNum)
	}
	return false
}

// Cmp orders two values: same kinds by the strict array order,
// number/byte mixes by cross-kind value order, anything else by kind.
func (v Value) Cmp(o Value) int {
	if v.kind == o.kind {
		switch v.kind {
		case NumKind:
			return v.num.Cmp(o.num)
		case ByteKind:
			return v.byt.Cmp(o.byt)
		case CharKind:
			return v.char.Cmp(o.char)
		case FnKind:
			return v.fn.Cmp(o.fn)
		}
	}
	if v.kind == NumKind && o.kind == ByteKind {
		return array.ValCmp(v.num, o.byt, array.ByteToNum)
	}
	if v.kind == ByteKind && o.kind == NumKind {
		return -array.ValCmp(o.num, v.byt, array.ByteToNum)
	}
	return cmp.Compare(v.kind, o.kind)
}
