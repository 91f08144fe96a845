package array

import (
	"cmp"
	"strconv"
)

// Primitive identifies a built-in operation a function value may stand for.
type Primitive int

const (
	// Noop is the do-nothing primitive. It doubles as the fill sentinel
	// for the function kind.
	Noop Primitive = iota
	Couple
	Join
	Truncate
)

func (p Primitive) String() string {
	switch p {
	case Noop:
		return "noop"
	case Couple:
		return "couple"
	case Join:
		return "join"
	case Truncate:
		return "truncate"
	}
	return "primitive(" + strconv.Itoa(int(p)) + ")"
}

// Fn is the function kind: a shared reference to a function or primitive.
// Fn values are shared by pointer, never copied, and ordered by definition
// id. Any function whose body is the Noop primitive is the fill sentinel.
type Fn struct {
	id   int
	name string
	prim Primitive
}

// The runtime is single threaded, so a plain counter suffices for
// definition order.
var nextFnID int

// NewFn registers a function value, assigning the next definition id.
func NewFn(name string, prim Primitive) *Fn {
	f := &Fn{id: nextFnID, name: name, prim: prim}
	nextFnID++
	return f
}

var noopFn = NewFn("noop", Noop)

func (f *Fn) Name() string {
	return f.name
}

func (f *Fn) Primitive() Primitive {
	return f.prim
}

func (f *Fn) Cmp(o *Fn) int {
	return cmp.Compare(f.id, o.id)
}

func (*Fn) Fill() *Fn {
	return noopFn
}

func (f *Fn) IsFill() bool {
	return f.prim == Noop
}

func (*Fn) DefaultFill() bool {
	return false
}

func (*Fn) KindName() string {
	return "function"
}

func (*Fn) Delims() (string, string) {
	return "[", "]"
}

func (*Fn) Sep() string {
	return " "
}

func (f *Fn) Format() string {
	if f.name != "" {
		return "(" + f.name + ")"
	}
	return "(" + f.prim.String() + ")"
}

func (*Fn) sealed() {}
