package array

import (
	"cmp"
	"math"
	"strconv"
)

// Byte is the small integer kind: a value in 0..255, or the reserved fill
// variant. The fill variant sits numerically above the value range, so
// ordinal comparison reproduces the kind's declared order (every value
// sorts below fill).
type Byte int16

// ByteFill is the reserved fill variant, outside the 0..255 value range.
const ByteFill Byte = 256

// ByteOf wraps a raw byte as an array element.
func ByteOf(b uint8) Byte {
	return Byte(b)
}

func (b Byte) Cmp(o Byte) int {
	return cmp.Compare(b, o)
}

func (Byte) Fill() Byte {
	return ByteFill
}

func (b Byte) IsFill() bool {
	return b == ByteFill
}

func (Byte) DefaultFill() bool {
	return false
}

func (Byte) KindName() string {
	return "byte"
}

func (Byte) Delims() (string, string) {
	return "[", "]"
}

func (Byte) Sep() string {
	return " "
}

func (b Byte) Format() string {
	if b == ByteFill {
		return "_"
	}
	return strconv.Itoa(int(b))
}

func (Byte) sealed() {}

// ByteToNum promotes a byte element to the numeric kind, mapping the fill
// variant to the numeric fill sentinel.
func ByteToNum(b Byte) Num {
	if b.IsFill() {
		return Num(math.NaN())
	}
	return Num(b)
}
