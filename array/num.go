package array

import (
	"math"
	"strconv"
)

// Num is the floating point number kind. Its fill sentinel is NaN, matched
// by is-NaN rather than equality.
type Num float64

func (n Num) Cmp(o Num) int {
	a, b := float64(n), float64(o)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// At least one NaN. Rank non-NaN below NaN so the order stays total.
	return boolCmp(math.IsNaN(a), math.IsNaN(b))
}

func (n Num) Fill() Num {
	return Num(math.NaN())
}

func (n Num) IsFill() bool {
	return math.IsNaN(float64(n))
}

func (Num) DefaultFill() bool {
	return false
}

func (Num) KindName() string {
	return "number"
}

func (Num) Delims() (string, string) {
	return "[", "]"
}

func (Num) Sep() string {
	return " "
}

func (n Num) Format() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (Num) sealed() {}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}
