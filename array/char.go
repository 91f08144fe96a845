package array

import "cmp"

// Char is the character kind. Char arrays render as bare runs with no
// delimiters, and the fill sentinel is the NUL character. Char is the one
// kind whose arrays start fill-tainted: text arrays are the common case
// for ragged joins.
type Char rune

func (c Char) Cmp(o Char) int {
	return cmp.Compare(c, o)
}

func (Char) Fill() Char {
	return 0
}

func (c Char) IsFill() bool {
	return c == 0
}

func (Char) DefaultFill() bool {
	return true
}

func (Char) KindName() string {
	return "character"
}

func (Char) Delims() (string, string) {
	return "", ""
}

func (Char) Sep() string {
	return ""
}

func (c Char) Format() string {
	return string(rune(c))
}

func (Char) sealed() {}
