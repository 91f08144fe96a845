// Package encode renders runtime values for terminals: the plain display
// form, plus an optional color layer keyed by element kind.
package encode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/vara-lang/go-vara/value"
)

// Colors maps element kinds to terminal color functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[value.Kind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[value.Kind]func(string, ...any) string{},
	}
	colors.Map[value.NumKind] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[value.ByteKind] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[value.CharKind] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[value.FnKind] = color.RGB(196, 96, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(k value.Kind) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}

// WantColor reports whether colored output makes sense for f: only when
// it is a terminal.
func WantColor(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}

// Fprint writes v's display form to w. A nil Colors writes plain text.
func Fprint(w io.Writer, v value.Value, colors *Colors) error {
	s := v.String()
	if colors != nil {
		s = colors.Get(v.Kind())(s)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
