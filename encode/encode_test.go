package encode

import (
	"strings"
	"testing"

	"github.com/vara-lang/go-vara/array"
	"github.com/vara-lang/go-vara/value"
)

func TestFprintPlain(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"number list", value.OfNum(array.FromSlice([]array.Num{1, 2})), "[1 2]\n"},
		{"char run", value.OfChar(array.FromString("hi")), "hi\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := Fprint(&sb, tt.v, nil); err != nil {
				t.Fatalf("Fprint: %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("Fprint wrote %q, want %q", sb.String(), tt.want)
			}
		})
	}
}
