package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Ops   bool
	Parse bool
	Repl  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Ops = boolEnv("VA_DEBUG_OPS")
	d.Parse = boolEnv("VA_DEBUG_PARSE")
	d.Repl = boolEnv("VA_DEBUG_REPL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Ops() bool {
	return d.Ops
}
func Parse() bool {
	return d.Parse
}
func Repl() bool {
	return d.Repl
}
