package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"

	"github.com/vara-lang/go-vara/debug"
	"github.com/vara-lang/go-vara/encode"
	"github.com/vara-lang/go-vara/parse"
	"github.com/vara-lang/go-vara/rt"
	"github.com/vara-lang/go-vara/value"
)

const (
	historyFile = ".va_history"
	replHelp    = `Enter array literals to display them: 5, [1 2 3], "text", ["ab" "cde"].

Commands:
  )help                 Show this help
  )quit                 Exit
  )shape <literal>      Print the literal's shape
  )trunc <literal>      Truncate trailing fill rows and print
  )couple <lit> <lit>   Stack two arrays
  )join <lit> <lit>     Append a row to an array
`
)

func runRepl(cfg *MainConfig, cc *cli.Context) error {
	fmt.Fprintln(cc.Out, "vara arrays, Ctrl+D to exit, )help for commands.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	colors := cfg.colors()
	for {
		line, err := ln.Prompt(cfg.File.Prompt)
		if err != nil {
			// Ctrl+D or Ctrl+C both end the session.
			fmt.Fprintln(cc.Out)
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if debug.Repl() {
			fmt.Fprintf(os.Stderr, "repl %q\n", line)
		}
		if strings.HasPrefix(strings.TrimSpace(line), ")") {
			if done := replCommand(cc, colors, line); done {
				break
			}
			continue
		}
		ctx := rt.NewCtx()
		vals, err := parse.Literals(line, ctx)
		if err != nil {
			fmt.Fprintln(cc.Out, err)
			continue
		}
		for _, v := range vals {
			if err := encode.Fprint(cc.Out, v, colors); err != nil {
				return err
			}
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

func replCommand(cc *cli.Context, colors *encode.Colors, line string) (exit bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	cmd, rest := fields[0], strings.Join(fields[1:], " ")
	ctx := rt.NewCtx()
	switch cmd {
	case ")help":
		fmt.Fprint(cc.Out, replHelp)
	case ")quit", ")exit":
		return true
	case ")shape":
		v, err := parse.Literal(rest, ctx)
		if err != nil {
			fmt.Fprintln(cc.Out, err)
			return false
		}
		fmt.Fprintln(cc.Out, v.Shape())
	case ")trunc":
		v, err := parse.Literal(rest, ctx)
		if err != nil {
			fmt.Fprintln(cc.Out, err)
			return false
		}
		v.Truncate()
		_ = encode.Fprint(cc.Out, v, colors)
	case ")couple", ")join":
		vals, err := parse.Literals(rest, ctx)
		if err != nil {
			fmt.Fprintln(cc.Out, err)
			return false
		}
		if len(vals) != 2 {
			fmt.Fprintf(cc.Out, "%s wants two literals, have %d\n", cmd, len(vals))
			return false
		}
		var res value.Value
		if cmd == ")couple" {
			res, err = vals[0].Couple(vals[1], ctx)
		} else {
			res, err = vals[0].Join(vals[1], ctx)
		}
		if err != nil {
			fmt.Fprintln(cc.Out, err)
			return false
		}
		_ = encode.Fprint(cc.Out, res, colors)
	default:
		fmt.Fprintf(cc.Out, "unknown command %s; )help lists commands\n", cmd)
	}
	return false
}
