package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/vara-lang/go-vara/encode"
	"github.com/vara-lang/go-vara/parse"
	"github.com/vara-lang/go-vara/rt"
	"github.com/vara-lang/go-vara/value"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{File: loadFileConfig()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "va").
		WithSynopsis("va [opts] command [opts]").
		WithDescription("va is a tool for working with vara arrays.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vaMain(cfg, cc, args)
		}).
		WithSubs(
			ShowCommand(cfg),
			CoupleCommand(cfg),
			JoinCommand(cfg),
			TruncCommand(cfg),
			ReplCommand(cfg))
}

func vaMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		// No subcommand drops into the interactive session.
		return runRepl(cfg, cc)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

type ShowConfig struct {
	*MainConfig
	Show *cli.Command
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("show").
		WithAliases("s").
		WithSynopsis("show [literals]").
		WithDescription("Parse array literals (args or stdin) and display them.").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Show.Parse(cc, args)
			if err != nil {
				return err
			}
			return vaShow(cfg, cc, args)
		})
	cfg.Show = cmd
	return cmd
}

func vaShow(cfg *ShowConfig, cc *cli.Context, args []string) error {
	src := strings.Join(args, " ")
	if len(args) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		var lines []string
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return err
		}
		src = strings.Join(lines, " ")
	}
	ctx := rt.NewCtx()
	vals, err := parse.Literals(src, ctx)
	if err != nil {
		return err
	}
	colors := cfg.colors()
	for _, v := range vals {
		if err := encode.Fprint(cc.Out, v, colors); err != nil {
			return err
		}
	}
	return nil
}

type CombineConfig struct {
	*MainConfig
	Trunc   bool `cli:"name=trunc desc='truncate trailing fill rows of the result'"`
	Combine *cli.Command
}

func CoupleCommand(mainCfg *MainConfig) *cli.Command {
	return combineCommand(mainCfg, "couple", "Stack two same-shape arrays into a two-row array.",
		func(a, b value.Value, ctx *rt.Ctx) (value.Value, error) {
			return a.Couple(b, ctx)
		})
}

func JoinCommand(mainCfg *MainConfig) *cli.Command {
	return combineCommand(mainCfg, "join", "Append a row array to an array.",
		func(a, b value.Value, ctx *rt.Ctx) (value.Value, error) {
			return a.Join(b, ctx)
		})
}

func combineCommand(
	mainCfg *MainConfig,
	name, desc string,
	op func(a, b value.Value, ctx *rt.Ctx) (value.Value, error),
) *cli.Command {
	cfg := &CombineConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand(name).
		WithSynopsis(name + " [-trunc] literal literal").
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Combine.Parse(cc, args)
			if err != nil {
				return err
			}
			ctx := rt.NewCtx()
			vals, err := parse.Literals(strings.Join(args, " "), ctx)
			if err != nil {
				return err
			}
			if len(vals) != 2 {
				return fmt.Errorf("%w: %s wants two literals, have %d", cli.ErrUsage, name, len(vals))
			}
			res, err := op(vals[0], vals[1], ctx)
			if err != nil {
				return err
			}
			if cfg.Trunc {
				res.Truncate()
			}
			return encode.Fprint(cc.Out, res, cfg.colors())
		})
	cfg.Combine = cmd
	return cmd
}

type TruncConfig struct {
	*MainConfig
	Trunc *cli.Command
}

func TruncCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TruncConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("trunc").
		WithSynopsis("trunc literal").
		WithDescription("Remove wholly-fill trailing rows from a fill-tainted array.").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Trunc.Parse(cc, args)
			if err != nil {
				return err
			}
			ctx := rt.NewCtx()
			v, err := parse.Literal(strings.Join(args, " "), ctx)
			if err != nil {
				return err
			}
			v.Truncate()
			return encode.Fprint(cc.Out, v, cfg.colors())
		})
	cfg.Trunc = cmd
	return cmd
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cmd := cli.NewCommand("repl").
		WithAliases("r").
		WithSynopsis("repl").
		WithDescription("Interactive array session.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runRepl(mainCfg, cc)
		})
	return cmd
}
