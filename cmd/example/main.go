package main

import (
	"fmt"
	"time"

	"github.com/shuldan/clikit/pkg/bootstrap"
	"github.com/shuldan/clikit/pkg/cli"
	"github.com/shuldan/clikit/pkg/contracts"
	"github.com/shuldan/clikit/pkg/output"
)

func main() {
	bootstrap.New("example", "CLIKIT_", "clikit.yaml", "config/clikit.yaml").
		WithRegistry(commands()).
		Run()
}

func commands() *cli.Registry {
	var started time.Time

	r := cli.NewRegistry().
		Default(func(ctx cli.Context, _ []string) error {
			ctx.Print().Info("Hello, World.")
			return nil
		}).
		Start(func(ctx cli.Context, args []string) error {
			started = time.Now()
			ctx.Logger().Debug("Command started", "args", args)
			return nil
		}).
		End(func(ctx cli.Context, _ []string) error {
			ctx.Logger().Info("Command finished", "elapsed", time.Since(started))
			return nil
		})

	mustRegister(r, "bye", func(ctx cli.Context, _ []string) error {
		ctx.Print().Error("GOOD BYE.")
		ctx.Exit()
		return nil
	}, cli.WithDescription("Say good bye and exit"))

	mustRegister(r, "size", func(ctx cli.Context, _ []string) error {
		t := ctx.Print().Terminal()
		w, err := t.Width()
		if err != nil {
			return err
		}
		h, err := t.Height()
		if err != nil {
			return err
		}
		ctx.Print().Log(fmt.Sprintf("%d columns, %d lines", w, h))
		return nil
	}, cli.WithDescription("Print the terminal size"))

	mustRegister(r, "banner", func(ctx cli.Context, args []string) error {
		title := "clikit"
		if len(args) > 0 {
			title = args[0]
		}
		ctx.Print().
			Header(title).
			Box(title, output.Size(40)).
			List(ctx.Menu()...).
			Done()
		return nil
	}, cli.WithDescription("Print a header, a box and the command list"))

	mustRegister(r, "ls", func(ctx cli.Context, args []string) error {
		return ctx.Print().Spawn(ctx.Ctx(), "ls", append([]string{"-la"}, args...)...)
	}, cli.WithDescription("List files through ls -la"), cli.WithGroup("shell"))

	mustRegister(r, "help", cli.HelpHandler(),
		cli.WithDescription("Show available commands"),
		cli.WithGroup(contracts.SystemCliGroup))

	return r
}

func mustRegister(r *cli.Registry, name string, h cli.Handler, opts ...cli.CommandOption) {
	if err := r.Register(name, h, opts...); err != nil {
		panic(err)
	}
}
