package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shuldan/clikit/pkg/contracts"
	"github.com/shuldan/clikit/pkg/output"
)

var _ contracts.CliMenu = (*App)(nil)

// App dispatches one invocation against a frozen set of routes.
type App struct {
	name        string
	routes      routes
	printer     *output.Printer
	logger      contracts.Logger
	exitHandler contracts.ExitHandler
	exit        func(int)
	args        []string
}

// Menu lists the user commands in name order. Hooks are never listed.
func (a *App) Menu() []string {
	menu := make([]string, len(a.routes.menu))
	copy(menu, a.routes.menu)
	return menu
}

func (a *App) Describe(name string) (string, string, bool) {
	cmd, ok := a.routes.commands[name]
	if !ok {
		return "", "", false
	}
	return cmd.description, cmd.group, true
}

func (a *App) Name() string {
	return a.name
}

func (a *App) Print() *output.Printer {
	return a.printer
}

func (a *App) Logger() contracts.Logger {
	return a.logger
}

// Pass runs the handler registered under name, or the hook when name is one
// of the hook names. An unknown name does nothing.
func (a *App) Pass(ctx context.Context, name string, args ...string) error {
	return a.pass(newContext(ctx, a, name, a.logger), name, args)
}

// Exit reports the status and terminates the process through the exit
// function. The default status is 0.
func (a *App) Exit(code ...int) {
	status := 0
	if len(code) > 0 {
		status = code[0]
	}

	a.printer.Info(fmt.Sprintf("Exiting with code %d.", status))
	a.exit(status)
}

// Run dispatches the process arguments: the first names the command, the
// rest are passed through.
func (a *App) Run(ctx context.Context) error {
	args := a.args
	if args == nil {
		args = os.Args[1:]
	}

	var cmd string
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	return a.Main(ctx, cmd, args...)
}

// Execute runs app and turns a returned error into a reported failure and
// a process exit with the mapped status.
func Execute(ctx context.Context, app *App) {
	err := app.Run(ctx)
	if err == nil {
		return
	}

	status := app.exitHandler.Handle(ctx, err)
	app.printer.Error(err.Error())
	app.exit(status)
}
