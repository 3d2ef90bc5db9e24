package cli

import (
	"context"

	"github.com/shuldan/clikit/pkg/contracts"
	"github.com/shuldan/clikit/pkg/output"
)

// Context is what a handler sees of the App running it.
type Context interface {
	contracts.CliMenu

	Ctx() context.Context
	Name() string
	Command() string
	Print() *output.Printer
	Logger() contracts.Logger
	Pass(name string, args ...string) error
	Exit(code ...int)
}

type cmdContext struct {
	ctx     context.Context
	app     *App
	command string
	logger  contracts.Logger
}

func newContext(ctx context.Context, app *App, command string, logger contracts.Logger) *cmdContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &cmdContext{
		ctx:     ctx,
		app:     app,
		command: command,
		logger:  logger,
	}
}

func (c *cmdContext) Ctx() context.Context {
	return c.ctx
}

func (c *cmdContext) Name() string {
	return c.app.name
}

// Command is the name the App was invoked with, empty for the default hook.
func (c *cmdContext) Command() string {
	return c.command
}

func (c *cmdContext) Print() *output.Printer {
	return c.app.printer
}

func (c *cmdContext) Logger() contracts.Logger {
	return c.logger
}

func (c *cmdContext) Menu() []string {
	return c.app.Menu()
}

func (c *cmdContext) Describe(name string) (string, string, bool) {
	return c.app.Describe(name)
}

func (c *cmdContext) Pass(name string, args ...string) error {
	return c.app.pass(c, name, args)
}

func (c *cmdContext) Exit(code ...int) {
	c.app.Exit(code...)
}
