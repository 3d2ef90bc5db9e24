package cli

import (
	"context"

	"github.com/google/uuid"
)

const (
	stageSingle  = "single"
	stageDefault = "default"
	stageStart   = "start"
	stageHandler = "handler"
	stageEnd     = "end"
)

// Main routes one invocation:
//
//   - in single mode the handler gets cmd followed by args;
//   - an empty cmd runs the default hook with no arguments;
//   - a known cmd runs start, the command and end in that order, stopping
//     at the first error;
//   - an unknown cmd is reported and the App exits with status 1.
func (a *App) Main(ctx context.Context, cmd string, args ...string) error {
	log := a.logger.With("invocation", uuid.NewString(), "command", cmd)
	c := newContext(ctx, a, cmd, log)

	if a.routes.single != nil {
		log.Debug("Dispatching to single handler", "args", args)
		return a.invoke(c, stageSingle, a.routes.single, append([]string{cmd}, args...))
	}

	if cmd == "" {
		log.Debug("Dispatching to default hook")
		return a.invoke(c, stageDefault, a.routes.onDefault, nil)
	}

	target, ok := a.routes.commands[cmd]
	if !ok {
		log.Debug("Command not found", "error", ErrUnknownCommand.WithDetail("command", cmd))
		a.printer.Error(`Command "` + cmd + `" not found.`)
		a.Exit(1)
		return ErrUnknownCommand.WithDetail("command", cmd)
	}

	log.Debug("Dispatching command", "args", args)

	hookArgs := append([]string{cmd}, args...)
	steps := []struct {
		stage   string
		handler Handler
		args    []string
	}{
		{stageStart, a.routes.onStart, hookArgs},
		{stageHandler, target.handler, args},
		{stageEnd, a.routes.onEnd, hookArgs},
	}

	for _, step := range steps {
		if err := a.invoke(c, step.stage, step.handler, step.args); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) pass(c *cmdContext, name string, args []string) error {
	h, ok := a.routes.lookup(name)
	if !ok {
		c.logger.Trace("No handler to pass to", "name", name)
		return nil
	}
	return a.invoke(c, name, h, args)
}

// invoke runs h unless it is nil. It refuses to start once ctx is done.
func (a *App) invoke(c *cmdContext, stage string, h Handler, args []string) error {
	if h == nil {
		return nil
	}

	if err := c.ctx.Err(); err != nil {
		return ErrCommandExecution.
			WithDetail("command", c.command).
			WithDetail("stage", stage).
			WithCause(err)
	}

	c.logger.Trace("Invoking handler", "stage", stage, "args", args)

	if err := h(c, cloneArgs(args)); err != nil {
		return ErrCommandExecution.
			WithDetail("command", c.command).
			WithDetail("stage", stage).
			WithCause(err)
	}

	return nil
}

func cloneArgs(args []string) []string {
	if args == nil {
		return nil
	}
	out := make([]string, len(args))
	copy(out, args)
	return out
}
