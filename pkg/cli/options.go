package cli

import (
	"github.com/shuldan/clikit/pkg/contracts"
	"github.com/shuldan/clikit/pkg/output"
)

type Option func(*App)

func WithName(name string) Option {
	return func(a *App) {
		if name != "" {
			a.name = name
		}
	}
}

func WithPrinter(p *output.Printer) Option {
	return func(a *App) {
		if p != nil {
			a.printer = p
		}
	}
}

func WithLogger(l contracts.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithExitFunc replaces os.Exit as the way the App terminates.
func WithExitFunc(exit func(int)) Option {
	return func(a *App) {
		if exit != nil {
			a.exit = exit
		}
	}
}

func WithExitHandler(h contracts.ExitHandler) Option {
	return func(a *App) {
		if h != nil {
			a.exitHandler = h
		}
	}
}

// WithArgs sets the arguments Run dispatches instead of os.Args[1:].
func WithArgs(args ...string) Option {
	return func(a *App) {
		a.args = append([]string{}, args...)
	}
}
