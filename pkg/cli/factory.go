package cli

import (
	"os"
	"path/filepath"

	"github.com/shuldan/clikit/pkg/errors"
	"github.com/shuldan/clikit/pkg/logger"
	"github.com/shuldan/clikit/pkg/output"
)

// New freezes registry into an App. Later changes to registry are not seen
// by the App.
func New(registry *Registry, opts ...Option) (*App, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	rt, err := registry.snapshot()
	if err != nil {
		return nil, err
	}

	a := &App{
		name:   filepath.Base(os.Args[0]),
		routes: rt,
		logger: logger.NewNop(),
		exit:   os.Exit,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.printer == nil {
		a.printer = output.New(nil, output.WithLogger(a.logger))
	}
	if a.exitHandler == nil {
		a.exitHandler = errors.NewExitHandler(a.logger)
	}

	return a, nil
}

// NewSingle builds an App that sends every invocation to h.
func NewSingle(h Handler, opts ...Option) (*App, error) {
	if h == nil {
		return nil, ErrCommandRegistration.WithDetail("command", Command).WithDetail("reason", "nil handler")
	}
	return New(NewRegistry().Single(h), opts...)
}
