package cli

import "github.com/shuldan/clikit/pkg/errors"

var newCliCode = errors.WithPrefix("CLI")

var (
	ErrNilRegistry         = newCliCode().New("registry is nil")
	ErrMixedRegistration   = newCliCode().New("a single handler cannot be combined with named commands or hooks")
	ErrCommandRegistration = newCliCode().New("command registration failed for {{.command}}: {{.reason}}")
	ErrUnknownCommand      = newCliCode().New("unknown command {{.command}}")
	ErrCommandExecution    = newCliCode().New("command {{.command}} failed during {{.stage}}")
	ErrHelpTemplate        = newCliCode().New("help template is invalid")
)
