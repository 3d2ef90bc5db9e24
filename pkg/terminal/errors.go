package terminal

import "github.com/shuldan/clikit/pkg/errors"

var newTerminalCode = errors.WithPrefix("TERMINAL")

var (
	ErrGeometry = newTerminalCode().New("terminal {{.capability}} is unavailable")
	ErrRun      = newTerminalCode().New("command {{.command}} failed")
	ErrSpawn    = newTerminalCode().New("spawned command {{.command}} failed")
	ErrClear    = newTerminalCode().New("failed to clear the screen")
)
