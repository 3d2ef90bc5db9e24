package terminal

import (
	"os"

	"github.com/shuldan/clikit/pkg/logger"
)

// New returns a Shell wired to the process stdio. Geometry comes from
// `tput`, falling back to the window size of stdout.
func New(opts ...Option) *Shell {
	s := &Shell{
		geometry:  defaultGeometry("tput"),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clear:     []string{"clear"},
		logger:    logger.NewNop(),
		waitDelay: defaultWaitDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
