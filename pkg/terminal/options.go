package terminal

import (
	"io"
	"time"

	"github.com/shuldan/clikit/pkg/contracts"
)

type Option func(*Shell)

func WithGeometry(g contracts.Geometry) Option {
	return func(s *Shell) {
		if g != nil {
			s.geometry = g
		}
	}
}

// WithTputPath keeps the default geometry chain but queries the given
// terminfo binary.
func WithTputPath(path string) Option {
	return func(s *Shell) {
		s.geometry = defaultGeometry(path)
	}
}

func WithStdout(w io.Writer) Option {
	return func(s *Shell) {
		if w == nil {
			w = io.Discard
		}
		s.stdout = w
	}
}

func WithStderr(w io.Writer) Option {
	return func(s *Shell) {
		if w == nil {
			w = io.Discard
		}
		s.stderr = w
	}
}

func WithClearCommand(cmd string, args ...string) Option {
	return func(s *Shell) {
		if cmd != "" {
			s.clear = append([]string{cmd}, args...)
		}
	}
}

func WithLogger(l contracts.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWaitDelay sets how long Run and Spawn wait for the output pipes of a
// killed child before closing them.
func WithWaitDelay(d time.Duration) Option {
	return func(s *Shell) {
		if d > 0 {
			s.waitDelay = d
		}
	}
}
