package terminal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/shuldan/clikit/pkg/contracts"
)

var _ contracts.Terminal = (*Shell)(nil)

// Shell is the process-backed terminal: geometry from a Geometry source,
// screen clearing and child processes through os/exec.
//
// Neither Run nor Spawn imposes a timeout. A child that never exits blocks
// the caller until ctx is done; with context.Background that is forever.
// When ctx ends the child is killed and the call returns within the wait
// delay, even if descendants keep its output open.
type Shell struct {
	geometry  contracts.Geometry
	stdout    io.Writer
	stderr    io.Writer
	clear     []string
	logger    contracts.Logger
	waitDelay time.Duration
}

func (s *Shell) Width() (int, error) {
	return s.geometry.Width()
}

func (s *Shell) Height() (int, error) {
	return s.geometry.Height()
}

func (s *Shell) Clear() error {
	if err := stream(context.Background(), s.waitDelay, s.stdout, s.stderr, s.clear[0], s.clear[1:]...); err != nil {
		s.logger.Debug("Clear failed", "command", s.clear[0], "error", err)
		return ErrClear.WithCause(err)
	}
	return nil
}

func (s *Shell) Run(ctx context.Context, cmd string, args ...string) (string, error) {
	s.logger.Debug("Running command", "command", cmd, "args", args)

	out, err := capture(ctx, s.waitDelay, s.stderr, cmd, args...)
	if err != nil {
		return out, ErrRun.WithDetail("command", cmd).WithCause(err)
	}
	return out, nil
}

// Spawn streams cmd's stdout into w, or into the shell's stdout when w is
// nil.
func (s *Shell) Spawn(ctx context.Context, w io.Writer, cmd string, args ...string) error {
	if w == nil {
		w = s.stdout
	}

	s.logger.Debug("Spawning command", "command", cmd, "args", args)

	if err := stream(ctx, s.waitDelay, w, s.stderr, cmd, args...); err != nil {
		return ErrSpawn.WithDetail("command", cmd).WithCause(err)
	}
	return nil
}

func defaultGeometry(tput string) contracts.Geometry {
	return FallbackGeometry{
		NewTputGeometry(tput),
		NewFdGeometry(os.Stdout.Fd()),
	}
}
