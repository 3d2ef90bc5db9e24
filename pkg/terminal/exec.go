package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

const defaultWaitDelay = 500 * time.Millisecond

// capture runs name to completion and returns its stdout. stderr, when
// non-nil, receives the child's stderr.
func capture(ctx context.Context, waitDelay time.Duration, stderr io.Writer, name string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := command(ctx, waitDelay, &out, stderr, name, args...)

	if err := cmd.Run(); err != nil {
		return out.String(), contextCause(ctx, err)
	}
	return out.String(), nil
}

// stream runs name and forwards each chunk of its stdout to w in arrival
// order. Once ctx ends the child is killed, and the pipe is closed at most
// waitDelay later even if a grandchild still holds it open.
func stream(ctx context.Context, waitDelay time.Duration, w, stderr io.Writer, name string, args ...string) error {
	fw := &forwardWriter{w: w}
	cmd := command(ctx, waitDelay, fw, stderr, name, args...)

	if err := cmd.Run(); err != nil {
		return contextCause(ctx, err)
	}
	return fw.failure()
}

func command(ctx context.Context, waitDelay time.Duration, stdout, stderr io.Writer, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	if stderr != nil {
		cmd.Stderr = stderr
	}
	cmd.WaitDelay = waitDelay
	return cmd
}

// forwardWriter passes chunks through to w. After the first failed write it
// keeps accepting input so the child never blocks on a full pipe.
type forwardWriter struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

func (f *forwardWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err == nil {
		if _, err := f.w.Write(p); err != nil {
			f.err = err
		}
	}
	return len(p), nil
}

func (f *forwardWriter) failure() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// contextCause joins the context error when the process was killed
// because ctx ended, so callers can map it to timeout/interrupt statuses.
func contextCause(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(ctxErr, err)
	}
	return err
}
