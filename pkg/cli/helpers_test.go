package cli

import (
	"bytes"
	"testing"

	"github.com/shuldan/clikit/pkg/output"
	"github.com/shuldan/clikit/pkg/terminal"
)

type exitStatus int

func panicExit(code int) {
	panic(exitStatus(code))
}

// catchExit runs fn and reports the status passed to the exit function, if
// it was called.
func catchExit(fn func()) (code int, exited bool) {
	defer func() {
		if r := recover(); r != nil {
			status, ok := r.(exitStatus)
			if !ok {
				panic(r)
			}
			code, exited = int(status), true
		}
	}()
	fn()
	return 0, false
}

type call struct {
	name string
	args []string
}

type recorder struct {
	calls []call
}

func (r *recorder) handler(name string) Handler {
	return r.failing(name, nil)
}

func (r *recorder) failing(name string, err error) Handler {
	return func(_ Context, args []string) error {
		r.calls = append(r.calls, call{name: name, args: args})
		return err
	}
}

func (r *recorder) names() []string {
	names := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		names = append(names, c.name)
	}
	return names
}

type testIO struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestApp(t *testing.T, registry *Registry, opts ...Option) (*App, *testIO) {
	t.Helper()
	streams := &testIO{}
	printer := output.New(
		terminal.New(terminal.WithGeometry(terminal.FixedGeometry{Cols: 40, Lines: 10})),
		output.WithStdout(&streams.stdout),
		output.WithStderr(&streams.stderr),
	)

	opts = append([]Option{WithPrinter(printer), WithExitFunc(panicExit), WithName("tool")}, opts...)
	app, err := New(registry, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return app, streams
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
