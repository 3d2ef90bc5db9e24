package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMain_SingleModeGetsEverything(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  string
		args []string
		want []string
	}{
		{"command and args", "build", []string{"a", "b"}, []string{"build", "a", "b"}},
		{"hook name as command", Default, nil, []string{Default}},
		{"unknown looking command", "nope", []string{"x"}, []string{"nope", "x"}},
		{"no input", "", nil, []string{""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			r := NewRegistry().Single(rec.handler("single"))
			app, streams := newTestApp(t, r)

			if err := app.Main(context.Background(), tt.cmd, tt.args...); err != nil {
				t.Fatalf("Main failed: %v", err)
			}

			if len(rec.calls) != 1 {
				t.Fatalf("expected exactly one call, got %v", rec.calls)
			}
			if !equalStrings(rec.calls[0].args, tt.want) {
				t.Errorf("expected args %q, got %q", tt.want, rec.calls[0].args)
			}
			if streams.stderr.Len() != 0 {
				t.Errorf("unexpected error output %q", streams.stderr.String())
			}
		})
	}
}

func TestNewSingle(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	app, err := NewSingle(rec.handler("single"), WithExitFunc(panicExit))
	if err != nil {
		t.Fatal(err)
	}

	if err = app.Main(context.Background(), "x", "y"); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 1 || !equalStrings(rec.calls[0].args, []string{"x", "y"}) {
		t.Errorf("unexpected calls %v", rec.calls)
	}
	if len(app.Menu()) != 0 {
		t.Errorf("expected empty menu in single mode, got %v", app.Menu())
	}
}

func TestMain_EmptyCommandRunsDefaultOnly(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := NewRegistry().
		Default(rec.handler(Default)).
		Start(rec.handler(Start)).
		End(rec.handler(End))
	_ = r.Register("k", rec.handler("k"))
	app, _ := newTestApp(t, r)

	if err := app.Main(context.Background(), ""); err != nil {
		t.Fatal(err)
	}

	if !equalStrings(rec.names(), []string{Default}) {
		t.Fatalf("expected only the default hook, got %v", rec.names())
	}
	if len(rec.calls[0].args) != 0 {
		t.Errorf("expected no arguments, got %q", rec.calls[0].args)
	}
}

func TestMain_EmptyCommandWithoutDefault(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := NewRegistry().Start(rec.handler(Start))
	_ = r.Register("k", rec.handler("k"))
	app, streams := newTestApp(t, r)

	code, exited := catchExit(func() {
		if err := app.Main(context.Background(), ""); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	if exited {
		t.Errorf("expected no exit, got status %d", code)
	}
	if len(rec.calls) != 0 || streams.stdout.Len() != 0 || streams.stderr.Len() != 0 {
		t.Errorf("expected a silent no-op, got calls %v", rec.calls)
	}
}

func TestMain_LifecycleOrder(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := NewRegistry().
		Default(rec.handler(Default)).
		Start(rec.handler(Start)).
		End(rec.handler(End))
	_ = r.Register("k", rec.handler("k"))
	_ = r.Register("other", rec.handler("other"))
	app, _ := newTestApp(t, r)

	if err := app.Main(context.Background(), "k", "a", "b"); err != nil {
		t.Fatal(err)
	}

	want := []call{
		{Start, []string{"k", "a", "b"}},
		{"k", []string{"a", "b"}},
		{End, []string{"k", "a", "b"}},
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), rec.calls)
	}
	for i, w := range want {
		if rec.calls[i].name != w.name || !equalStrings(rec.calls[i].args, w.args) {
			t.Errorf("call %d: expected %v, got %v", i, w, rec.calls[i])
		}
	}
}

func TestMain_MissingHooksSkipped(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := NewRegistry()
	_ = r.Register("k", rec.handler("k"))
	app, _ := newTestApp(t, r)

	if err := app.Main(context.Background(), "k"); err != nil {
		t.Fatal(err)
	}
	if !equalStrings(rec.names(), []string{"k"}) {
		t.Errorf("expected only the command, got %v", rec.names())
	}
}

func TestMain_HandlerArgsAreIsolated(t *testing.T) {
	t.Parallel()
	var seen []string
	r := NewRegistry().Start(func(_ Context, args []string) error {
		args[0] = "mutated"
		return nil
	})
	_ = r.Register("k", func(_ Context, args []string) error {
		seen = args
		return nil
	})
	r.End(func(_ Context, args []string) error {
		if args[0] != "k" {
			t.Errorf("end hook saw mutated args %q", args)
		}
		return nil
	})
	app, _ := newTestApp(t, r)

	if err := app.Main(context.Background(), "k", "a"); err != nil {
		t.Fatal(err)
	}
	if !equalStrings(seen, []string{"a"}) {
		t.Errorf("unexpected handler args %q", seen)
	}
}

func TestMain_ErrorStopsLaterSteps(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	tests := []struct {
		name      string
		failing   string
		wantCalls []string
	}{
		{"start fails", Start, []string{Start}},
		{"handler fails", "k", []string{Start, "k"}},
		{"end fails", End, []string{Start, "k", End}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			handlerFor := func(name string) Handler {
				if name == tt.failing {
					return rec.failing(name, boom)
				}
				return rec.handler(name)
			}

			r := NewRegistry().Start(handlerFor(Start)).End(handlerFor(End))
			_ = r.Register("k", handlerFor("k"))
			app, _ := newTestApp(t, r)

			err := app.Main(context.Background(), "k")
			if !errors.Is(err, ErrCommandExecution) {
				t.Fatalf("expected ErrCommandExecution, got %v", err)
			}
			if !errors.Is(err, boom) {
				t.Errorf("expected the handler error as cause, got %v", err)
			}
			if !equalStrings(rec.names(), tt.wantCalls) {
				t.Errorf("expected calls %v, got %v", tt.wantCalls, rec.names())
			}
		})
	}
}

func TestMain_CancelledContext(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := NewRegistry()
	_ = r.Register("k", rec.handler("k"))
	app, _ := newTestApp(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Main(ctx, "k")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no handler to run, got %v", rec.calls)
	}
}

func TestMain_UnknownCommand(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := NewRegistry().
		Default(rec.handler(Default)).
		Start(rec.handler(Start)).
		End(rec.handler(End))
	_ = r.Register("k", rec.handler("k"))
	app, streams := newTestApp(t, r)

	code, exited := catchExit(func() {
		_ = app.Main(context.Background(), "nope")
	})

	if !exited || code != 1 {
		t.Fatalf("expected exit status 1, got %d (exited %v)", code, exited)
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no handler calls, got %v", rec.calls)
	}
	if !strings.Contains(streams.stderr.String(), `Command "nope" not found.`) {
		t.Errorf("expected error line naming the command, got %q", streams.stderr.String())
	}
	if !strings.Contains(streams.stdout.String(), "Exiting with code 1.") {
		t.Errorf("expected exit report, got %q", streams.stdout.String())
	}
}

func TestMain_UnknownCommandWithReturningExit(t *testing.T) {
	t.Parallel()
	var status []int
	app, _ := newTestApp(t, NewRegistry(), WithExitFunc(func(code int) { status = append(status, code) }))

	err := app.Main(context.Background(), "nope")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
	if len(status) != 1 || status[0] != 1 {
		t.Errorf("expected a single exit with 1, got %v", status)
	}
}

func TestMain_ByeScenario(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_ = r.Register("bye", func(ctx Context, _ []string) error {
		ctx.Print().Error("GOOD BYE.")
		ctx.Exit()
		return nil
	})

	app, streams := newTestApp(t, r)
	code, exited := catchExit(func() {
		_ = app.Main(context.Background(), "bye")
	})
	if !exited || code != 0 {
		t.Fatalf("expected exit status 0, got %d (exited %v)", code, exited)
	}
	if !strings.Contains(streams.stdout.String(), "🛈 Exiting with code 0.") {
		t.Errorf("expected info line, got %q", streams.stdout.String())
	}

	app, streams = newTestApp(t, r)
	code, exited = catchExit(func() {
		_ = app.Main(context.Background(), "nope")
	})
	if !exited || code != 1 {
		t.Fatalf("expected exit status 1, got %d (exited %v)", code, exited)
	}
	if !strings.Contains(streams.stderr.String(), "nope") {
		t.Errorf("expected error line containing nope, got %q", streams.stderr.String())
	}
}

func TestPass(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := NewRegistry().Start(rec.handler(Start))
	_ = r.Register("k", rec.handler("k"))
	_ = r.Register("chain", func(ctx Context, args []string) error {
		return ctx.Pass("k", args...)
	})
	app, _ := newTestApp(t, r)

	if err := app.Pass(context.Background(), "missing", "x"); err != nil {
		t.Errorf("expected missing handler to be a no-op, got %v", err)
	}
	if err := app.Pass(context.Background(), Start, "k"); err != nil {
		t.Fatal(err)
	}
	if err := app.Pass(context.Background(), Default); err != nil {
		t.Errorf("expected absent hook to be a no-op, got %v", err)
	}
	if err := app.Main(context.Background(), "chain", "z"); err != nil {
		t.Fatal(err)
	}

	want := []string{Start, Start, "k"}
	if !equalStrings(rec.names(), want) {
		t.Errorf("expected %v, got %v", want, rec.names())
	}
	if last := rec.calls[len(rec.calls)-1]; !equalStrings(last.args, []string{"z"}) {
		t.Errorf("expected passed args, got %q", last.args)
	}
}

func TestMain_HandlerContext(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_ = r.Register("k", func(ctx Context, _ []string) error {
		if ctx.Command() != "k" {
			t.Errorf("expected command k, got %q", ctx.Command())
		}
		if ctx.Name() != "tool" {
			t.Errorf("expected app name tool, got %q", ctx.Name())
		}
		if !equalStrings(ctx.Menu(), []string{"k"}) {
			t.Errorf("unexpected menu %v", ctx.Menu())
		}
		if ctx.Ctx().Value(ctxKey{}) != "v" {
			t.Error("expected the caller's context")
		}
		ctx.Logger().Debug("inside handler")
		ctx.Print().Log("ok")
		return nil
	})
	app, streams := newTestApp(t, r)

	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	if err := app.Main(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if streams.stdout.String() != " - ok\n" {
		t.Errorf("unexpected output %q", streams.stdout.String())
	}
}

type ctxKey struct{}
