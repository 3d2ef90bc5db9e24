package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestHelpHandler(t *testing.T) {
	t.Parallel()
	r := NewRegistry().Default(HelpHandler())
	_ = r.Register("build", nopHandler, WithDescription("Compile the project"), WithGroup("dev"))
	_ = r.Register("ls", nopHandler, WithDescription("List files"))
	_ = r.Register("help", HelpHandler(), WithDescription("Show this help"), WithGroup("system"))
	app, streams := newTestApp(t, r)

	if err := app.Main(context.Background(), ""); err != nil {
		t.Fatal(err)
	}

	out := streams.stdout.String()
	for _, want := range []string{
		"Usage: tool <command> [arguments]",
		"dev:\n  build  Compile the project",
		"general:\n  ls  List files",
		"system:\n  help  Show this help",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in help output:\n%s", want, out)
		}
	}
	if strings.Index(out, "dev:") > strings.Index(out, "general:") {
		t.Error("expected groups in name order")
	}
	if strings.Contains(out, "@") {
		t.Error("hooks must not be listed")
	}
}

func TestHelpHandler_SingleCommand(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_ = r.Register("build", nopHandler, WithDescription("Compile the project"))
	_ = r.Register("help", HelpHandler())
	app, streams := newTestApp(t, r)

	if err := app.Main(context.Background(), "help", "build"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(streams.stdout.String(), "build - Compile the project") {
		t.Errorf("unexpected output %q", streams.stdout.String())
	}

	err := app.Main(context.Background(), "help", "missing")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestHelpHandler_Template(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_ = r.Register("a", nopHandler)
	_ = r.Register("custom", HelpHandler(WithHelpTemplate(`{{ .Name }}{{ range .Groups }}|{{ .Name }}{{ end }}`)))
	_ = r.Register("broken", HelpHandler(WithHelpTemplate(`{{ .Name `)))
	app, streams := newTestApp(t, r)

	if err := app.Main(context.Background(), "custom"); err != nil {
		t.Fatal(err)
	}
	if streams.stdout.String() != "tool|general" {
		t.Errorf("unexpected output %q", streams.stdout.String())
	}

	if err := app.Main(context.Background(), "broken"); !errors.Is(err, ErrHelpTemplate) {
		t.Errorf("expected ErrHelpTemplate, got %v", err)
	}
}
