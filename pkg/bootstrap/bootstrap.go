package bootstrap

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/shuldan/clikit/pkg/cli"
	"github.com/shuldan/clikit/pkg/config"
	"github.com/shuldan/clikit/pkg/contracts"
	"github.com/shuldan/clikit/pkg/logger"
	"github.com/shuldan/clikit/pkg/output"
	"github.com/shuldan/clikit/pkg/terminal"
)

// Bootstrap assembles configuration, logger, terminal, printer and App in
// that order and runs the App under signal handling.
type Bootstrap struct {
	appName     string
	envPrefix   string
	configPaths []string
	defaults    map[string]any
	registry    *cli.Registry
	geometry    contracts.Geometry
	stdout      io.Writer
	stderr      io.Writer
	exit        func(int)
	args        []string
}

func New(appName string, envPrefix string, configPaths ...string) *Bootstrap {
	return &Bootstrap{
		appName:     appName,
		envPrefix:   envPrefix,
		configPaths: configPaths,
		registry:    cli.NewRegistry(),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exit:        os.Exit,
	}
}

func (b *Bootstrap) WithRegistry(r *cli.Registry) *Bootstrap {
	if r != nil {
		b.registry = r
	}
	return b
}

// WithSingle switches to single mode: h receives every invocation.
func (b *Bootstrap) WithSingle(h cli.Handler) *Bootstrap {
	b.registry = cli.NewRegistry().Single(h)
	return b
}

// WithDefaults layers values over the built-in defaults, below YAML and
// environment configuration.
func (b *Bootstrap) WithDefaults(values map[string]any) *Bootstrap {
	b.defaults = values
	return b
}

func (b *Bootstrap) WithGeometry(g contracts.Geometry) *Bootstrap {
	b.geometry = g
	return b
}

func (b *Bootstrap) WithStreams(stdout, stderr io.Writer) *Bootstrap {
	if stdout != nil {
		b.stdout = stdout
	}
	if stderr != nil {
		b.stderr = stderr
	}
	return b
}

func (b *Bootstrap) WithExitFunc(exit func(int)) *Bootstrap {
	if exit != nil {
		b.exit = exit
	}
	return b
}

func (b *Bootstrap) WithArgs(args ...string) *Bootstrap {
	b.args = append([]string{}, args...)
	return b
}

func (b *Bootstrap) LoadConfig() (contracts.Config, error) {
	loaders := []config.Loader{
		config.NewMapLoader(builtinDefaults()),
		config.NewMapLoader(b.defaults),
		config.NewYamlConfigLoader(b.configPaths...),
	}
	if b.envPrefix != "" {
		loaders = append(loaders, config.NewEnvConfigLoader(b.envPrefix))
	}

	values, err := config.NewChainLoader(loaders...).Load()
	if err != nil {
		return nil, ErrConfig.WithCause(err)
	}
	return config.NewMapConfig(values), nil
}

func (b *Bootstrap) CreateApp() (*cli.App, error) {
	cfg, err := b.LoadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.FromConfig(cfg, logger.WithWriter(b.stderr))
	if err != nil {
		return nil, ErrLogger.WithCause(err)
	}
	log = log.With("app", b.appName)

	termOpts := []terminal.Option{
		terminal.WithTputPath(cfg.GetString("terminal.tput", "tput")),
		terminal.WithClearCommand(cfg.GetString("terminal.clear", "clear")),
		terminal.WithStdout(b.stdout),
		terminal.WithStderr(b.stderr),
		terminal.WithLogger(log),
	}
	if b.geometry != nil {
		termOpts = append(termOpts, terminal.WithGeometry(b.geometry))
	}

	printer := output.New(terminal.New(termOpts...), printerOptions(cfg, b.stdout, b.stderr, log)...)

	opts := []cli.Option{
		cli.WithName(b.appName),
		cli.WithPrinter(printer),
		cli.WithLogger(log),
		cli.WithExitFunc(b.exit),
	}
	if b.args != nil {
		opts = append(opts, cli.WithArgs(b.args...))
	}

	return cli.New(b.registry, opts...)
}

// Run builds the App and executes it until it finishes or the process
// receives SIGINT or SIGTERM, which cancels the context handed to
// handlers and spawned commands.
func (b *Bootstrap) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b.run(ctx)
}

func (b *Bootstrap) run(ctx context.Context) {
	app, err := b.CreateApp()
	if err != nil {
		output.New(nil, output.WithStdout(b.stdout), output.WithStderr(b.stderr)).Error(err.Error())
		b.exit(1)
		return
	}

	cli.Execute(ctx, app)
}

func printerOptions(cfg contracts.Config, stdout, stderr io.Writer, log contracts.Logger) []output.Option {
	opts := []output.Option{
		output.WithStdout(stdout),
		output.WithStderr(stderr),
		output.WithLogger(log),
		output.WithWidth(cfg.GetInt("output.width", output.DefaultWidth)),
		output.WithFill(cfg.GetString("output.fill", output.DefaultFill)),
	}
	if cfg.GetBool("output.boxed") {
		opts = append(opts, output.WithBoxedHeaders())
	}
	if cfg.GetBool("output.color") {
		opts = append(opts, output.WithColor())
	}
	return opts
}

func builtinDefaults() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level":  "warn",
			"format": "text",
		},
		"output": map[string]any{
			"width": output.DefaultWidth,
			"fill":  output.DefaultFill,
			"boxed": false,
			"color": false,
		},
		"terminal": map[string]any{
			"tput":  "tput",
			"clear": "clear",
		},
	}
}
