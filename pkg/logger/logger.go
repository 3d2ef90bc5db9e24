package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shuldan/clikit/pkg/contracts"
)

type sLogger struct {
	logger *slog.Logger
}

// NewLogger builds a logger writing to stderr at warn level unless options
// say otherwise.
func NewLogger(opts ...Option) (contracts.Logger, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	handler, err := o.handler()
	if err != nil {
		return nil, err
	}

	return &sLogger{logger: slog.New(handler)}, nil
}

// NewNop returns a logger that discards every record.
func NewNop() contracts.Logger {
	return &sLogger{logger: slog.New(nopHandler{})}
}

func (o *options) handler() (slog.Handler, error) {
	switch o.format {
	case FormatText:
		return newTextHandler(o.writer, o.level, o.source, o.color && isTerminal(o.writer)), nil
	case FormatJSON:
		return slog.NewJSONHandler(o.writer, &slog.HandlerOptions{
			Level:       o.level,
			AddSource:   o.source,
			ReplaceAttr: renameLevel,
		}), nil
	}
	return nil, ErrUnknownFormat.WithDetail("format", string(o.format))
}

func (l *sLogger) Trace(msg string, args ...any) {
	l.log(levelTrace, msg, args)
}

func (l *sLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args)
}

func (l *sLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args)
}

func (l *sLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args)
}

func (l *sLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args)
}

func (l *sLogger) Critical(msg string, args ...any) {
	l.log(levelCritical, msg, args)
}

func (l *sLogger) With(args ...any) contracts.Logger {
	return &sLogger{logger: l.logger.With(args...)}
}

// log records the caller of the exported method as the source.
func (l *sLogger) log(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

// renameLevel gives the custom levels their names in JSON output.
func renameLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		return slog.String(slog.LevelKey, levelName(level))
	}
	return a
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }
