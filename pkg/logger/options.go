package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format selects how records are encoded.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Option func(*options)

type options struct {
	level  slog.Level
	format Format
	source bool
	color  bool
	writer io.Writer
}

// defaultOptions keep diagnostics off stdout, which belongs to command
// output, and hide everything below warn.
func defaultOptions() *options {
	return &options{
		level:  slog.LevelWarn,
		format: FormatText,
		writer: os.Stderr,
	}
}

func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat picks the encoding. NewLogger rejects unknown formats.
func WithFormat(format Format) Option {
	return func(o *options) {
		if format != "" {
			o.format = format
		}
	}
}

// WithSource adds the caller's file and line to every record.
func WithSource() Option {
	return func(o *options) {
		o.source = true
	}
}

// WithColor styles level labels when the writer is a terminal.
func WithColor() Option {
	return func(o *options) {
		o.color = true
	}
}

// WithWriter redirects records; nil discards them.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.writer = w
	}
}
