package logger

import (
	"log/slog"
	"strings"

	"github.com/shuldan/clikit/pkg/contracts"
)

// OptionsFromConfig reads the "log" section: level, format (text|json),
// add_source and color.
func OptionsFromConfig(cfg contracts.Config) []Option {
	if cfg == nil {
		return nil
	}

	sub, ok := cfg.GetSub("log")
	if !ok {
		return nil
	}

	opts := []Option{
		WithLevel(ParseLevel(sub.GetString("level"), slog.LevelWarn)),
		WithFormat(Format(strings.ToLower(strings.TrimSpace(sub.GetString("format"))))),
	}
	if sub.GetBool("add_source") {
		opts = append(opts, WithSource())
	}
	if sub.GetBool("color") {
		opts = append(opts, WithColor())
	}

	return opts
}

// FromConfig builds a logger from cfg; opts are applied after the
// configured ones.
func FromConfig(cfg contracts.Config, opts ...Option) (contracts.Logger, error) {
	return NewLogger(append(OptionsFromConfig(cfg), opts...)...)
}
