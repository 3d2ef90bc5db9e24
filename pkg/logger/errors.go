package logger

import "github.com/shuldan/clikit/pkg/errors"

var newLoggerCode = errors.WithPrefix("LOGGER")

var ErrUnknownFormat = newLoggerCode().New("unknown log format {{.format}}")
