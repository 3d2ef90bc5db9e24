package bootstrap

import "github.com/shuldan/clikit/pkg/errors"

var newBootstrapCode = errors.WithPrefix("BOOTSTRAP")

var (
	ErrConfig = newBootstrapCode().New("failed to load configuration")
	ErrLogger = newBootstrapCode().New("failed to create logger")
)
