package config

import "github.com/shuldan/clikit/pkg/errors"

var newConfigCode = errors.WithPrefix("CONFIG")

var (
	ErrNoConfigSource = newConfigCode().New("no configuration source found for {{.loader}}")
	ErrReadFile       = newConfigCode().New("failed to read configuration file {{.path}}")
	ErrParseYAML      = newConfigCode().New("failed to parse YAML file {{.path}}: {{.reason}}")
	ErrMergeFailed    = newConfigCode().New("failed to load configuration layers")
)
