package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// yamlConfigLoader reads the first existing file among paths.
type yamlConfigLoader struct {
	paths []string
}

func (l *yamlConfigLoader) Load() (map[string]any, error) {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, ErrReadFile.WithDetail("path", path).WithCause(err)
		}

		config := make(map[string]any)
		if err = yaml.UnmarshalWithOptions(data, &config, yaml.UseJSONUnmarshaler()); err != nil {
			return nil, ErrParseYAML.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}

		return config, nil
	}

	return nil, ErrNoConfigSource.WithDetail("loader", "yaml")
}
