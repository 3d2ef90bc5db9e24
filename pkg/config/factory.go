package config

import "github.com/shuldan/clikit/pkg/contracts"

var (
	_ Loader = (*envConfigLoader)(nil)
	_ Loader = (*yamlConfigLoader)(nil)
	_ Loader = (*chainLoader)(nil)
	_ Loader = (*mapLoader)(nil)
)

func NewEnvConfigLoader(prefix string) Loader {
	return &envConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) Loader {
	return &yamlConfigLoader{paths: paths}
}

func NewMapLoader(values map[string]any) Loader {
	return &mapLoader{values: values}
}

func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

func NewMapConfig(values map[string]any) contracts.Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapConfig{values: values}
}

// Load layers defaults, the first existing YAML file among paths and
// environment variables carrying envPrefix, in that order of precedence.
func Load(defaults map[string]any, envPrefix string, paths ...string) (contracts.Config, error) {
	values, err := NewChainLoader(
		NewMapLoader(defaults),
		NewYamlConfigLoader(paths...),
		NewEnvConfigLoader(envPrefix),
	).Load()
	if err != nil {
		return nil, err
	}
	return NewMapConfig(values), nil
}
