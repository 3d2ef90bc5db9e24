package config

import "github.com/shuldan/clikit/pkg/errors"

// chainLoader merges layers in order; later layers win. Layers reporting
// ErrNoConfigSource are skipped, any other failure aborts the load.
type chainLoader struct {
	loaders []Loader
}

func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)

	for _, loader := range c.loaders {
		config, err := loader.Load()
		if errors.Is(err, ErrNoConfigSource) {
			continue
		}
		if err != nil {
			return nil, ErrMergeFailed.WithCause(err)
		}

		mergeMaps(final, config)
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if vMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, vMap)
				continue
			}
			v = cloneDeep(vMap)
		}
		dst[k] = v
	}
}
