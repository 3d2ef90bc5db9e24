package config

// Loader produces one configuration layer. A loader that finds nothing to
// read returns ErrNoConfigSource.
type Loader interface {
	Load() (map[string]any, error)
}

type mapLoader struct {
	values map[string]any
}

func (l *mapLoader) Load() (map[string]any, error) {
	return cloneDeep(l.values), nil
}

func cloneDeep(m map[string]any) map[string]any {
	cp := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = cloneDeep(nested)
		}
		cp[k] = v
	}
	return cp
}
