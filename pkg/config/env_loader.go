package config

import (
	"os"
	"strconv"
	"strings"
)

// envConfigLoader maps PREFIX_SECTION__KEY=value to section.key, converting
// booleans and integers.
type envConfigLoader struct {
	prefix  string
	environ func() []string
}

func (l *envConfigLoader) Load() (map[string]any, error) {
	environ := l.environ
	if environ == nil {
		environ = os.Environ
	}

	config := make(map[string]any)

	for _, env := range environ() {
		key, value, found := strings.Cut(env, "=")
		if !found || !strings.HasPrefix(key, l.prefix) {
			continue
		}

		configKey := strings.ToLower(strings.TrimPrefix(key, l.prefix))
		configKey = strings.ReplaceAll(configKey, "__", ".")
		if configKey == "" {
			continue
		}

		setNested(config, configKey, typedValue(value))
	}

	if len(config) == 0 {
		return nil, ErrNoConfigSource.WithDetail("loader", "env:"+l.prefix)
	}

	return config, nil
}

// typedValue converts only unambiguous spellings: "true"/"false" in any case
// and canonical integers. Everything else, "T" or "007" included, stays a
// string so single-character settings such as output fill survive.
func typedValue(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(value); err == nil && strconv.Itoa(i) == value {
		return i
	}
	return value
}

func setNested(m map[string]any, key string, value any) {
	keys := strings.Split(key, ".")
	last := len(keys) - 1

	current := m
	for i, k := range keys {
		if i == last {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}
