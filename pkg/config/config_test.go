package config

import "testing"

func newOutputConfig() *MapConfig {
	return &MapConfig{values: map[string]any{
		"output": map[string]any{
			"width":  100,
			"fill":   "=",
			"boxed":  "yes",
			"color":  false,
			"ratio":  0.5,
			"groups": []any{"general", "system"},
		},
		"terminal": map[string]any{
			"tput": "/usr/bin/tput",
		},
		"log": nil,
		"raw": map[any]any{"key": "value"},
	}}
}

func TestMapConfig_HasAndGet(t *testing.T) {
	t.Parallel()
	cfg := newOutputConfig()

	if !cfg.Has("output.width") {
		t.Error("expected output.width to exist")
	}
	if !cfg.Has("log") {
		t.Error("expected nil value to count as present")
	}
	if cfg.Has("output.missing") || cfg.Has("output.width.deeper") {
		t.Error("expected missing paths to be absent")
	}
	if cfg.Get("terminal.tput") != "/usr/bin/tput" {
		t.Errorf("unexpected terminal.tput %v", cfg.Get("terminal.tput"))
	}
	if cfg.Get("raw.key") != "value" {
		t.Errorf("expected map[any]any traversal, got %v", cfg.Get("raw.key"))
	}
}

func TestMapConfig_GetString(t *testing.T) {
	t.Parallel()
	cfg := newOutputConfig()

	tests := []struct {
		key      string
		expected string
	}{
		{"output.fill", "="},
		{"output.width", "100"},
		{"output.color", "false"},
		{"log", ""},
		{"missing", "fallback"},
	}

	for _, tt := range tests {
		if got := cfg.GetString(tt.key, "fallback"); got != tt.expected {
			t.Errorf("GetString(%s) = %q, expected %q", tt.key, got, tt.expected)
		}
	}
}

func TestMapConfig_GetInt(t *testing.T) {
	t.Parallel()
	cfg := NewMapConfig(map[string]any{
		"int":     42,
		"int64":   int64(7),
		"uint64":  uint64(9),
		"float":   3.9,
		"bool":    true,
		"string":  "12",
		"invalid": "wide",
	})

	tests := []struct {
		key      string
		expected int
	}{
		{"int", 42},
		{"int64", 7},
		{"uint64", 9},
		{"float", 3},
		{"bool", 1},
		{"string", 12},
		{"invalid", 80},
		{"missing", 80},
	}

	for _, tt := range tests {
		if got := cfg.GetInt(tt.key, 80); got != tt.expected {
			t.Errorf("GetInt(%s) = %d, expected %d", tt.key, got, tt.expected)
		}
	}
}

func TestMapConfig_GetBool(t *testing.T) {
	t.Parallel()
	cfg := newOutputConfig()

	if !cfg.GetBool("output.boxed") {
		t.Error("expected \"yes\" to be true")
	}
	if cfg.GetBool("output.color", true) {
		t.Error("expected explicit false to win over default")
	}
	if !cfg.GetBool("output.missing", true) {
		t.Error("expected default for missing key")
	}
	if cfg.GetBool("output.fill", false) {
		t.Error("expected default for non-boolean string")
	}
}

func TestMapConfig_GetSub(t *testing.T) {
	t.Parallel()
	cfg := newOutputConfig()

	sub, ok := cfg.GetSub("output")
	if !ok {
		t.Fatal("expected output section")
	}
	if sub.GetInt("width") != 100 {
		t.Errorf("expected width 100, got %d", sub.GetInt("width"))
	}
	if _, ok := cfg.GetSub("output.fill"); ok {
		t.Error("expected scalar not to be a section")
	}
	if _, ok := cfg.GetSub("missing"); ok {
		t.Error("expected missing section")
	}
}

func TestMapConfig_All_ReturnsCopy(t *testing.T) {
	t.Parallel()
	cfg := NewMapConfig(map[string]any{"a": 1})

	all := cfg.All()
	all["a"] = 2

	if cfg.GetInt("a") != 1 {
		t.Error("All must not expose the backing map")
	}
}

func TestNewMapConfig_Nil(t *testing.T) {
	t.Parallel()
	cfg := NewMapConfig(nil)
	if cfg.Has("anything") || len(cfg.All()) != 0 {
		t.Error("expected empty config")
	}
}
