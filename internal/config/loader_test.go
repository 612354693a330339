package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseStick(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultStickConfig() {
		t.Errorf("embedded YAML and DefaultStickConfig() differ:\n%+v\n%+v", cfg, DefaultStickConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultStickConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadStickCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stick.yaml")
	data := []byte("speeds:\n  stretching: 8\ngeometry:\n  perfect_area_size: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStick(path)
	if err != nil {
		t.Fatalf("LoadStick() failed: %v", err)
	}
	if cfg.Speeds.Stretching != 8 {
		t.Errorf("stretching speed = %v, expected 8", cfg.Speeds.Stretching)
	}
	if cfg.Geometry.PerfectAreaSize != 4 {
		t.Errorf("perfect area = %v, expected 4", cfg.Geometry.PerfectAreaSize)
	}
	// Untouched values keep their defaults
	if cfg.Speeds.Turning != 4 || cfg.Platforms.MaxGap != 200 {
		t.Errorf("unspecified values should keep defaults, got %+v", cfg)
	}
}

func TestLoadStickCustomPathErrors(t *testing.T) {
	if _, err := LoadStick(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("speeds: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStick(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	zero := filepath.Join(t.TempDir(), "zero.yaml")
	if err := os.WriteFile(zero, []byte("speeds:\n  walking: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStick(zero); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero speed should be ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StickConfig)
	}{
		{"negative turning speed", func(c *StickConfig) { c.Speeds.Turning = -1 }},
		{"inverted gap range", func(c *StickConfig) { c.Platforms.MinGap, c.Platforms.MaxGap = 200, 40 }},
		{"zero min width", func(c *StickConfig) { c.Platforms.MinWidth = 0 }},
		{"zero seed width", func(c *StickConfig) { c.Geometry.SeedPlatformWidth = 0 }},
		{"zero fall depth", func(c *StickConfig) { c.Geometry.FallDepth = 0 }},
		{"zero render scale", func(c *StickConfig) { c.Render.UnitsPerRow = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStickConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyStickPreset(t *testing.T) {
	normal := DefaultStickConfig()
	ApplyStickPreset(&normal, DifficultyNormal)
	if normal != DefaultStickConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultStickConfig()
	ApplyStickPreset(&easy, DifficultyEasy)
	if easy.Platforms.MinWidth <= normal.Platforms.MinWidth {
		t.Errorf("easy should widen platforms, min width %v", easy.Platforms.MinWidth)
	}

	hard := DefaultStickConfig()
	ApplyStickPreset(&hard, DifficultyHard)
	if hard.Platforms.MaxWidth >= normal.Platforms.MaxWidth {
		t.Errorf("hard should narrow platforms, max width %v", hard.Platforms.MaxWidth)
	}
	for _, c := range []StickConfig{easy, hard} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset config should validate: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
