package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid stick config")

// LoadStick loads the stick hero configuration.
// Search order: customPath -> ~/.stickhero/configs/stick.yaml -> ./configs/stick.yaml -> embedded default.
// Files only need to name the values they override.
func LoadStick(customPath string) (StickConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StickConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseStick(data)
		if err != nil {
			return StickConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stick.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseStick(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stick.yaml"); err == nil {
		if cfg, err := parseStick(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := parseStick(defaultStickYAML)
	if err != nil {
		return DefaultStickConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseStick decodes YAML on top of the hardcoded defaults.
func parseStick(data []byte) (StickConfig, error) {
	cfg := DefaultStickConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StickConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stickhero", "configs", filename)
}

// Validate reports the first value the game cannot run with.
func (c StickConfig) Validate() error {
	speeds := map[string]float64{
		"stretching":    c.Speeds.Stretching,
		"turning":       c.Speeds.Turning,
		"walking":       c.Speeds.Walking,
		"transitioning": c.Speeds.Transitioning,
		"falling":       c.Speeds.Falling,
	}
	for name, v := range speeds {
		if v <= 0 {
			return fmt.Errorf("%w: speeds.%s must be positive, got %v", ErrInvalidConfig, name, v)
		}
	}

	p := c.Platforms
	if p.MinGap < 0 || p.MaxGap < p.MinGap {
		return fmt.Errorf("%w: platforms gap range [%v, %v)", ErrInvalidConfig, p.MinGap, p.MaxGap)
	}
	if p.MinWidth <= 0 || p.MaxWidth < p.MinWidth {
		return fmt.Errorf("%w: platforms width range [%v, %v)", ErrInvalidConfig, p.MinWidth, p.MaxWidth)
	}

	if c.Geometry.SeedPlatformWidth <= 0 {
		return fmt.Errorf("%w: geometry.seed_platform_width must be positive", ErrInvalidConfig)
	}
	if c.Geometry.FallDepth <= 0 {
		return fmt.Errorf("%w: geometry.fall_depth must be positive", ErrInvalidConfig)
	}
	if c.Render.UnitsPerColumn <= 0 || c.Render.UnitsPerRow <= 0 {
		return fmt.Errorf("%w: render scales must be positive", ErrInvalidConfig)
	}
	return nil
}

// ApplyStickPreset modifies the config based on a difficulty preset.
// Presets only reshape platform generation; scoring is unchanged.
func ApplyStickPreset(cfg *StickConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.MinWidth = 40
		cfg.Platforms.MaxWidth = 110
		cfg.Platforms.MaxGap = 160
		cfg.Speeds.Stretching = 5
	case DifficultyHard:
		cfg.Platforms.MinWidth = 12
		cfg.Platforms.MaxWidth = 60
		cfg.Platforms.MaxGap = 220
		cfg.Geometry.PerfectAreaSize = 6
		cfg.Speeds.Stretching = 3
	}
}
