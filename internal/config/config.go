// Package config provides YAML-based game configuration loading and
// difficulty presets for stick hero.
package config

// StickConfig contains all configuration for the stick hero game.
type StickConfig struct {
	Geometry  StickGeometry  `yaml:"geometry"`
	Platforms StickPlatforms `yaml:"platforms"`
	Speeds    StickSpeeds    `yaml:"speeds"`
	Render    StickRender    `yaml:"render"`
	Input     StickInput     `yaml:"input"`
}

// StickGeometry defines the world layout, in world units.
type StickGeometry struct {
	SeedPlatformX        float64 `yaml:"seed_platform_x"`
	SeedPlatformWidth    float64 `yaml:"seed_platform_width"`
	PlatformHeight       float64 `yaml:"platform_height"`
	HeroDistanceFromEdge float64 `yaml:"hero_distance_from_edge"`
	HeroWidth            float64 `yaml:"hero_width"`
	HeroHeight           float64 `yaml:"hero_height"`
	PaddingX             float64 `yaml:"padding_x"`
	PerfectAreaSize      float64 `yaml:"perfect_area_size"`
	FallDepth            float64 `yaml:"fall_depth"` // Hero y at which a fall ends the session
}

// StickPlatforms defines the random ranges for generated platforms.
// Both ranges are half-open: [min, max).
type StickPlatforms struct {
	MinGap   float64 `yaml:"min_gap"`
	MaxGap   float64 `yaml:"max_gap"`
	MinWidth float64 `yaml:"min_width"`
	MaxWidth float64 `yaml:"max_width"`
}

// StickSpeeds are divisors: milliseconds of elapsed time per world unit (or degree).
// Larger values are slower.
type StickSpeeds struct {
	Stretching    float64 `yaml:"stretching"`
	Turning       float64 `yaml:"turning"`
	Walking       float64 `yaml:"walking"`
	Transitioning float64 `yaml:"transitioning"`
	Falling       float64 `yaml:"falling"`
}

// StickRender maps world units onto terminal cells.
type StickRender struct {
	UnitsPerColumn float64 `yaml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row"`
	ViewWidth      float64 `yaml:"view_width"` // World units the camera frames
}

// StickInput configures the input sources.
type StickInput struct {
	Source    string          `yaml:"source"` // Registered source ID ("pointer", "amplitude")
	Amplitude AmplitudeConfig `yaml:"amplitude"`
}

// AmplitudeConfig configures the amplitude-threshold input source.
type AmplitudeConfig struct {
	WAV         string  `yaml:"wav"`          // Sample stream to listen to
	ThresholdDB float64 `yaml:"threshold_db"` // dBFS level that counts as loud
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset returns the preset for a flag value. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
