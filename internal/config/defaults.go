package config

import (
	_ "embed"
)

//go:embed defaults/stick.yaml
var defaultStickYAML []byte

// DefaultStickConfig returns the default stick hero configuration.
// It mirrors defaults/stick.yaml and is used when the embedded file cannot be parsed.
func DefaultStickConfig() StickConfig {
	return StickConfig{
		Geometry: StickGeometry{
			SeedPlatformX:        50,
			SeedPlatformWidth:    50,
			PlatformHeight:       100,
			HeroDistanceFromEdge: 10,
			HeroWidth:            17,
			HeroHeight:           30,
			PaddingX:             100,
			PerfectAreaSize:      10,
			FallDepth:            200,
		},
		Platforms: StickPlatforms{
			MinGap:   40,
			MaxGap:   200,
			MinWidth: 20,
			MaxWidth: 100,
		},
		Speeds: StickSpeeds{
			Stretching:    4,
			Turning:       4,
			Walking:       4,
			Transitioning: 2,
			Falling:       2,
		},
		Render: StickRender{
			UnitsPerColumn: 5,
			UnitsPerRow:    12,
			ViewWidth:      375,
		},
		Input: StickInput{
			Source: "pointer",
			Amplitude: AmplitudeConfig{
				ThresholdDB: -50,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `stickhero config` style dumps.
func DefaultYAML() []byte {
	return defaultStickYAML
}
