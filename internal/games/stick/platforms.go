package stick

import (
	"math"

	"github.com/vovakirdan/tui-stickhero/internal/config"
)

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// PlatformGenerator lays out platforms one after another.
type PlatformGenerator struct {
	rng RandSource
	cfg config.StickPlatforms
}

// NewPlatformGenerator creates a generator drawing from rng.
func NewPlatformGenerator(rng RandSource, cfg config.StickPlatforms) *PlatformGenerator {
	return &PlatformGenerator{rng: rng, cfg: cfg}
}

// Next returns the platform following prev. The gap from prev's right edge is
// drawn from [MinGap, MaxGap) and the width from [MinWidth, MaxWidth), both
// floored to whole units.
func (g *PlatformGenerator) Next(prev Platform) Platform {
	gap := g.cfg.MinGap + math.Floor(g.rng.Float64()*(g.cfg.MaxGap-g.cfg.MinGap))
	width := g.cfg.MinWidth + math.Floor(g.rng.Float64()*(g.cfg.MaxWidth-g.cfg.MinWidth))
	return Platform{X: prev.Right() + gap, W: width}
}
