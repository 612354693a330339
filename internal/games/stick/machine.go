package stick

import (
	"fmt"

	"github.com/vovakirdan/tui-stickhero/internal/config"
)

// Rotation limits in degrees.
const (
	RotationFlat   = 90.0  // Stick bridges the gap
	RotationHanged = 180.0 // Stick hangs down after a miss
)

// Machine advances stick hero states. It holds the rules and the platform
// generator; the state itself is passed in and returned.
type Machine struct {
	geometry config.StickGeometry
	speeds   config.StickSpeeds
	gen      *PlatformGenerator
}

// NewMachine creates a machine for the given rules, drawing platforms from rng.
func NewMachine(cfg config.StickConfig, rng RandSource) *Machine {
	return &Machine{
		geometry: cfg.Geometry,
		speeds:   cfg.Speeds,
		gen:      NewPlatformGenerator(rng, cfg.Platforms),
	}
}

// Reset returns a fresh session: the seed platform, one upright zero-length
// stick at its right edge, and the hero standing near that edge.
func (m *Machine) Reset() State {
	seed := Platform{X: m.geometry.SeedPlatformX, W: m.geometry.SeedPlatformWidth}
	return State{
		Phase:     PhaseWaiting,
		Platforms: []Platform{seed},
		Sticks:    []Stick{{X: seed.Right()}},
		Hero:      Hero{X: seed.Right() - m.geometry.HeroDistanceFromEdge},
		Landing:   Landing{Platform: NoPlatform},
	}
}

// EnsureTarget generates the next platform when none lies ahead of the active stick.
func (m *Machine) EnsureTarget(s State) State {
	if s.LastPlatform().X >= s.ActiveStick().X {
		return s
	}
	next := s.Clone()
	next.Platforms = append(next.Platforms, m.gen.Next(s.LastPlatform()))
	return next
}

// BeginStretch starts growing the stick. Only valid while waiting.
func (m *Machine) BeginStretch(s State) State {
	if s.Phase != PhaseWaiting {
		return s
	}
	next := m.EnsureTarget(s)
	next.Phase = PhaseStretching
	return next
}

// ReleaseStretch lets the stick fall. Only valid while stretching.
func (m *Machine) ReleaseStretch(s State) State {
	if s.Phase != PhaseStretching {
		return s
	}
	s.Phase = PhaseTurning
	return s
}

// Tick advances s by elapsedMs milliseconds. Negative or NaN elapsed time
// counts as zero. Errors are fatal for the session.
func (m *Machine) Tick(s State, elapsedMs float64) (State, error) {
	dt := elapsedMs
	if !(dt > 0) {
		dt = 0
	}

	switch s.Phase {
	case PhaseWaiting, PhaseDead:
		return s, nil
	case PhaseStretching:
		next := s.Clone()
		next.Sticks[len(next.Sticks)-1].Length += dt / m.speeds.Stretching
		return next, nil
	case PhaseTurning:
		return m.turn(s.Clone(), dt)
	case PhaseWalking:
		return m.walk(s.Clone(), dt)
	case PhaseTransitioning:
		return m.transition(s.Clone(), dt)
	case PhaseFalling:
		return m.fall(s.Clone(), dt), nil
	default:
		return s, fmt.Errorf("%w: %d", ErrInvalidPhase, int(s.Phase))
	}
}

func (m *Machine) turn(s State, dt float64) (State, error) {
	stick := &s.Sticks[len(s.Sticks)-1]
	stick.Rotation += dt / m.speeds.Turning
	if stick.Rotation < RotationFlat {
		return s, nil
	}
	stick.Rotation = RotationFlat

	landing, err := Land(*stick, s.Platforms, m.geometry.PerfectAreaSize)
	if err != nil {
		return s, err
	}
	s.Landing = landing
	if landing.Landed() {
		s.Score++
		if landing.Perfect {
			s.Perfects++
		}
		s.Platforms = append(s.Platforms, m.gen.Next(s.LastPlatform()))
	}
	s.Phase = PhaseWalking
	return s, nil
}

func (m *Machine) walk(s State, dt float64) (State, error) {
	s.Hero.X += dt / m.speeds.Walking

	if !s.Landing.Landed() {
		maxX := s.ActiveStick().FarX() + m.geometry.HeroWidth
		if s.Hero.X >= maxX {
			s.Hero.X = maxX
			s.Phase = PhaseFalling
		}
		return s, nil
	}

	target, err := landedPlatform(s)
	if err != nil {
		return s, err
	}
	maxX := target.Right() - m.geometry.HeroDistanceFromEdge
	if s.Hero.X >= maxX {
		s.Hero.X = maxX
		s.Phase = PhaseTransitioning
	}
	return s, nil
}

func (m *Machine) transition(s State, dt float64) (State, error) {
	s.SceneOffset += dt / m.speeds.Transitioning

	target, err := landedPlatform(s)
	if err != nil {
		return s, err
	}
	if s.SceneOffset > target.Right()-m.geometry.PaddingX {
		s.Sticks = append(s.Sticks, Stick{X: target.Right()})
		s.Phase = PhaseWaiting
	}
	return s, nil
}

func (m *Machine) fall(s State, dt float64) State {
	stick := &s.Sticks[len(s.Sticks)-1]
	stick.Rotation = min(stick.Rotation+dt/m.speeds.Turning, RotationHanged)

	s.Hero.Y += dt / m.speeds.Falling
	if s.Hero.Y > m.geometry.FallDepth {
		s.Phase = PhaseDead
	}
	return s
}

// landedPlatform returns the platform of the latest landing.
func landedPlatform(s State) (Platform, error) {
	i := s.Landing.Platform
	if i < 0 || i >= len(s.Platforms) {
		return Platform{}, fmt.Errorf("%w: %s with landing on platform %d of %d", ErrInvariantViolation, s.Phase, i, len(s.Platforms))
	}
	return s.Platforms[i], nil
}
