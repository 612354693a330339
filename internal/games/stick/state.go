// Package stick implements the stick hero game: stretch a stick to bridge
// the gap to the next platform, then walk across it.
//
// The simulation is a phase state machine driven by elapsed milliseconds.
// Machine owns the rules; State is the value it advances.
package stick

import "github.com/vovakirdan/tui-stickhero/internal/core"

// Phase is the current step of a crossing attempt.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseStretching
	PhaseTurning
	PhaseWalking
	PhaseTransitioning
	PhaseFalling
	PhaseDead
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseStretching:
		return "stretching"
	case PhaseTurning:
		return "turning"
	case PhaseWalking:
		return "walking"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseFalling:
		return "falling"
	case PhaseDead:
		return "dead"
	default:
		return "invalid"
	}
}

// Platform is a landing zone on the ground strip. Platforms never move.
type Platform struct {
	X float64
	W float64
}

// Span returns the platform as a ground interval.
func (p Platform) Span() core.Span {
	return core.Span{Start: p.X, Width: p.W}
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// Stick is one crossing attempt. X is fixed at the edge it grows from.
type Stick struct {
	X        float64
	Length   float64
	Rotation float64 // Degrees clockwise from upright
}

// FarX returns where the stick tip lands once it lies flat.
func (s Stick) FarX() float64 {
	return s.X + s.Length
}

// Hero is the player character. X is its right edge, Y grows downward while falling.
type Hero struct {
	X float64
	Y float64
}

// Landing is the verdict of a landing evaluation.
type Landing struct {
	Platform int  // Index into State.Platforms, or NoPlatform on a miss
	Perfect  bool // Tip landed inside the perfect area
}

// NoPlatform marks a landing that hit no platform.
const NoPlatform = -1

// Landed reports whether the stick reached a platform.
func (l Landing) Landed() bool {
	return l.Platform != NoPlatform
}

// State is the complete simulation state of one session.
type State struct {
	Phase       Phase
	Platforms   []Platform // Append-only
	Sticks      []Stick    // Last element is the active stick
	Hero        Hero
	Score       int
	Perfects    int // Perfect landings, tracked but not scored
	SceneOffset float64
	Landing     Landing // Latest landing evaluation
}

// ActiveStick returns the stick of the current crossing.
func (s State) ActiveStick() Stick {
	return s.Sticks[len(s.Sticks)-1]
}

// LastPlatform returns the furthest platform generated so far.
func (s State) LastPlatform() Platform {
	return s.Platforms[len(s.Platforms)-1]
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	c := s
	c.Platforms = append(make([]Platform, 0, len(s.Platforms)+1), s.Platforms...)
	c.Sticks = append(make([]Stick, 0, len(s.Sticks)+1), s.Sticks...)
	return c
}
