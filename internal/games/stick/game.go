package stick

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// ID is the game identifier, also used as the leaderboard key.
const ID = "stick"

// Game adapts the stick machine to the platform's frame loop.
type Game struct {
	cfg     config.StickConfig
	machine *Machine
	state   State
	clock   Clock
	paused  bool
	err     error // Fatal error that stopped the session
}

// New creates a stick hero game with the given configuration.
func New(cfg config.StickConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stick Hero"
}

// Reset starts a new session seeded from cfg.Seed. The first target platform
// is generated right away so it is visible before the first stretch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.machine = NewMachine(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	g.state = g.machine.EnsureTarget(g.machine.Reset())
	g.clock.Reset()
	g.paused = false
	g.err = nil
}

// Step applies the frame's input and advances the machine to now.
func (g *Game) Step(in core.InputFrame, now time.Time) (core.StepResult, error) {
	if g.err != nil {
		return core.StepResult{State: g.State()}, g.err
	}

	elapsed := g.clock.Advance(now)

	if in.Has(core.ActionPause) && g.state.Phase != PhaseDead {
		g.paused = !g.paused
	}
	if g.paused || g.state.Phase == PhaseDead {
		return core.StepResult{State: g.State()}, nil
	}

	g.applyInput(in)

	next, err := g.machine.Tick(g.state, elapsed)
	if err != nil {
		g.err = fmt.Errorf("stick: session stopped while %s: %w", g.state.Phase, err)
		return core.StepResult{State: g.State()}, g.err
	}
	g.state = next
	return core.StepResult{State: g.State()}, nil
}

// applyInput routes stretch actions in press order, so a press and release
// landing in the same frame still end the stretch. Actions that do not fit
// the phase are ignored.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionStretchBegin) {
		g.state = g.machine.BeginStretch(g.state)
	}
	if in.Has(core.ActionStretchToggle) {
		if g.state.Phase == PhaseWaiting {
			g.state = g.machine.BeginStretch(g.state)
		} else {
			g.state = g.machine.ReleaseStretch(g.state)
		}
	}
	if in.Has(core.ActionStretchRelease) {
		g.state = g.machine.ReleaseStretch(g.state)
	}
}

// State returns the current session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Perfects: g.state.Perfects,
		GameOver: g.state.Phase == PhaseDead || g.err != nil,
		Paused:   g.paused,
	}
}

// Err returns the fatal error that stopped the session, if any.
func (g *Game) Err() error {
	return g.err
}
