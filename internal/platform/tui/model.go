package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/input"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       core.Game
	source     registry.Source
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	lastPoll   time.Time
	err        error // Fatal game error
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model that plays game with input from source.
// store may be nil; scores are then neither saved nor shown.
func NewModel(game core.Game, source registry.Source, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		source:     source,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		keys:       DefaultKeyMap(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.refreshBest()
	return m
}

// WithPlayer sets the name recorded on the leaderboard.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithLogger sets the logger for runtime warnings.
func (m Model) WithLogger(logger *log.Logger) Model {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MouseEvent(msg); ok {
			m.inputFrame.Set(m.source.Feed(ev))
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world keeps going; only the view changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(m.source.Feed(KeyEvent(msg)))
	}
	return m, nil
}

// handleTick advances the game to the frame time now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.refreshBest()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.pollSource(now)

	result, err := m.game.Step(m.inputFrame, now)
	m.gameState = result.State
	m.inputFrame.Clear()
	if err != nil {
		m.err = err
		m.logger.Error("game session stopped", "game", m.game.ID(), "error", err)
		return m, tea.Quit
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	m.best = max(m.best, m.gameState.Score)

	return m, tickCmd(m.config.TickRate)
}

// pollSource samples the input device. A failing device is replaced by the
// pointer so the session can continue.
func (m *Model) pollSource(now time.Time) {
	var elapsed time.Duration
	if !m.lastPoll.IsZero() && now.After(m.lastPoll) {
		elapsed = now.Sub(m.lastPoll)
	}
	m.lastPoll = now

	action, err := m.source.Poll(elapsed)
	if err != nil {
		m.logger.Warn("input source failed, falling back to pointer", "source", m.source.ID(), "error", err)
		if closeErr := m.source.Close(); closeErr != nil {
			m.logger.Warn("cannot close input source", "source", m.source.ID(), "error", closeErr)
		}
		m.source = input.NewPointer()
		return
	}
	m.inputFrame.Set(action)
}

func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	if _, err := m.store.SaveScore(m.player, m.gameState.Score, m.gameState.Perfects); err != nil {
		m.logger.Warn("cannot save score", "error", err)
	}
}

func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("cannot read high score", "error", err)
		return
	}
	m.best = max(m.best, best)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.screen.DrawText(1, 0, m.source.Title(), core.ColorDim)
	if m.store != nil {
		best := fmt.Sprintf("Best %d", m.best)
		m.screen.DrawText(m.screen.Width()-len(best)-1, 0, best, core.ColorDim)
	}
	return RenderScreen(m.screen)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Source returns the active input source. It changes when a failing device
// falls back to the pointer.
func (m Model) Source() registry.Source {
	return m.source
}

// RunModel runs a Bubble Tea program for a single session and returns the
// game error that stopped it, if any.
func RunModel(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press and release drive the stick
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		if closeErr := fm.Source().Close(); closeErr != nil {
			fm.logger.Warn("cannot close input source", "error", closeErr)
		}
		return fm.Err()
	}
	return nil
}
