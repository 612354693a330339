package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/games/stick"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

// SessionConfig describes what a session may offer its player.
type SessionConfig struct {
	Player  string
	Game    config.StickConfig
	Sources []registry.SourceInfo
	Logger  *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the leaderboard one key away. This is the top-level model used for SSH
// sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	session    SessionConfig
	screen     sessionScreen
	menu       MenuModel
	gameModel  *Model
	scoreboard ScoreboardModel
	err        error
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, sc SessionConfig) SessionModel {
	return SessionModel{
		store:   store,
		config:  cfg,
		session: sc,
		menu:    NewMenuModel(store, sc.Sources, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		m.config = m.menu.Config()
		source := OpenSource(m.menu.Selected().ID, m.session.Game.Input, m.session.Logger)
		gameModel := NewModel(stick.New(m.session.Game), source, m.store, m.config).
			WithPlayer(m.session.Player).
			WithLogger(m.session.Logger)
		m.gameModel = &gameModel
		m.screen = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	switch {
	case m.gameModel.Err() != nil:
		m.err = m.gameModel.Err()
		m.closeSource()
		m.quitting = true
		return m, tea.Quit

	case m.gameModel.IsQuitting():
		m.closeSource()
		m.quitting = true
		return m, tea.Quit

	case m.gameModel.BackToMenu():
		// The game model asked its program to quit; the session keeps going
		m.closeSource()
		m.gameModel = nil
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the leaderboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.session.Sources, m.config)
}

func (m *SessionModel) closeSource() {
	if m.gameModel == nil {
		return
	}
	if err := m.gameModel.Source().Close(); err != nil && m.session.Logger != nil {
		m.session.Logger.Warn("cannot close input source", "error", err)
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Err returns the game error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}
