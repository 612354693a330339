package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/input"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

var testSources = []registry.SourceInfo{
	{ID: "amplitude", Title: "Voice level"},
	{ID: input.PointerID, Title: "Mouse / Space"},
}

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return nm
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(nil, testSources, core.DefaultConfig())

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp}) // Already at top
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Already at bottom
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("Expected a selection after Enter")
	}
	if m.Selected().ID != input.PointerID {
		t.Errorf("Selected %q, expected %q", m.Selected().ID, input.PointerID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKey(t, NewMenuModel(nil, testSources, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Expected Tab to open the scoreboard")
	}

	m = menuKey(t, NewMenuModel(nil, testSources, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("Expected q to quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(t.Name())
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("ann", 17, 0)

	view := NewMenuModel(store, testSources, core.DefaultConfig()).View()
	if !strings.Contains(view, "best 17") {
		t.Error("Expected menu to show the best score")
	}
	for _, src := range testSources {
		if !strings.Contains(view, src.Title) {
			t.Errorf("Expected menu to list %q", src.Title)
		}
	}
}

func TestScoreboardListsScores(t *testing.T) {
	store, err := storage.Open(t.Name())
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	empty := NewScoreboardModel(store, 100, 30).View()
	if !strings.Contains(empty, "No scores recorded yet") {
		t.Error("Expected empty leaderboard message")
	}

	store.SaveScore("ann", 9, 1)
	store.SaveScore("bob", 4, 0)

	view := NewScoreboardModel(store, 100, 30).View()
	for _, want := range []string{"ann", "bob", "2 sessions"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected scoreboard to contain %q", want)
		}
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Expected Esc to go back")
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	m := NewSessionModel(nil, cfg, SessionConfig{
		Player:  "remote",
		Game:    config.DefaultStickConfig(),
		Sources: []registry.SourceInfo{{ID: input.PointerID, Title: "Mouse / Space"}},
	})

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := m.Update(msg)
		m = next.(SessionModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("Expected game screen after selecting a source, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "Mouse / Space") {
		t.Error("Expected game view to show the input source")
	}

	// Pause, then leave to the menu
	step(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	step(TickMsg(frameTime))
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("Expected menu after leaving a paused game, got %v", m.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("Expected leaderboard after Tab, got %v", m.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("Expected menu after leaving the leaderboard, got %v", m.screen)
	}

	if cmd := step(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); !isQuit(cmd) {
		t.Error("Expected q to end the session")
	}
}
