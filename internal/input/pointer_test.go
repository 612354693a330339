package input

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
)

func TestPointerFeed(t *testing.T) {
	p := NewPointer()

	tests := []struct {
		name     string
		ev       core.Event
		expected core.Action
	}{
		{"mouse press", core.Event{Kind: core.EventPointerPress}, core.ActionStretchBegin},
		{"mouse release", core.Event{Kind: core.EventPointerRelease}, core.ActionStretchRelease},
		{"space", core.Event{Kind: core.EventKey, Key: " "}, core.ActionStretchToggle},
		{"space by name", core.Event{Kind: core.EventKey, Key: "space"}, core.ActionStretchToggle},
		{"enter", core.Event{Kind: core.EventKey, Key: "enter"}, core.ActionStretchToggle},
		{"other key", core.Event{Kind: core.EventKey, Key: "x"}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Feed(tc.ev); got != tc.expected {
				t.Errorf("Feed(%+v) = %s, expected %s", tc.ev, got, tc.expected)
			}
		})
	}
}

func TestPointerPollIsQuiet(t *testing.T) {
	p := NewPointer()
	action, err := p.Poll(time.Second)
	if err != nil || action != core.ActionNone {
		t.Errorf("Poll() = %s, %v; expected None, nil", action, err)
	}
}

func TestPointerRegistered(t *testing.T) {
	src, err := registry.Create(PointerID, config.StickInput{})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", PointerID, err)
	}
	defer src.Close()

	if src.ID() != PointerID {
		t.Errorf("ID() = %q, expected %q", src.ID(), PointerID)
	}
}
