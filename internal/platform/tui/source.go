package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/input"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
)

// OpenSource creates the input source with the given ID. A source that
// cannot be opened degrades to the pointer with a warning, so a missing
// microphone never stops a game from starting.
func OpenSource(id string, cfg config.StickInput, logger *log.Logger) registry.Source {
	if id == "" {
		id = input.PointerID
	}

	src, err := registry.Create(id, cfg)
	if err == nil {
		return src
	}

	if logger != nil {
		logger.Warn("input source unavailable, falling back to pointer", "source", id, "error", err)
	}
	return input.NewPointer()
}
