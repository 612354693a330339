// Package registry provides a global registry of input source factories.
// Sources register themselves in init() functions, allowing the platform
// to offer every strategy without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// Source turns a device into stretch actions. The game never knows which
// source raised an action.
type Source interface {
	// ID returns a unique identifier (e.g., "pointer", "amplitude").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Feed translates a host event. Sources that do not listen to host
	// events return ActionNone.
	Feed(ev core.Event) core.Action

	// Poll samples the device for the time elapsed since the last poll.
	// Event-driven sources return ActionNone.
	Poll(elapsed time.Duration) (core.Action, error)

	// Close releases the device.
	Close() error
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	ID    string
	Title string
}

// Factory creates a source from the input configuration.
type Factory func(cfg config.StickInput) (Source, error)

type entry struct {
	title   string
	factory Factory
}

var (
	sources = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a source factory to the registry.
// Typically called from a source package's init() function.
// Panics if a source with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sources[id]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", id))
	}
	sources[id] = entry{title: title, factory: f}
}

// List returns information about all registered sources, sorted by ID.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(sources))
	for id, e := range sources {
		result = append(result, SourceInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a source by its ID.
// Returns an error if the ID is not registered or the device cannot be opened.
func Create(id string, cfg config.StickInput) (Source, error) {
	mu.RLock()
	e, ok := sources[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown input source %q", id)
	}

	src, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot open input source %q: %w", id, err)
	}
	return src, nil
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sources[id]
	return ok
}
