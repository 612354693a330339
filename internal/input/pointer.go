// Package input provides the pointer input source: hold the mouse button
// (or tap space) to stretch, let go to drop the stick.
package input

import (
	"time"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
)

// PointerID is the registry ID of the pointer source.
const PointerID = "pointer"

// Pointer maps mouse presses and the stretch keys to actions.
// Terminals report no key releases, so keys toggle instead of hold.
type Pointer struct{}

// NewPointer creates a pointer source.
func NewPointer() *Pointer {
	return &Pointer{}
}

// ID returns the registry ID.
func (p *Pointer) ID() string {
	return PointerID
}

// Title returns the display name.
func (p *Pointer) Title() string {
	return "Mouse / Space"
}

// Feed translates a host event into a stretch action.
func (p *Pointer) Feed(ev core.Event) core.Action {
	switch ev.Kind {
	case core.EventPointerPress:
		return core.ActionStretchBegin
	case core.EventPointerRelease:
		return core.ActionStretchRelease
	case core.EventKey:
		switch ev.Key {
		case " ", "space", "enter":
			return core.ActionStretchToggle
		}
	}
	return core.ActionNone
}

// Poll never raises actions; the pointer is event-driven.
func (p *Pointer) Poll(time.Duration) (core.Action, error) {
	return core.ActionNone, nil
}

// Close is a no-op.
func (p *Pointer) Close() error {
	return nil
}

func init() {
	registry.Register(PointerID, "Mouse / Space", func(config.StickInput) (registry.Source, error) {
		return NewPointer(), nil
	})
}
