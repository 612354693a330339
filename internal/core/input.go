package core

// Action represents a semantic game action, abstracted from the device that raised it.
// Input sources translate mouse buttons, keys or audio levels into these.
type Action int

const (
	ActionNone           Action = iota
	ActionStretchBegin          // Mouse press, loud sample window - start growing the stick
	ActionStretchRelease        // Mouse release, quiet after loud - let the stick fall
	ActionStretchToggle         // Space, Enter - begin when waiting, release when stretching
	ActionPause                 // P - pause/unpause the session
	ActionRestart               // R - restart after game over
	ActionBack                  // B, Escape - leave the session
	ActionQuit                  // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStretchBegin:
		return "StretchBegin"
	case ActionStretchRelease:
		return "StretchRelease"
	case ActionStretchToggle:
		return "StretchToggle"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions raised between two host frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// ActionNone is ignored so callers can pass source results through unchecked.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// EventKind classifies a host input event.
type EventKind int

const (
	EventKey EventKind = iota
	EventPointerPress
	EventPointerRelease
)

// Event is a platform-neutral host input event handed to input sources.
type Event struct {
	Kind EventKind
	Key  string // Key name for EventKey ("space", "enter", ...)
}
