package stick

// Snapshot is the render state handed to renderers. It shares nothing with
// the live game, so holding on to it is safe.
type Snapshot struct {
	State
	Paused     bool
	Aborted    bool
	FirstRound bool // No crossing attempted yet this session
}

// Snapshot returns the current render state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:      g.state.Clone(),
		Paused:     g.paused,
		Aborted:    g.err != nil,
		FirstRound: len(g.state.Sticks) == 1 && g.state.Phase == PhaseWaiting,
	}
}
