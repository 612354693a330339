package stick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-stickhero/internal/config"
)

// scriptedRand replays fixed values in order, wrapping around.
type scriptedRand struct {
	values []float64
	next   int
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// With default platform ranges, 0.8125 then 0.5 places the target at
// x=270 w=60, so its midpoint is 300.
func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	cfg := config.DefaultStickConfig()
	cfg.Speeds.Stretching = 0.5 // 100ms grows the stick by 200 units
	return NewMachine(cfg, &scriptedRand{values: []float64{0.8125, 0.5}})
}

func tick(t *testing.T, m *Machine, s State, ms float64) State {
	t.Helper()
	next, err := m.Tick(s, ms)
	require.NoError(t, err)
	return next
}

func TestResetGeometry(t *testing.T) {
	m := newTestMachine(t)

	for i := 0; i < 3; i++ {
		s := m.Reset()
		assert.Equal(t, PhaseWaiting, s.Phase)
		assert.Equal(t, []Platform{{X: 50, W: 50}}, s.Platforms)
		assert.Equal(t, []Stick{{X: 100, Length: 0, Rotation: 0}}, s.Sticks)
		assert.Equal(t, Hero{X: 90, Y: 0}, s.Hero)
		assert.Zero(t, s.Score)
		assert.Zero(t, s.Perfects)
		assert.Zero(t, s.SceneOffset)
		assert.False(t, s.Landing.Landed())
	}
}

func TestEnsureTarget(t *testing.T) {
	m := newTestMachine(t)
	s := m.Reset()

	withTarget := m.EnsureTarget(s)
	require.Len(t, withTarget.Platforms, 2)
	assert.Equal(t, Platform{X: 270, W: 60}, withTarget.Platforms[1])
	assert.Len(t, s.Platforms, 1, "input state must not change")

	again := m.EnsureTarget(withTarget)
	assert.Len(t, again.Platforms, 2, "existing target should be reused")
}

func TestBeginAndReleaseOnlyFromTheirPhase(t *testing.T) {
	m := newTestMachine(t)
	s := m.Reset()

	assert.Equal(t, PhaseWaiting, m.ReleaseStretch(s).Phase, "release while waiting is a no-op")

	s = m.BeginStretch(s)
	require.Equal(t, PhaseStretching, s.Phase)
	assert.Len(t, s.Platforms, 2, "begin should generate the target platform")
	assert.Equal(t, s, m.BeginStretch(s), "begin while stretching is a no-op")

	s = m.ReleaseStretch(s)
	require.Equal(t, PhaseTurning, s.Phase)
	assert.Equal(t, s, m.ReleaseStretch(s), "release while turning is a no-op")
	assert.Equal(t, s, m.BeginStretch(s), "begin while turning is a no-op")
}

func TestStretchingIsMonotonic(t *testing.T) {
	m := newTestMachine(t)
	s := m.BeginStretch(m.Reset())

	prev := s.ActiveStick().Length
	for _, ms := range []float64{0, 16.7, 0, 3, 100, 0.001, -20, 33} {
		s = tick(t, m, s, ms)
		length := s.ActiveStick().Length
		assert.GreaterOrEqual(t, length, prev, "after %vms", ms)
		prev = length
	}
	assert.Equal(t, PhaseStretching, s.Phase)
}

func TestTurningClampsAtFlat(t *testing.T) {
	m := newTestMachine(t)
	s := m.ReleaseStretch(tick(t, m, m.BeginStretch(m.Reset()), 10))

	s = tick(t, m, s, 200) // 50 degrees
	assert.Equal(t, PhaseTurning, s.Phase)
	assert.InDelta(t, 50, s.ActiveStick().Rotation, 1e-9)

	s = tick(t, m, s, 10_000)
	assert.Equal(t, PhaseWalking, s.Phase)
	assert.Equal(t, RotationFlat, s.ActiveStick().Rotation)
}

func TestSuccessfulCrossing(t *testing.T) {
	m := newTestMachine(t)
	s := m.BeginStretch(m.Reset())

	s = tick(t, m, s, 100)
	require.InDelta(t, 200, s.ActiveStick().Length, 1e-9)

	s = m.ReleaseStretch(s)
	s = tick(t, m, s, 400)
	require.Equal(t, PhaseWalking, s.Phase)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 1, s.Perfects)
	assert.Equal(t, Landing{Platform: 1, Perfect: true}, s.Landing)
	assert.Len(t, s.Platforms, 3, "landing should generate the next platform")

	s = tick(t, m, s, 500)
	assert.Equal(t, PhaseWalking, s.Phase)
	s = tick(t, m, s, 500)
	require.Equal(t, PhaseTransitioning, s.Phase)
	assert.Equal(t, 320.0, s.Hero.X, "hero stops near the far edge of the target")

	s = tick(t, m, s, 100)
	assert.Equal(t, PhaseTransitioning, s.Phase)
	assert.InDelta(t, 50, s.SceneOffset, 1e-9)

	s = tick(t, m, s, 400)
	require.Equal(t, PhaseWaiting, s.Phase)
	require.Len(t, s.Sticks, 2)
	assert.Equal(t, Stick{X: 330}, s.ActiveStick())
	assert.Equal(t, 1, s.Score)

	s = m.BeginStretch(s)
	assert.Len(t, s.Platforms, 3, "platform generated on landing is the next target")
}

func TestMissedCrossingFalls(t *testing.T) {
	m := newTestMachine(t)
	s := m.BeginStretch(m.Reset())
	s = tick(t, m, s, 12.5) // 25 units, far end at 125
	s = m.ReleaseStretch(s)
	s = tick(t, m, s, 1000)

	require.Equal(t, PhaseWalking, s.Phase)
	assert.False(t, s.Landing.Landed())
	assert.Zero(t, s.Score)
	assert.Len(t, s.Platforms, 2, "a miss generates nothing")

	s = tick(t, m, s, 1000)
	require.Equal(t, PhaseFalling, s.Phase)
	assert.Equal(t, 142.0, s.Hero.X, "hero walks past the stick tip by its own width")

	s = tick(t, m, s, 200)
	assert.Equal(t, PhaseFalling, s.Phase)
	assert.InDelta(t, 140, s.ActiveStick().Rotation, 1e-9)
	assert.InDelta(t, 100, s.Hero.Y, 1e-9)

	s = tick(t, m, s, 10_000)
	require.Equal(t, PhaseDead, s.Phase)
	assert.Equal(t, RotationHanged, s.ActiveStick().Rotation)

	frozen := tick(t, m, s, 1000)
	assert.Equal(t, s, frozen, "dead sessions do not advance")
	assert.Equal(t, PhaseDead, m.BeginStretch(frozen).Phase)
}

func TestScoreCountsEachLandingOnce(t *testing.T) {
	cfg := config.DefaultStickConfig()
	m := NewMachine(cfg, &scriptedRand{values: []float64{0, 0}}) // gap 40, width 20
	s := m.Reset()

	scores := []int{s.Score}
	for round := 0; round < 5; round++ {
		s = m.BeginStretch(s)
		target := s.LastPlatform()
		s = tick(t, m, s, (target.Span().Mid()-s.ActiveStick().X)*cfg.Speeds.Stretching)
		s = m.ReleaseStretch(s)
		for s.Phase != PhaseWaiting {
			s = tick(t, m, s, 16)
			scores = append(scores, s.Score)
			require.NotEqual(t, PhaseDead, s.Phase)
		}
	}

	assert.Equal(t, 5, s.Score)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i], scores[i-1])
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	m := newTestMachine(t)
	s := m.BeginStretch(m.Reset())
	before := s.Clone()

	_ = tick(t, m, s, 100)
	assert.Equal(t, before, s)
}

func TestTickInvalidPhase(t *testing.T) {
	m := newTestMachine(t)
	s := m.Reset()
	s.Phase = Phase(42)

	_, err := m.Tick(s, 16)
	assert.ErrorIs(t, err, ErrInvalidPhase)
	assert.Equal(t, "invalid", s.Phase.String())
}

func TestTickLandingOutOfRange(t *testing.T) {
	m := newTestMachine(t)
	s := m.Reset()
	s.Phase = PhaseWalking
	s.Landing = Landing{Platform: 7}

	_, err := m.Tick(s, 16)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestWaitingIgnoresTime(t *testing.T) {
	m := newTestMachine(t)
	s := m.Reset()
	assert.Equal(t, s, tick(t, m, s, 5000))
}
