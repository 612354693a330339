// Package audio provides the amplitude input source: speak up to stretch the
// stick, go quiet to drop it.
//
// The source reads sample windows from a beep.Streamer in step with the host
// frames and compares their RMS level against a dBFS threshold.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// AmplitudeID is the registry ID of the amplitude source.
const AmplitudeID = "amplitude"

// ErrNoStream is returned when the amplitude source has nothing to listen to.
var ErrNoStream = errors.New("audio: no sample stream configured")

// Trigger raises stretch actions on level edges: begin when the level rises
// above the threshold, release when it falls back below.
type Trigger struct {
	stream      beep.Streamer
	closer      io.Closer
	rate        beep.SampleRate
	thresholdDB float64
	loud        bool
	drained     bool
	buf         [][2]float64
}

// NewTrigger listens to stream, sampled at rate.
func NewTrigger(stream beep.Streamer, rate beep.SampleRate, thresholdDB float64) *Trigger {
	return &Trigger{
		stream:      stream,
		rate:        rate,
		thresholdDB: thresholdDB,
	}
}

// ID returns the registry ID.
func (t *Trigger) ID() string {
	return AmplitudeID
}

// Title returns the display name.
func (t *Trigger) Title() string {
	return "Voice level"
}

// Feed ignores host events.
func (t *Trigger) Feed(core.Event) core.Action {
	return core.ActionNone
}

// Poll reads the samples covering elapsed and reports a level edge, if any.
// A finished stream counts as silence.
func (t *Trigger) Poll(elapsed time.Duration) (core.Action, error) {
	if t.drained {
		return t.edge(false), nil
	}

	n := t.rate.N(elapsed)
	if n <= 0 {
		return core.ActionNone, nil
	}
	if cap(t.buf) < n {
		t.buf = make([][2]float64, n)
	}
	window := t.buf[:n]

	filled := 0
	for filled < n {
		got, ok := t.stream.Stream(window[filled:])
		filled += got
		if !ok {
			t.drained = true
			if err := t.stream.Err(); err != nil {
				return core.ActionNone, fmt.Errorf("audio: sample stream failed: %w", err)
			}
			break
		}
	}

	if filled == 0 {
		return t.edge(false), nil
	}
	return t.edge(LevelDB(window[:filled]) > t.thresholdDB), nil
}

// edge updates the loud flag and returns the action for a change.
func (t *Trigger) edge(loud bool) core.Action {
	switch {
	case loud && !t.loud:
		t.loud = true
		return core.ActionStretchBegin
	case !loud && t.loud:
		t.loud = false
		return core.ActionStretchRelease
	default:
		return core.ActionNone
	}
}

// Close releases the underlying stream, if it owns one.
func (t *Trigger) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// LevelDB returns the RMS level of the mono mix of samples in dBFS.
// Silence is negative infinity.
func LevelDB(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return math.Inf(-1)
	}
	var sum float64
	for _, s := range samples {
		mono := (s[0] + s[1]) / 2
		sum += mono * mono
	}
	rms := math.Sqrt(sum / float64(len(samples)))
	if rms == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(rms)
}
