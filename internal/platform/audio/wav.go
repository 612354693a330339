package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
)

// OpenWAV listens to a WAV recording in real time.
func OpenWAV(path string, thresholdDB float64) (*Trigger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	t := NewTrigger(stream, format.SampleRate, thresholdDB)
	t.closer = stream
	return t, nil
}

func init() {
	registry.Register(AmplitudeID, "Voice level", func(cfg config.StickInput) (registry.Source, error) {
		if cfg.Amplitude.WAV == "" {
			return nil, ErrNoStream
		}
		return OpenWAV(cfg.Amplitude.WAV, cfg.Amplitude.ThresholdDB)
	})
}
