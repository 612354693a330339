package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stickhero/internal/games/stick"
	"github.com/vovakirdan/tui-stickhero/internal/platform/tui"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Stick Hero",
	Long: `Start a game right away with the configured input source.

Controls:
  Mouse hold     - Stretch the stick, release to drop it
  Space/Enter    - Start stretching, press again to drop
  P              - Pause
  R              - Restart (after game over)
  Esc/B          - Leave (after game over or while paused)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Wider platforms, shorter gaps, slower stick
  normal - Default platforms
  hard   - Narrow platforms, long gaps, small perfect area

Input sources:
  pointer   - Mouse and keyboard (default)
  amplitude - Loudness of a WAV recording (--wav); falls back to pointer

Examples:
  stickhero play
  stickhero play --difficulty easy
  stickhero play --config ./my-stick.yaml
  stickhero play --input amplitude --wav ./voice.wav`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	cfg := runtimeConfig()
	source := tui.OpenSource(gameCfg.Input.Source, gameCfg.Input, logger)

	store, err := storage.Open("local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
		// Continue without a leaderboard - game still works
		store = nil
	}

	model := tui.NewModel(stick.New(gameCfg), source, store, cfg).
		WithPlayer(playerName()).
		WithLogger(logger)
	runErr := tui.RunModel(model)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
