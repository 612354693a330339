package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stickhero/internal/games/stick"
	"github.com/vovakirdan/tui-stickhero/internal/platform/tui"
	"github.com/vovakirdan/tui-stickhero/internal/registry"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick an input mode, then play",
	Long: `Start in interactive menu mode.

Pick how you want to stretch the stick, play, and come back to the menu
after a game over. Scores of this run are kept on the leaderboard (Tab)
until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select input mode
  Tab          - Leaderboard
  Q            - Quit

Examples:
  stickhero menu
  stickhero menu --fps 30
  stickhero menu --wav ./voice.wav`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open("local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	logger := newLogger()
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, registry.List(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		source := tui.OpenSource(menuResult.SourceID, gameCfg.Input, logger)

		// Fresh platforms for each game unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		model := tui.NewModel(stick.New(gameCfg), source, store, cfg).
			WithPlayer(playerName()).
			WithLogger(logger)
		if err := tui.RunModel(model); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			if store != nil {
				store.Close()
			}
			os.Exit(1)
		}
	}
}
