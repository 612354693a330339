// stickhero is Stick Hero for the terminal: stretch a stick across the gap,
// walk over it, and try not to fall.
//
// Usage:
//
//	stickhero play            - Play right away
//	stickhero menu            - Pick an input mode interactively
//	stickhero serve           - Start SSH server for remote play
//	stickhero inputs          - List available input sources
//	stickhero config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible platforms
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--input <id>          - Input source (default: from config, "pointer")
//	--wav <path>          - WAV recording for the amplitude source
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"

	// Import input sources to register them
	_ "github.com/vovakirdan/tui-stickhero/internal/input"
	_ "github.com/vovakirdan/tui-stickhero/internal/platform/audio"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagInput      string
	flagWAV        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stickhero",
	Short: "Stick Hero - bridge the gaps in your terminal",
	Long: `Stick Hero is a one-button arcade game for the terminal.

Hold the mouse button (or tap space) to grow a stick, let go to drop it
across the gap. Land on the next platform to score; land in its red
center for a perfect.

Available commands:
  play     - Play right away
  menu     - Pick an input mode interactively
  serve    - Start SSH server for remote play
  inputs   - List available input sources
  config   - Print the default game config

Examples:
  stickhero play
  stickhero play --difficulty hard --seed 42
  stickhero play --input amplitude --wav ./voice.wav
  stickhero serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "Input source ID (see 'stickhero inputs')")
	rootCmd.PersistentFlags().StringVar(&flagWAV, "wav", "", "WAV recording for the amplitude input source")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inputsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from the config file, the
// difficulty preset and the input flags.
func loadGameConfig() (config.StickConfig, error) {
	cfg, err := config.LoadStick(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", flagDifficulty)
	}
	config.ApplyStickPreset(&cfg, preset)

	if flagInput != "" {
		cfg.Input.Source = flagInput
	}
	if flagWAV != "" {
		cfg.Input.Amplitude.WAV = flagWAV
	}

	return cfg, cfg.Validate()
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// newLogger returns the logger for runtime warnings.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stickhero",
	})
}

// playerName is the name recorded on the session leaderboard.
func playerName() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}
