package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helpingstar/gym-game2048/internal/config"
	"github.com/helpingstar/gym-game2048/internal/platform/tui"
	"github.com/helpingstar/gym-game2048/internal/storage"
)

var (
	flagConfig   string
	flagSize     int
	flagGoal     uint64
	flagFourProb float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the terminal",
	Long: `Start an interactive game in the terminal.

Controls:
  Arrows/WASD/HJKL - Move tiles
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  game2048 play
  game2048 play --size 5 --goal 4096
  game2048 play --seed 42
  game2048 play --config ./my-env.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom environment config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	playCmd.Flags().Uint64Var(&flagGoal, "goal", 0, "Goal tile, power of two (overrides config)")
	playCmd.Flags().Float64Var(&flagFourProb, "four-prob", -1, "Probability of spawning a 4-tile (overrides config)")
}

// resolveEnvConfig loads the environment config and applies flag
// overrides.
func resolveEnvConfig(cmd *cobra.Command) (config.EnvConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("size") {
		cfg.Board.Size = flagSize
	}
	if cmd.Flags().Changed("goal") {
		cfg.Board.Goal = flagGoal
	}
	if cmd.Flags().Changed("four-prob") {
		cfg.Spawn.FourProbability = flagFourProb
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := resolveEnvConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open episode storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open episodes database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, tui.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
