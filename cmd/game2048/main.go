// game2048 is a deterministic 2048 environment for reinforcement
// learning experiments, with a terminal front-end for humans.
//
// Usage:
//
//	game2048 play               - Play interactively in the terminal
//	game2048 rollout            - Run headless random-policy episodes
//	game2048 envs               - List registered environments
//	game2048 scores             - Show recorded episodes
//	game2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible episodes
//	--db <path>     - Set database path (default: ~/.gym-game2048/episodes.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import environments to register them
	_ "github.com/helpingstar/gym-game2048/internal/env"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game2048",
	Short: "game2048 - A deterministic 2048 environment for RL and terminals",
	Long: `game2048 is a 2048 simulation engine built for reinforcement
learning control loops, with a terminal front-end for humans.

Available commands:
  play     - Play interactively in the terminal
  rollout  - Run headless random-policy episodes
  envs     - List registered environments
  scores   - View recorded episodes
  serve    - Start SSH server for remote play

Examples:
  game2048 play
  game2048 play --size 5 --goal 4096
  game2048 rollout --episodes 100 --seed 42
  game2048 scores
  game2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gym-game2048/episodes.db", "Path to episodes database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rolloutCmd)
	rootCmd.AddCommand(envsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
