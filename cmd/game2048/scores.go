package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helpingstar/gym-game2048/internal/env"
	"github.com/helpingstar/gym-game2048/internal/platform/tui"
	"github.com/helpingstar/gym-game2048/internal/registry"
	"github.com/helpingstar/gym-game2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [env-id]",
	Short: "Show recorded episodes",
	Long: `Display the best recorded episodes for an environment.

Defaults to game2048-v0 when no environment is given.

Examples:
  game2048 scores
  game2048 scores game2048-v0 --limit 25
  game2048 scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of episodes to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse episodes interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	envID := env.EnvID
	if len(args) > 0 {
		envID = args[0]
	}

	if !registry.Exists(envID) {
		fmt.Fprintf(os.Stderr, "Error: unknown environment %q\n", envID)
		fmt.Fprintln(os.Stderr, "Run 'game2048 envs' to see registered environments.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episodes database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunEpisodes(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	episodes, err := store.TopEpisodes(envID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best episodes - %s\n", envID)
	fmt.Println()

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'game2048 play' or 'game2048 rollout' to record one.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-9s  %-7s  %-10s  %s\n", "Rank", "Score", "Max Tile", "Steps", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %-7s  %-10s  %s\n", "----", "-----", "--------", "-----", "-------", "----")

	for i, e := range episodes {
		fmt.Printf("  %-4d  %-10d  %-9d  %-7d  %-10s  %s\n",
			i+1, e.Score, e.MaxTile, e.Steps, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(envID)
	if err == nil && stats.Episodes > 0 {
		fmt.Println()
		fmt.Printf("Episodes: %d   Wins: %d   Best: %d   Avg score: %.1f\n",
			stats.Episodes, stats.Wins, stats.BestScore, stats.AvgScore)
	}
}
