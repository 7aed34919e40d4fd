package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/helpingstar/gym-game2048/internal/env"
	"github.com/helpingstar/gym-game2048/internal/game"
	"github.com/helpingstar/gym-game2048/internal/storage"
)

var (
	flagEpisodes         int
	flagMaxSteps         int
	flagDivisor          float64
	flagTerminateIllegal bool
	flagIllegalPenalty   float64
	flagNoStore          bool
)

var rolloutCmd = &cobra.Command{
	Use:   "rollout",
	Short: "Run headless random-policy episodes",
	Long: `Run episodes with a uniform random policy and no rendering.

This exercises the environment exactly the way a training loop would:
reset with a seed, step until termination or the step limit, and record
the finished episode. Episode i uses seed+i, so a batch is reproducible
from a single --seed value.

Examples:
  game2048 rollout --episodes 100 --seed 42
  game2048 rollout --episodes 10 --max-steps 500
  game2048 rollout --divisor 64 --terminate-illegal`,
	Run: runRollout,
}

func init() {
	rolloutCmd.Flags().IntVar(&flagEpisodes, "episodes", 10, "Number of episodes to run")
	rolloutCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 10000, "Step limit per episode (0 = unlimited)")
	rolloutCmd.Flags().Float64Var(&flagDivisor, "divisor", 0, "Divide merge score by this for shaped rewards (0 = sparse)")
	rolloutCmd.Flags().BoolVar(&flagTerminateIllegal, "terminate-illegal", false, "Terminate the episode on an illegal action")
	rolloutCmd.Flags().Float64Var(&flagIllegalPenalty, "penalty", -1, "Reward for an illegal action with --terminate-illegal")
	rolloutCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record episodes to the database")
	rolloutCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom environment config YAML")
	rolloutCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	rolloutCmd.Flags().Uint64Var(&flagGoal, "goal", 0, "Goal tile, power of two (overrides config)")
	rolloutCmd.Flags().Float64Var(&flagFourProb, "four-prob", -1, "Probability of spawning a 4-tile (overrides config)")
}

func runRollout(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rollout",
	})

	cfg, err := resolveEnvConfig(cmd)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	base, err := env.New(cfg)
	if err != nil {
		logger.Fatal("cannot create environment", "error", err)
	}

	// Flags override the config's reward/wrapper sections.
	divisor := cfg.Reward.ScoreDivisor
	if cmd.Flags().Changed("divisor") {
		divisor = flagDivisor
	}
	terminateIllegal := cfg.Wrappers.TerminateIllegal
	if cmd.Flags().Changed("terminate-illegal") {
		terminateIllegal = flagTerminateIllegal
	}
	penalty := cfg.Reward.IllegalPenalty
	if cmd.Flags().Changed("penalty") {
		penalty = flagIllegalPenalty
	}

	var environment env.Environment = base
	if divisor > 0 {
		environment = env.DivideReward{Env: environment, Divisor: divisor}
	}
	if cfg.Reward.Goal != 1 || cfg.Reward.Lose != -1 {
		environment = env.TerminalReward{Env: environment, Goal: cfg.Reward.Goal, Lose: cfg.Reward.Lose}
	}
	if terminateIllegal {
		environment = &env.TerminateIllegal{Env: environment, Penalty: penalty}
	}

	var store *storage.Store
	if !flagNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open episodes database", "error", err)
		} else {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy := rand.New(rand.NewSource(seed))

	logger.Info("starting rollout",
		"episodes", flagEpisodes,
		"seed", seed,
		"size", cfg.Board.Size,
		"goal", cfg.Board.Goal,
	)

	var totalScore, bestScore uint64
	var wins int

	for i := 0; i < flagEpisodes; i++ {
		episodeSeed := seed + int64(i)
		if _, err := environment.Reset(episodeSeed); err != nil {
			logger.Error("reset failed", "episode", i, "error", err)
			continue
		}

		var totalReward float64
		steps := 0
		terminated := false

		for flagMaxSteps <= 0 || steps < flagMaxSteps {
			result, err := environment.Step(policy.Intn(environment.ActionSpace().N))
			if err != nil {
				logger.Error("step failed", "episode", i, "error", err)
				break
			}
			totalReward += result.Reward
			steps++
			if result.Terminated {
				terminated = true
				break
			}
		}

		session := base.Session()
		outcome := "truncated"
		switch session.Status() {
		case game.StatusWonGoal:
			outcome = "won"
			wins++
		case game.StatusLostNoMoves:
			outcome = "lost"
		}

		score := session.Score()
		totalScore += score
		if score > bestScore {
			bestScore = score
		}

		logger.Info("episode finished",
			"episode", i,
			"seed", episodeSeed,
			"steps", steps,
			"score", score,
			"max_tile", uint64(1)<<session.Board().MaxExponent(),
			"reward", fmt.Sprintf("%.3f", totalReward),
			"outcome", outcome,
			"terminated", terminated,
		)

		if store != nil {
			if _, err := store.SaveEpisode(storage.Episode{
				EnvID:   base.ID(),
				Seed:    episodeSeed,
				Steps:   uint64(session.StepCount()),
				Score:   score,
				MaxTile: uint64(1) << session.Board().MaxExponent(),
				Outcome: outcome,
			}); err != nil {
				logger.Warn("could not save episode", "episode", i, "error", err)
			}
		}
	}

	if flagEpisodes > 0 {
		logger.Info("rollout complete",
			"episodes", flagEpisodes,
			"wins", wins,
			"best_score", bestScore,
			"avg_score", fmt.Sprintf("%.1f", float64(totalScore)/float64(flagEpisodes)),
		)
	}
}
