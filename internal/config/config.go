// Package config provides YAML-based environment configuration loading
// for the simulation engine and its wrappers.
package config

import (
	"fmt"

	"github.com/helpingstar/gym-game2048/internal/game"
)

// EnvConfig contains all configuration for the 2048 environment.
type EnvConfig struct {
	Board    BoardConfig   `yaml:"board"`
	Spawn    SpawnConfig   `yaml:"spawn"`
	Reward   RewardConfig  `yaml:"reward"`
	Wrappers WrapperConfig `yaml:"wrappers"`
}

// BoardConfig defines the board dimension and the goal tile value.
// The goal is given as a plain tile value and must be a power of two.
type BoardConfig struct {
	Size int    `yaml:"size"`
	Goal uint64 `yaml:"goal"`
}

// SpawnConfig defines the tile spawn law.
type SpawnConfig struct {
	// FourProbability is the chance of spawning a 4 instead of a 2.
	FourProbability float64 `yaml:"four_probability"`
}

// RewardConfig defines the reward shaping applied by wrappers.
type RewardConfig struct {
	Goal float64 `yaml:"goal"` // terminal reward on reaching the goal
	Lose float64 `yaml:"lose"` // terminal reward on running out of moves
	// ScoreDivisor turns on merge-score shaping when positive: the
	// per-step reward becomes merge_score / divisor.
	ScoreDivisor float64 `yaml:"score_divisor"`
	// IllegalPenalty is the reward for an illegal action when the
	// terminate_illegal wrapper is active.
	IllegalPenalty float64 `yaml:"illegal_penalty"`
}

// WrapperConfig selects optional wrappers.
type WrapperConfig struct {
	TerminateIllegal bool `yaml:"terminate_illegal"`
}

// Validate checks the configuration, mapping failures to the engine's
// construction error.
func (c EnvConfig) Validate() error {
	if c.Board.Size <= 0 {
		return fmt.Errorf("%w: board size must be positive, got %d", game.ErrInvalidConfiguration, c.Board.Size)
	}
	if _, err := game.GoalExponent(c.Board.Goal); err != nil {
		return err
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: four_probability %v outside [0, 1]", game.ErrInvalidConfiguration, c.Spawn.FourProbability)
	}
	if c.Reward.ScoreDivisor < 0 {
		return fmt.Errorf("%w: score_divisor must not be negative", game.ErrInvalidConfiguration)
	}
	return nil
}
