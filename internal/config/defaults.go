package config

import (
	_ "embed"

	"github.com/helpingstar/gym-game2048/internal/game"
)

//go:embed defaults/game2048.yaml
var defaultGame2048YAML []byte

// Default returns the default environment configuration: classic 4×4
// board, goal 2048, 10% four-tiles, sparse rewards.
func Default() EnvConfig {
	return EnvConfig{
		Board: BoardConfig{
			Size: 4,
			Goal: 2048,
		},
		Spawn: SpawnConfig{
			FourProbability: game.DefaultFourProb,
		},
		Reward: RewardConfig{
			Goal:           1.0,
			Lose:           -1.0,
			ScoreDivisor:   0,
			IllegalPenalty: 0,
		},
		Wrappers: WrapperConfig{
			TerminateIllegal: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultGame2048YAML
}
