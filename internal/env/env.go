// Package env adapts the game engine to a gym-style reinforcement
// learning interface: discrete actions, a boxed observation space and a
// (observation, reward, terminated, truncated, info) step tuple.
// Wrappers in this package compose reward transformations on top of the
// base environment without reaching into engine internals.
package env

import (
	"fmt"

	"github.com/helpingstar/gym-game2048/internal/config"
	"github.com/helpingstar/gym-game2048/internal/game"
)

// BoxSpace describes a bounded integer observation space.
type BoxSpace struct {
	Low   uint8
	High  uint8
	Shape []int
}

// DiscreteSpace describes a finite action space with actions 0..N-1.
type DiscreteSpace struct {
	N int
}

// Environment is the contract consumed by agents and wrappers.
// Implementations must be deterministic per seed.
type Environment interface {
	// ID returns the environment identifier (e.g. "game2048-v0").
	ID() string

	// Reset starts a new episode from the given seed and returns the
	// initial observation and info.
	Reset(seed int64) (game.StepResult, error)

	// Step applies a discrete action (0: left, 1: right, 2: up, 3: down).
	Step(action int) (game.StepResult, error)

	// ObservationSpace declares the 1×size×size exponent grid bounds.
	ObservationSpace() BoxSpace

	// ActionSpace declares the four discrete move actions.
	ActionSpace() DiscreteSpace
}

// Game2048 is the base environment wrapping a game session.
type Game2048 struct {
	id      string
	session *game.Session
	size    int
	goalExp uint8
}

// New creates a base environment from a validated configuration.
func New(cfg config.EnvConfig) (*Game2048, error) {
	session, err := game.NewSession(game.Config{
		Size:     cfg.Board.Size,
		Goal:     cfg.Board.Goal,
		FourProb: cfg.Spawn.FourProbability,
	})
	if err != nil {
		return nil, err
	}
	return &Game2048{
		id:      EnvID,
		session: session,
		size:    session.Size(),
		goalExp: session.GoalExponent(),
	}, nil
}

// ID returns the environment identifier.
func (e *Game2048) ID() string {
	return e.id
}

// Reset starts a new episode. The observation in the returned result is
// the initial board; reward and termination flags are zero-valued.
func (e *Game2048) Reset(seed int64) (game.StepResult, error) {
	obs := e.session.Reset(seed)
	return game.StepResult{
		Observation: obs,
		Info: game.StepInfo{
			MaxExponent: e.session.Board().MaxExponent(),
			ActionMask:  game.LegalMoves(e.session.Board()),
			IsLegal:     true,
		},
	}, nil
}

// Step applies a discrete action mapped through game.Directions.
func (e *Game2048) Step(action int) (game.StepResult, error) {
	if action < 0 || action >= len(game.Directions) {
		return game.StepResult{}, fmt.Errorf("env: action %d outside discrete space [0, %d)", action, len(game.Directions))
	}
	return e.session.Step(game.Directions[action])
}

// ObservationSpace declares the exponent grid bounds.
func (e *Game2048) ObservationSpace() BoxSpace {
	return BoxSpace{
		Low:   0,
		High:  e.goalExp,
		Shape: []int{1, e.size, e.size},
	}
}

// ActionSpace declares the four move actions.
func (e *Game2048) ActionSpace() DiscreteSpace {
	return DiscreteSpace{N: len(game.Directions)}
}

// Session exposes the underlying session for front-ends that need board
// access beyond the observation (e.g. the TUI renderer).
func (e *Game2048) Session() *game.Session {
	return e.session
}
