package env

import (
	"errors"

	"github.com/helpingstar/gym-game2048/internal/config"
	"github.com/helpingstar/gym-game2048/internal/game"
	"github.com/helpingstar/gym-game2048/internal/registry"
)

// EnvID is the registered identifier of the default environment.
const EnvID = "game2048-v0"

// StepResult is the step tuple shared with the engine.
type StepResult = game.StepResult

// ErrWrapperTerminal is returned when stepping an episode that a
// wrapper (not the engine) has already terminated.
var ErrWrapperTerminal = errors.New("env: episode terminated by wrapper, reset first")

func init() {
	registry.Register(EnvID, func() (registry.Environment, error) {
		return New(config.Default())
	})
}
