package env

// The three composable reward transformers. Each wraps an Environment
// and post-processes the step tuple; none of them touches the engine.
// Wrapping order changes semantics: TerminateIllegal applied outside
// DivideReward sees the already-shaped reward, and vice versa.

// DivideReward replaces the default sparse reward with the move's merge
// score divided by a configured divisor, preserving terminal rewards
// set by an inner wrapper or the base environment.
type DivideReward struct {
	Env     Environment
	Divisor float64
}

// ID returns the wrapped environment's identifier.
func (w DivideReward) ID() string { return w.Env.ID() }

// Reset delegates to the wrapped environment.
func (w DivideReward) Reset(seed int64) (StepResult, error) {
	return w.Env.Reset(seed)
}

// Step shapes the reward of non-terminal steps.
func (w DivideReward) Step(action int) (StepResult, error) {
	result, err := w.Env.Step(action)
	if err != nil {
		return result, err
	}
	if !result.Terminated && w.Divisor > 0 {
		result.Reward = float64(result.Info.MergeScore) / w.Divisor
	}
	return result, nil
}

// ObservationSpace delegates to the wrapped environment.
func (w DivideReward) ObservationSpace() BoxSpace { return w.Env.ObservationSpace() }

// ActionSpace delegates to the wrapped environment.
func (w DivideReward) ActionSpace() DiscreteSpace { return w.Env.ActionSpace() }

// TerminalReward substitutes the default +1/-1 terminal rewards with
// configured values, keyed on the sign of the engine's default reward.
type TerminalReward struct {
	Env  Environment
	Goal float64
	Lose float64
}

// ID returns the wrapped environment's identifier.
func (w TerminalReward) ID() string { return w.Env.ID() }

// Reset delegates to the wrapped environment.
func (w TerminalReward) Reset(seed int64) (StepResult, error) {
	return w.Env.Reset(seed)
}

// Step replaces terminal rewards.
func (w TerminalReward) Step(action int) (StepResult, error) {
	result, err := w.Env.Step(action)
	if err != nil {
		return result, err
	}
	if result.Terminated {
		if result.Reward > 0 {
			result.Reward = w.Goal
		} else if result.Reward < 0 {
			result.Reward = w.Lose
		}
	}
	return result, nil
}

// ObservationSpace delegates to the wrapped environment.
func (w TerminalReward) ObservationSpace() BoxSpace { return w.Env.ObservationSpace() }

// ActionSpace delegates to the wrapped environment.
func (w TerminalReward) ActionSpace() DiscreteSpace { return w.Env.ActionSpace() }

// TerminateIllegal escalates an illegal action (a move that changes
// nothing) from the engine's default no-op outcome to an immediate
// episode termination with a penalty reward.
type TerminateIllegal struct {
	Env     Environment
	Penalty float64

	terminated bool
}

// ID returns the wrapped environment's identifier.
func (w *TerminateIllegal) ID() string { return w.Env.ID() }

// Reset delegates to the wrapped environment and clears the wrapper's
// terminal latch.
func (w *TerminateIllegal) Reset(seed int64) (StepResult, error) {
	w.terminated = false
	return w.Env.Reset(seed)
}

// Step terminates the episode on the first illegal action. Once the
// wrapper has terminated an episode, further steps are refused the same
// way the engine refuses steps on a terminal session.
func (w *TerminateIllegal) Step(action int) (StepResult, error) {
	if w.terminated {
		return StepResult{}, ErrWrapperTerminal
	}
	result, err := w.Env.Step(action)
	if err != nil {
		return result, err
	}
	if !result.Info.IsLegal {
		result.Terminated = true
		result.Reward = w.Penalty
		w.terminated = true
	}
	return result, nil
}

// ObservationSpace delegates to the wrapped environment.
func (w *TerminateIllegal) ObservationSpace() BoxSpace { return w.Env.ObservationSpace() }

// ActionSpace delegates to the wrapped environment.
func (w *TerminateIllegal) ActionSpace() DiscreteSpace { return w.Env.ActionSpace() }
