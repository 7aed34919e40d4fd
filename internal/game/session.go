package game

import (
	"fmt"
	"math/bits"
	"math/rand"
)

// Status is the session state. Playing is the only non-terminal state;
// no transition ever leaves a terminal status.
type Status int

const (
	StatusPlaying Status = iota
	StatusWonGoal
	StatusLostNoMoves
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWonGoal:
		return "won_goal"
	case StatusLostNoMoves:
		return "lost_no_moves"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the episode.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// Config holds the construction parameters for a session. The goal is
// given as a plain tile value (e.g. 2048) and stored internally as its
// base-2 exponent.
type Config struct {
	Size     int
	Goal     uint64
	FourProb float64
}

// DefaultConfig returns the classic 4×4 board with goal 2048.
func DefaultConfig() Config {
	return Config{
		Size:     4,
		Goal:     2048,
		FourProb: DefaultFourProb,
	}
}

// GoalExponent converts a goal tile value to its exponent, validating
// that it is a power of two with exponent in [1, 255].
func GoalExponent(goal uint64) (uint8, error) {
	if goal == 0 || goal&(goal-1) != 0 {
		return 0, fmt.Errorf("%w: goal %d is not a power of two", ErrInvalidConfiguration, goal)
	}
	exp := bits.TrailingZeros64(goal)
	if exp < 1 {
		return 0, fmt.Errorf("%w: goal must be at least 2, got %d", ErrInvalidConfiguration, goal)
	}
	return uint8(exp), nil
}

// StepInfo carries the per-step diagnostics consumed by external reward
// shaping: the merge score of the move, the running totals and the
// legal-move mask for the post-step board.
type StepInfo struct {
	MergeScore  uint64
	Score       uint64
	StepCount   uint32
	MaxExponent uint8
	ActionMask  [4]bool
	IsLegal     bool
}

// StepResult is the step return tuple. Truncated is always false at
// this layer; a maximum-step cutoff is the caller's policy.
type StepResult struct {
	Observation [][]uint8
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        StepInfo
}

// Session orchestrates moves and spawns across steps and tracks the
// terminal status. It exclusively owns the current board and its random
// source; run one session per worker for parallel rollouts.
type Session struct {
	size    int
	goalExp uint8
	spawner Spawner

	board     Board
	rng       *rand.Rand
	score     uint64
	stepCount uint32
	status    Status
}

// NewSession validates the configuration and creates a session. Reset
// must be called before the first Step.
func NewSession(cfg Config) (*Session, error) {
	goalExp, err := GoalExponent(cfg.Goal)
	if err != nil {
		return nil, err
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfiguration, cfg.Size)
	}
	if cfg.FourProb < 0 || cfg.FourProb > 1 {
		return nil, fmt.Errorf("%w: four-tile probability %v outside [0, 1]", ErrInvalidConfiguration, cfg.FourProb)
	}
	return &Session{
		size:    cfg.Size,
		goalExp: goalExp,
		spawner: Spawner{FourProb: cfg.FourProb},
	}, nil
}

// Reset reseeds the random source, rebuilds an empty board with two
// spawned tiles and returns the initial observation. The same seed
// always produces the same initial board.
func (s *Session) Reset(seed int64) [][]uint8 {
	s.rng = rand.New(rand.NewSource(seed))
	board, err := NewBoard(s.size, s.goalExp)
	if err != nil {
		// Size and goal were validated in NewSession.
		panic(err)
	}
	for range 2 {
		board, err = s.spawner.Spawn(board, s.rng)
		if err != nil {
			panic(err)
		}
	}
	s.board = board
	s.score = 0
	s.stepCount = 0
	s.status = StatusPlaying
	return s.board.Observation()
}

// Step applies one move. A move that changes nothing is a valid no-op
// outcome: board unchanged, no spawn, reward 0. Calling Step on a
// terminal session returns ErrInvalidState.
func (s *Session) Step(dir Direction) (StepResult, error) {
	if s.status != StatusPlaying {
		return StepResult{}, fmt.Errorf("%w: status is %s, reset first", ErrInvalidState, s.status)
	}

	outcome := Apply(s.board, dir)
	reward := 0.0
	terminated := false

	if outcome.Changed {
		s.board = outcome.Board
		s.score += outcome.MergeScore

		if s.board.MaxExponent() >= s.goalExp {
			// The episode is over; no tile spawns after the winning move.
			s.status = StatusWonGoal
			terminated = true
			reward = 1
		} else {
			board, err := s.spawner.Spawn(s.board, s.rng)
			if err != nil {
				return StepResult{}, err
			}
			s.board = board
			if !AnyLegal(s.board) {
				s.status = StatusLostNoMoves
				terminated = true
				reward = -1
			}
		}
	}

	s.stepCount++
	return StepResult{
		Observation: s.board.Observation(),
		Reward:      reward,
		Terminated:  terminated,
		Truncated:   false,
		Info: StepInfo{
			MergeScore:  outcome.MergeScore,
			Score:       s.score,
			StepCount:   s.stepCount,
			MaxExponent: s.board.MaxExponent(),
			ActionMask:  LegalMoves(s.board),
			IsLegal:     outcome.Changed,
		},
	}, nil
}

// Board returns the current board value.
func (s *Session) Board() Board {
	return s.board
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// Score returns the accumulated merge score.
func (s *Session) Score() uint64 {
	return s.score
}

// StepCount returns the number of Step calls since the last Reset.
func (s *Session) StepCount() uint32 {
	return s.stepCount
}

// Size returns the board dimension.
func (s *Session) Size() int {
	return s.size
}

// GoalExponent returns the winning exponent.
func (s *Session) GoalExponent() uint8 {
	return s.goalExp
}
