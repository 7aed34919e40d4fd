package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"goal not a power of two", Config{Size: 4, Goal: 2000, FourProb: 0.1}},
		{"goal zero", Config{Size: 4, Goal: 0, FourProb: 0.1}},
		{"goal one", Config{Size: 4, Goal: 1, FourProb: 0.1}},
		{"non-positive size", Config{Size: 0, Goal: 2048, FourProb: 0.1}},
		{"negative probability", Config{Size: 4, Goal: 2048, FourProb: -0.5}},
		{"probability above one", Config{Size: 4, Goal: 2048, FourProb: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSession(tt.cfg); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("NewSession(%+v) error = %v, want ErrInvalidConfiguration", tt.cfg, err)
			}
		})
	}

	if _, err := NewSession(DefaultConfig()); err != nil {
		t.Errorf("NewSession(DefaultConfig()) failed: %v", err)
	}
}

func TestGoalExponent(t *testing.T) {
	exp, err := GoalExponent(2048)
	if err != nil {
		t.Fatalf("GoalExponent(2048) failed: %v", err)
	}
	if exp != 11 {
		t.Errorf("GoalExponent(2048) = %d, want 11", exp)
	}

	if _, err := GoalExponent(48); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("GoalExponent(48) error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	s, err := NewSession(DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	obs := s.Reset(12345)

	tiles := 0
	for _, row := range obs {
		for _, v := range row {
			if v != 0 {
				tiles++
				if v != 1 && v != 2 {
					t.Errorf("initial tile exponent = %d, want 1 or 2", v)
				}
			}
		}
	}
	if tiles != 2 {
		t.Errorf("reset spawned %d tiles, want 2", tiles)
	}
	if s.Status() != StatusPlaying {
		t.Errorf("status after reset = %s, want playing", s.Status())
	}
	if s.StepCount() != 0 || s.Score() != 0 {
		t.Errorf("counters after reset = (%d, %d), want (0, 0)", s.StepCount(), s.Score())
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	s1, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s2, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	s1.Reset(12345)
	s2.Reset(12345)

	if !s1.Board().Equal(s2.Board()) {
		t.Errorf("same seed produced different initial boards:\n%vvs\n%v", s1.Board(), s2.Board())
	}
}

func TestDeterministicTrace(t *testing.T) {
	// Two separately constructed sessions replaying the same actions
	// from the same seed must yield identical observation/reward traces.
	cfg := DefaultConfig()
	actions := []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirDown, DirRight, DirUp}

	run := func() ([][][]uint8, []float64) {
		s, err := NewSession(cfg)
		if err != nil {
			t.Fatalf("NewSession() failed: %v", err)
		}
		s.Reset(42)

		var observations [][][]uint8
		var rewards []float64
		for _, a := range actions {
			result, err := s.Step(a)
			if err != nil {
				t.Fatalf("Step(%s) failed: %v", a, err)
			}
			observations = append(observations, result.Observation)
			rewards = append(rewards, result.Reward)
			if result.Terminated {
				break
			}
		}
		return observations, rewards
	}

	obs1, rewards1 := run()
	obs2, rewards2 := run()

	if !reflect.DeepEqual(obs1, obs2) {
		t.Error("same seed and actions produced different observation traces")
	}
	if !reflect.DeepEqual(rewards1, rewards2) {
		t.Errorf("same seed and actions produced different reward traces: %v vs %v", rewards1, rewards2)
	}
}

func TestNoOpMove(t *testing.T) {
	s, err := NewSession(DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Reset(1)

	// Tiles already packed left with no merge available: left is a no-op.
	s.board = boardFromGrid(t, [][]uint8{
		{1, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, s.goalExp)

	result, err := s.Step(DirLeft)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if result.Terminated {
		t.Error("no-op move should not terminate the episode")
	}
	if result.Reward != 0 {
		t.Errorf("no-op reward = %v, want 0", result.Reward)
	}
	if result.Info.IsLegal {
		t.Error("no-op move should be flagged illegal in info")
	}
	if result.Info.MergeScore != 0 {
		t.Errorf("no-op merge score = %d, want 0", result.Info.MergeScore)
	}

	// Board unchanged and no tile spawned.
	tiles := 0
	for _, row := range result.Observation {
		for _, v := range row {
			if v != 0 {
				tiles++
			}
		}
	}
	if tiles != 2 {
		t.Errorf("no-op left %d tiles on the board, want 2 (no spawn)", tiles)
	}

	// A no-op still counts as an ordinary step.
	if result.Info.StepCount != 1 {
		t.Errorf("step count after no-op = %d, want 1", result.Info.StepCount)
	}
}

func TestWinOnGoal(t *testing.T) {
	s, err := NewSession(Config{Size: 2, Goal: 8, FourProb: 0})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Reset(1)

	// Merging the pair of 4s produces the goal tile 8 (exponent 3).
	s.board = boardFromGrid(t, [][]uint8{
		{2, 2},
		{0, 0},
	}, s.goalExp)

	result, err := s.Step(DirLeft)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if !result.Terminated {
		t.Error("reaching the goal should terminate the episode")
	}
	if result.Reward != 1 {
		t.Errorf("goal reward = %v, want +1", result.Reward)
	}
	if s.Status() != StatusWonGoal {
		t.Errorf("status = %s, want won_goal", s.Status())
	}
	if result.Info.MergeScore != 8 {
		t.Errorf("merge score = %d, want 8", result.Info.MergeScore)
	}

	// The winning move skips spawning: only the merged tile remains.
	tiles := 0
	for _, row := range result.Observation {
		for _, v := range row {
			if v != 0 {
				tiles++
				if v != 3 {
					t.Errorf("surviving tile exponent = %d, want 3", v)
				}
			}
		}
	}
	if tiles != 1 {
		t.Errorf("post-win board has %d tiles, want 1 (no spawn after winning)", tiles)
	}
}

func TestLoseOnNoMoves(t *testing.T) {
	s, err := NewSession(Config{Size: 3, Goal: 2048, FourProb: 0})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Reset(1)

	// Moving right slides row 1 into [0 2 1]; the forced spawn
	// (FourProb=0 always gives exponent 1) fills the last hole and the
	// resulting checkerboard has no legal move in any direction.
	s.board = boardFromGrid(t, [][]uint8{
		{2, 1, 2},
		{2, 1, 0},
		{2, 1, 2},
	}, s.goalExp)

	result, err := s.Step(DirRight)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if !result.Terminated {
		t.Error("a board with no legal moves should terminate the episode")
	}
	if result.Reward != -1 {
		t.Errorf("loss reward = %v, want -1", result.Reward)
	}
	if s.Status() != StatusLostNoMoves {
		t.Errorf("status = %s, want lost_no_moves", s.Status())
	}
	for i, legal := range result.Info.ActionMask {
		if legal {
			t.Errorf("action mask[%d] = true on a lost board", i)
		}
	}
}

func TestStepAfterTerminal(t *testing.T) {
	s, err := NewSession(Config{Size: 2, Goal: 8, FourProb: 0})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Reset(1)
	s.board = boardFromGrid(t, [][]uint8{
		{2, 2},
		{0, 0},
	}, s.goalExp)

	if _, err := s.Step(DirLeft); err != nil {
		t.Fatalf("winning Step() failed: %v", err)
	}

	if _, err := s.Step(DirLeft); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Step on terminal session error = %v, want ErrInvalidState", err)
	}

	// Reset brings the session back to a playable state.
	s.Reset(2)
	if s.Status() != StatusPlaying {
		t.Errorf("status after reset = %s, want playing", s.Status())
	}
	if _, err := s.Step(DirLeft); err != nil && !errors.Is(err, ErrInvalidState) {
		t.Errorf("Step after reset failed: %v", err)
	}
}

func TestTruncatedAlwaysFalse(t *testing.T) {
	s, err := NewSession(DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Reset(7)

	for _, dir := range Directions {
		result, err := s.Step(dir)
		if err != nil {
			t.Fatalf("Step(%s) failed: %v", dir, err)
		}
		if result.Truncated {
			t.Fatal("the engine never truncates; cutoffs are the caller's policy")
		}
		if result.Terminated {
			break
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusPlaying.Terminal() {
		t.Error("playing must not be terminal")
	}
	if !StatusWonGoal.Terminal() || !StatusLostNoMoves.Terminal() {
		t.Error("won_goal and lost_no_moves must be terminal")
	}
	if StatusWonGoal.String() != "won_goal" {
		t.Errorf("StatusWonGoal.String() = %q", StatusWonGoal.String())
	}
}
