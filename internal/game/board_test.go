package game

import (
	"errors"
	"testing"
)

func TestNewBoardValidation(t *testing.T) {
	if _, err := NewBoard(0, 11); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewBoard(0, 11) error = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := NewBoard(-3, 11); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewBoard(-3, 11) error = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := NewBoard(4, 0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewBoard(4, 0) error = %v, want ErrInvalidConfiguration", err)
	}

	b, err := NewBoard(4, 11)
	if err != nil {
		t.Fatalf("NewBoard(4, 11) failed: %v", err)
	}
	if b.Size() != 4 || b.GoalExponent() != 11 {
		t.Errorf("board metadata = (%d, %d), want (4, 11)", b.Size(), b.GoalExponent())
	}
}

func TestEmptyCellsOrder(t *testing.T) {
	b := boardFromGrid(t, [][]uint8{
		{1, 0, 2},
		{0, 3, 0},
		{4, 0, 5},
	}, 11)

	var got []Cell
	for cell := range b.EmptyCells() {
		got = append(got, cell)
	}

	want := []Cell{{0, 1}, {1, 0}, {1, 2}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("EmptyCells count = %d, want %d", len(got), len(want))
	}
	for i, cell := range want {
		if got[i] != cell {
			t.Errorf("EmptyCells[%d] = %v, want %v (row-major order)", i, got[i], cell)
		}
	}

	// The sequence is restartable.
	count := 0
	for range b.EmptyCells() {
		count++
	}
	if count != len(want) {
		t.Errorf("second iteration yielded %d cells, want %d", count, len(want))
	}
}

func TestEmptyCellsEarlyStop(t *testing.T) {
	b, err := NewBoard(4, 11)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	seen := 0
	for range b.EmptyCells() {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("early break saw %d cells, want 3", seen)
	}
}

func TestIsFull(t *testing.T) {
	empty, _ := NewBoard(2, 11)
	if empty.IsFull() {
		t.Error("empty board should not be full")
	}

	full := boardFromGrid(t, [][]uint8{
		{1, 2},
		{3, 4},
	}, 11)
	if !full.IsFull() {
		t.Error("board with every cell occupied should be full")
	}

	almost := boardFromGrid(t, [][]uint8{
		{1, 2},
		{3, 0},
	}, 11)
	if almost.IsFull() {
		t.Error("board with one empty cell should not be full")
	}
}

func TestMaxExponent(t *testing.T) {
	b := boardFromGrid(t, [][]uint8{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 2},
		{3, 4, 5, 6},
	}, 11)

	if got := b.MaxExponent(); got != 11 {
		t.Errorf("MaxExponent() = %d, want 11", got)
	}

	empty, _ := NewBoard(4, 11)
	if got := empty.MaxExponent(); got != 0 {
		t.Errorf("MaxExponent() on empty board = %d, want 0", got)
	}
}

func TestObservationIsACopy(t *testing.T) {
	b := boardFromGrid(t, [][]uint8{
		{1, 0},
		{0, 2},
	}, 11)

	obs := b.Observation()
	if obs[0][0] != 1 || obs[1][1] != 2 {
		t.Fatalf("Observation() = %v, want the grid of exponents", obs)
	}

	// Writing to the observation must not leak into the board.
	obs[0][0] = 9
	if b.Get(0, 0) != 1 {
		t.Error("mutating the observation changed the board")
	}
}

func TestBoardEqual(t *testing.T) {
	grid := [][]uint8{
		{1, 0},
		{0, 2},
	}

	a := boardFromGrid(t, grid, 11)
	b := boardFromGrid(t, grid, 11)
	if !a.Equal(b) {
		t.Error("boards with identical size, goal and cells should be equal")
	}

	differentGoal := boardFromGrid(t, grid, 10)
	if a.Equal(differentGoal) {
		t.Error("boards with different goals should not be equal")
	}

	differentCells := boardFromGrid(t, [][]uint8{
		{1, 0},
		{1, 2},
	}, 11)
	if a.Equal(differentCells) {
		t.Error("boards with different cells should not be equal")
	}

	smaller := boardFromGrid(t, [][]uint8{{1}}, 11)
	if a.Equal(smaller) {
		t.Error("boards with different sizes should not be equal")
	}
}
