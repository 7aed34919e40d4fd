package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnFillsAnEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	spawner := Spawner{FourProb: DefaultFourProb}

	b, err := NewBoard(4, 11)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	spawned, err := spawner.Spawn(b, rng)
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	// Exactly one cell changed, and it holds exponent 1 or 2.
	filled := 0
	for r := range 4 {
		for c := range 4 {
			v := spawned.Get(r, c)
			if v == 0 {
				continue
			}
			filled++
			if v != 1 && v != 2 {
				t.Errorf("spawned exponent = %d, want 1 or 2", v)
			}
		}
	}
	if filled != 1 {
		t.Errorf("spawn filled %d cells, want 1", filled)
	}

	// The input board is untouched.
	if b.MaxExponent() != 0 {
		t.Error("Spawn mutated its input board")
	}
}

func TestSpawnOnFullBoard(t *testing.T) {
	full := boardFromGrid(t, [][]uint8{
		{1, 2},
		{3, 4},
	}, 11)

	rng := rand.New(rand.NewSource(1))
	_, err := Spawner{}.Spawn(full, rng)
	if !errors.Is(err, ErrPreconditionViolated) {
		t.Errorf("Spawn on full board error = %v, want ErrPreconditionViolated", err)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	b := boardFromGrid(t, [][]uint8{
		{1, 0, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
		{0, 3, 0, 0},
	}, 11)
	spawner := Spawner{FourProb: DefaultFourProb}

	first, err := spawner.Spawn(b, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}
	second, err := spawner.Spawn(b, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("same (board, rng-state) produced different results:\n%vvs\n%v", first, second)
	}
}

func TestSpawnOnlyEmptyCandidate(t *testing.T) {
	// One empty cell left: the spawn must land there.
	b := boardFromGrid(t, [][]uint8{
		{1, 2},
		{0, 3},
	}, 11)

	rng := rand.New(rand.NewSource(9))
	spawned, err := Spawner{FourProb: DefaultFourProb}.Spawn(b, rng)
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}
	if spawned.Get(1, 0) == 0 {
		t.Error("spawn skipped the only empty cell")
	}
	if !spawned.IsFull() {
		t.Error("board should be full after spawning into the last cell")
	}
}

func TestSpawnValueLaw(t *testing.T) {
	// FourProb 0 always spawns exponent 1; FourProb 1 always spawns 2.
	b, err := NewBoard(4, 11)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	rng := rand.New(rand.NewSource(3))
	for range 20 {
		spawned, err := Spawner{FourProb: 0}.Spawn(b, rng)
		if err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		if spawned.MaxExponent() != 1 {
			t.Fatalf("FourProb=0 spawned exponent %d, want 1", spawned.MaxExponent())
		}
	}
	for range 20 {
		spawned, err := Spawner{FourProb: 1}.Spawn(b, rng)
		if err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		if spawned.MaxExponent() != 2 {
			t.Fatalf("FourProb=1 spawned exponent %d, want 2", spawned.MaxExponent())
		}
	}
}
