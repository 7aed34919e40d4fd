package game

import (
	"fmt"
	"math/rand"
)

// DefaultFourProb is the classic probability of spawning a 4-tile
// (exponent 2) instead of a 2-tile (exponent 1).
const DefaultFourProb = 0.1

// Spawner places new tiles on a board. The random source is supplied
// by the caller so that the same (board, rng-state) pair always yields
// the same result.
type Spawner struct {
	// FourProb is the probability of spawning exponent 2 instead of 1.
	FourProb float64
}

// Spawn picks one empty cell uniformly at random and fills it with
// exponent 1 (probability 1-FourProb) or exponent 2 (FourProb).
// The board must have at least one empty cell; calling Spawn on a full
// board returns ErrPreconditionViolated.
//
// Two RNG draws per spawn, cell first then value, so seeded episodes
// replay bit-identically.
func (s Spawner) Spawn(b Board, rng *rand.Rand) (Board, error) {
	n := 0
	for range b.EmptyCells() {
		n++
	}
	if n == 0 {
		return Board{}, fmt.Errorf("%w: spawn on a full board", ErrPreconditionViolated)
	}

	idx := rng.Intn(n)
	var target Cell
	for cell := range b.EmptyCells() {
		if idx == 0 {
			target = cell
			break
		}
		idx--
	}

	exp := uint8(1)
	if rng.Float64() < s.FourProb {
		exp = 2
	}
	return b.withCell(target.Row, target.Col, exp), nil
}
