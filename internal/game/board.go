// Package game implements the 2048 board-transition engine: the board
// representation, the four-directional move algorithm, random tile
// spawning and terminal-state detection. It contains pure logic with no
// external dependencies so it can be driven by any control loop.
//
// Tiles are stored in exponent encoding: a cell holds the small integer
// n for a displayed tile of 2^n, and 0 for an empty cell. This keeps
// arithmetic in uint8 range even for very high goals.
package game

import (
	"fmt"
	"iter"
)

// Cell is a board coordinate. Row 0 is the top row, column 0 the
// leftmost column.
type Cell struct {
	Row, Col int
}

// Board is an immutable size×size grid of tile exponents plus the goal
// exponent that ends an episode when first produced. Transitions never
// mutate a Board; they return a new one.
type Board struct {
	size    int
	goalExp uint8
	cells   []uint8 // row-major
}

// NewBoard creates an empty board.
func NewBoard(size int, goalExp uint8) (Board, error) {
	if size <= 0 {
		return Board{}, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfiguration, size)
	}
	if goalExp < 1 {
		return Board{}, fmt.Errorf("%w: goal exponent must be at least 1", ErrInvalidConfiguration)
	}
	return Board{
		size:    size,
		goalExp: goalExp,
		cells:   make([]uint8, size*size),
	}, nil
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

// GoalExponent returns the exponent that ends the episode.
func (b Board) GoalExponent() uint8 {
	return b.goalExp
}

// Get returns the exponent at (row, col).
func (b Board) Get(row, col int) uint8 {
	return b.cells[row*b.size+col]
}

// EmptyCells returns the empty cells in row-major scan order. The
// sequence is lazy and restartable.
func (b Board) EmptyCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r := range b.size {
			for c := range b.size {
				if b.cells[r*b.size+c] != 0 {
					continue
				}
				if !yield(Cell{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// IsFull reports whether the board has no empty cell.
func (b Board) IsFull() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// MaxExponent returns the largest exponent on the board, 0 if empty.
func (b Board) MaxExponent() uint8 {
	var maxExp uint8
	for _, v := range b.cells {
		if v > maxExp {
			maxExp = v
		}
	}
	return maxExp
}

// Observation returns a copy of the grid as a size×size matrix of
// exponents. The exponent is the documented observation encoding, so no
// decoding to powers of two happens here.
func (b Board) Observation() [][]uint8 {
	grid := make([][]uint8, b.size)
	for r := range b.size {
		grid[r] = make([]uint8, b.size)
		copy(grid[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return grid
}

// Equal reports structural equality (size, goal, cells).
func (b Board) Equal(other Board) bool {
	if b.size != other.size || b.goalExp != other.goalExp {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// String renders the grid of exponents for debugging and test failures.
func (b Board) String() string {
	out := make([]byte, 0, b.size*b.size*4)
	for r := range b.size {
		for c := range b.size {
			if c > 0 {
				out = append(out, ' ')
			}
			out = fmt.Appendf(out, "%3d", b.Get(r, c))
		}
		out = append(out, '\n')
	}
	return string(out)
}

// clone returns a deep copy sharing no storage with the receiver.
func (b Board) clone() Board {
	cells := make([]uint8, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, goalExp: b.goalExp, cells: cells}
}

// withCell returns a copy of the board with one cell replaced.
func (b Board) withCell(row, col int, exp uint8) Board {
	nb := b.clone()
	nb.cells[row*nb.size+col] = exp
	return nb
}
