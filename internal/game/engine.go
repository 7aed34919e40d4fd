package game

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all four directions in action order, used for
// exhaustive legality probing and for mapping discrete actions.
var Directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// MoveOutcome is the result of applying one move to a board.
// MergeScore sums 2^(merged exponent) over all merges in the move and
// is zero when Changed is false.
type MoveOutcome struct {
	Board      Board
	Changed    bool
	MergeScore uint64
}

// slideRow compacts a single row of exponents to the left and merges
// equal neighbours once. A tile produced by a merge cannot merge again
// in the same move, so [1 1 1] becomes [2 1 0], never [3 0 0].
// Returns the compacted row, the merge score and whether it changed.
func slideRow(row []uint8) ([]uint8, uint64, bool) {
	result := make([]uint8, len(row))
	merged := make([]bool, len(row))
	var score uint64
	write := 0

	for _, v := range row {
		if v == 0 {
			continue
		}
		if write > 0 && result[write-1] == v && !merged[write-1] {
			result[write-1] = v + 1
			merged[write-1] = true
			score += uint64(1) << (v + 1)
		} else {
			result[write] = v
			write++
		}
	}

	changed := false
	for i, v := range row {
		if result[i] != v {
			changed = true
			break
		}
	}
	return result, score, changed
}

// reverseRow reverses a row in place.
func reverseRow(row []uint8) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}

// transpose mirrors the board cells across the main diagonal in place.
func transpose(cells []uint8, size int) {
	for r := range size {
		for c := r + 1; c < size; c++ {
			cells[r*size+c], cells[c*size+r] = cells[c*size+r], cells[r*size+c]
		}
	}
}

// Apply performs one move and returns the outcome. It is pure: the
// input board is never mutated, which makes it usable for legality
// probing with no rollback logic.
//
// Only compact-left is implemented directly; the other directions are
// expressed as a transform, the left pass, and the inverse transform:
// Right = mirror, Up = transpose, Down = transpose + mirror. This keeps
// a single source of truth for the merge semantics.
func Apply(b Board, dir Direction) MoveOutcome {
	nb := b.clone()
	size := nb.size

	switch dir {
	case DirRight:
		for r := range size {
			reverseRow(nb.cells[r*size : (r+1)*size])
		}
	case DirUp:
		transpose(nb.cells, size)
	case DirDown:
		transpose(nb.cells, size)
		for r := range size {
			reverseRow(nb.cells[r*size : (r+1)*size])
		}
	}

	var score uint64
	changed := false
	for r := range size {
		row := nb.cells[r*size : (r+1)*size]
		slid, rowScore, rowChanged := slideRow(row)
		copy(row, slid)
		score += rowScore
		changed = changed || rowChanged
	}

	// Undo the transform.
	switch dir {
	case DirRight:
		for r := range size {
			reverseRow(nb.cells[r*size : (r+1)*size])
		}
	case DirDown:
		for r := range size {
			reverseRow(nb.cells[r*size : (r+1)*size])
		}
		transpose(nb.cells, size)
	case DirUp:
		transpose(nb.cells, size)
	}

	return MoveOutcome{Board: nb, Changed: changed, MergeScore: score}
}

// Legal reports whether moving in dir would change the board.
func Legal(b Board, dir Direction) bool {
	return Apply(b, dir).Changed
}

// LegalMoves probes all four directions and returns the action mask in
// Directions order.
func LegalMoves(b Board) [4]bool {
	var mask [4]bool
	for i, dir := range Directions {
		mask[i] = Legal(b, dir)
	}
	return mask
}

// AnyLegal reports whether at least one direction changes the board.
// A false result is the no-legal-moves termination condition.
func AnyLegal(b Board) bool {
	for _, dir := range Directions {
		if Legal(b, dir) {
			return true
		}
	}
	return false
}
