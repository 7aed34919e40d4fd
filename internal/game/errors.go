package game

import "errors"

// Sentinel errors for state-machine and construction misuse.
// An illegal *action* (a move that changes nothing) is not an error;
// it is a defined outcome of Step.
var (
	// ErrPreconditionViolated is returned when Spawn is requested on a
	// full board. Session ordering makes this unreachable in normal use.
	ErrPreconditionViolated = errors.New("game: precondition violated")

	// ErrInvalidState is returned when Step is called on a terminal
	// session. The caller must Reset first.
	ErrInvalidState = errors.New("game: session is terminal")

	// ErrInvalidConfiguration is returned at construction time for a
	// non-positive size or a goal that is not a power of two in range.
	ErrInvalidConfiguration = errors.New("game: invalid configuration")
)
