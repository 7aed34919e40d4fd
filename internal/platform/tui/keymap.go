package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helpingstar/gym-game2048/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapDirection translates a key message to a move direction.
// Returns the direction and whether the key mapped to a move at all.
func (km *KeyMapper) MapDirection(msg tea.KeyMsg) (game.Direction, bool) {
	switch msg.String() {
	case "left", "a", "h":
		return game.DirLeft, true
	case "right", "d", "l":
		return game.DirRight, true
	case "up", "w", "k":
		return game.DirUp, true
	case "down", "s", "j":
		return game.DirDown, true
	}
	return 0, false
}

// IsQuit reports whether the key is a quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// IsRestart reports whether the key is a restart request.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}
