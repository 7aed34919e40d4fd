package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/helpingstar/gym-game2048/internal/game"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapDirection(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want game.Direction
	}{
		{"left", game.DirLeft},
		{"a", game.DirLeft},
		{"h", game.DirLeft},
		{"right", game.DirRight},
		{"d", game.DirRight},
		{"l", game.DirRight},
		{"up", game.DirUp},
		{"w", game.DirUp},
		{"k", game.DirUp},
		{"down", game.DirDown},
		{"s", game.DirDown},
		{"j", game.DirDown},
	}

	for _, tt := range tests {
		dir, ok := km.MapDirection(keyMsg(tt.key))
		if !ok {
			t.Errorf("MapDirection(%q) not recognized as a move", tt.key)
			continue
		}
		if dir != tt.want {
			t.Errorf("MapDirection(%q) = %v, want %v", tt.key, dir, tt.want)
		}
	}

	if _, ok := km.MapDirection(keyMsg("x")); ok {
		t.Error("MapDirection(x) should not map to a move")
	}
}

func TestQuitAndRestartKeys(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsQuit(keyMsg("q")) || !km.IsQuit(keyMsg("ctrl+c")) {
		t.Error("q and ctrl+c should be quit keys")
	}
	if km.IsQuit(keyMsg("w")) {
		t.Error("w should not be a quit key")
	}
	if !km.IsRestart(keyMsg("r")) {
		t.Error("r should be the restart key")
	}
}

func TestTileLabel(t *testing.T) {
	tests := []struct {
		exp  uint8
		want string
	}{
		{0, "·"},
		{1, "2"},
		{5, "32"},
		{11, "2048"},
	}

	for _, tt := range tests {
		if got := tileLabel(tt.exp); got != tt.want {
			t.Errorf("tileLabel(%d) = %q, want %q", tt.exp, got, tt.want)
		}
	}
}
