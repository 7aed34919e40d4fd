package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/helpingstar/gym-game2048/internal/game"
)

const tileWidth = 7

// tileStyles maps tile exponents to background colors, roughly
// following the classic 2048 palette. Exponents past the last entry
// reuse the final style.
var tileStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("245")),                                              // empty
	lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("238")).Bold(true), // 2
	lipgloss.NewStyle().Background(lipgloss.Color("254")).Foreground(lipgloss.Color("238")).Bold(true), // 4
	lipgloss.NewStyle().Background(lipgloss.Color("215")).Foreground(lipgloss.Color("231")).Bold(true), // 8
	lipgloss.NewStyle().Background(lipgloss.Color("209")).Foreground(lipgloss.Color("231")).Bold(true), // 16
	lipgloss.NewStyle().Background(lipgloss.Color("203")).Foreground(lipgloss.Color("231")).Bold(true), // 32
	lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("231")).Bold(true), // 64
	lipgloss.NewStyle().Background(lipgloss.Color("221")).Foreground(lipgloss.Color("231")).Bold(true), // 128
	lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("231")).Bold(true), // 256
	lipgloss.NewStyle().Background(lipgloss.Color("214")).Foreground(lipgloss.Color("231")).Bold(true), // 512
	lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("231")).Bold(true), // 1024
	lipgloss.NewStyle().Background(lipgloss.Color("202")).Foreground(lipgloss.Color("231")).Bold(true), // 2048+
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	overlayWonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	overlayLostStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a tile exponent.
func tileStyle(exp uint8) lipgloss.Style {
	if int(exp) >= len(tileStyles) {
		return tileStyles[len(tileStyles)-1]
	}
	return tileStyles[exp]
}

// tileLabel formats the tile value for a given exponent. Empty cells
// render as a dot so the grid stays readable without backgrounds.
func tileLabel(exp uint8) string {
	if exp == 0 {
		return "·"
	}
	return fmt.Sprintf("%d", uint64(1)<<exp)
}

// renderTile renders a single fixed-width tile cell.
func renderTile(exp uint8) string {
	label := tileLabel(exp)
	pad := tileWidth - len(label)
	left := pad / 2
	right := pad - left
	return tileStyle(exp).Render(strings.Repeat(" ", left) + label + strings.Repeat(" ", right))
}

// RenderBoard renders the board as a bordered grid of colored tiles.
func RenderBoard(b game.Board) string {
	size := b.Size()
	rows := make([]string, size)
	for r := range size {
		cells := make([]string, size)
		for c := range size {
			cells[c] = renderTile(b.Get(r, c))
		}
		rows[r] = strings.Join(cells, " ")
	}
	return boardStyle.Render(strings.Join(rows, "\n\n"))
}
