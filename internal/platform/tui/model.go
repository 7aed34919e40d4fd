package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/helpingstar/gym-game2048/internal/config"
	"github.com/helpingstar/gym-game2048/internal/env"
	"github.com/helpingstar/gym-game2048/internal/game"
	"github.com/helpingstar/gym-game2048/internal/storage"
)

// RuntimeConfig holds the terminal-side settings for a play session.
type RuntimeConfig struct {
	ScreenW int
	ScreenH int
	Seed    int64
}

// Model is the Bubble Tea model for interactive play. The game is
// turn-based, so there is no tick loop: the board advances only on key
// presses.
type Model struct {
	environment  *env.Game2048
	store        *storage.Store
	config       RuntimeConfig
	keyMapper    *KeyMapper
	seed         int64
	bestScore    uint64
	lastIllegal  bool
	quitting     bool
	episodeSaved bool
}

// NewModel creates a play model for the given environment configuration.
func NewModel(envCfg config.EnvConfig, store *storage.Store, cfg RuntimeConfig) (Model, error) {
	environment, err := env.New(envCfg)
	if err != nil {
		return Model{}, err
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		environment: environment,
		store:       store,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		seed:        cfg.Seed,
	}

	if store != nil {
		if best, err := store.BestScore(environment.ID()); err == nil {
			m.bestScore = best
		}
	}

	if _, err := environment.Reset(m.seed); err != nil {
		return Model{}, err
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.IsRestart(msg) {
		m.seed = time.Now().UnixNano()
		if _, err := m.environment.Reset(m.seed); err != nil {
			return m, nil
		}
		m.lastIllegal = false
		m.episodeSaved = false
		return m, nil
	}

	session := m.environment.Session()
	if session.Status().Terminal() {
		return m, nil
	}

	dir, ok := m.keyMapper.MapDirection(msg)
	if !ok {
		return m, nil
	}

	result, err := m.environment.Step(int(dir))
	if err != nil {
		return m, nil
	}
	m.lastIllegal = !result.Info.IsLegal

	if result.Terminated {
		m.saveEpisode()
	}

	return m, nil
}

// saveEpisode records the finished episode once per game over.
func (m *Model) saveEpisode() {
	if m.store == nil || m.episodeSaved {
		return
	}

	session := m.environment.Session()
	outcome := "lost"
	if session.Status() == game.StatusWonGoal {
		outcome = "won"
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveEpisode(storage.Episode{
		EnvID:   m.environment.ID(),
		Seed:    m.seed,
		Steps:   uint64(session.StepCount()),
		Score:   session.Score(),
		MaxTile: uint64(1) << session.Board().MaxExponent(),
		Outcome: outcome,
	})
	m.episodeSaved = true

	if session.Score() > m.bestScore {
		m.bestScore = session.Score()
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	session := m.environment.Session()

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n\n")

	hud := fmt.Sprintf("Score: %d   Steps: %d   Max: %d",
		session.Score(), session.StepCount(), uint64(1)<<session.Board().MaxExponent())
	if m.bestScore > 0 {
		hud += fmt.Sprintf("   Best: %d", m.bestScore)
	}
	b.WriteString(hudStyle.Render(hud))
	b.WriteString("\n\n")

	b.WriteString(RenderBoard(session.Board()))
	b.WriteString("\n\n")

	switch session.Status() {
	case game.StatusWonGoal:
		b.WriteString(overlayWonStyle.Render(fmt.Sprintf("You reached %d!", uint64(1)<<session.GoalExponent())))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("R: new game | Q: quit"))
	case game.StatusLostNoMoves:
		b.WriteString(overlayLostStyle.Render("Game over — no legal moves"))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("R: new game | Q: quit"))
	default:
		hint := "Arrows/WASD/HJKL: move | R: restart | Q: quit"
		if m.lastIllegal {
			hint = "Move changed nothing. " + hint
		}
		b.WriteString(hintStyle.Render(hint))
	}
	b.WriteString("\n")

	if m.config.ScreenW > 0 {
		return lipgloss.NewStyle().MaxWidth(m.config.ScreenW).Render(b.String())
	}
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(envCfg config.EnvConfig, store *storage.Store, cfg RuntimeConfig) error {
	model, err := NewModel(envCfg, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
