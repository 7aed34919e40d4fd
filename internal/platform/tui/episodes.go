package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/helpingstar/gym-game2048/internal/registry"
	"github.com/helpingstar/gym-game2048/internal/storage"
)

const maxEpisodes = 100 // Max episodes to load per environment

// EpisodesKeyMap defines the key bindings for the episode browser.
type EpisodesKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextEnv key.Binding
	PrevEnv key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EpisodesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextEnv, k.PrevEnv, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EpisodesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextEnv, k.PrevEnv, k.Quit},
	}
}

// DefaultEpisodesKeyMap returns default key bindings.
func DefaultEpisodesKeyMap() EpisodesKeyMap {
	return EpisodesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextEnv: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next env"),
		),
		PrevEnv: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("S-tab", "prev env"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EpisodesModel is the Bubble Tea model for browsing recorded episodes.
type EpisodesModel struct {
	envs      []string
	envCursor int
	store     *storage.Store
	episodes  []storage.Episode
	table     table.Model
	help      help.Model
	keys      EpisodesKeyMap
	width     int
	height    int
	quitting  bool
}

// NewEpisodesModel creates an episode browser over the registered
// environments.
func NewEpisodesModel(store *storage.Store, width, height int) EpisodesModel {
	h := help.New()
	h.ShowAll = false

	m := EpisodesModel{
		envs:   registry.List(),
		store:  store,
		keys:   DefaultEpisodesKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()

	if len(m.envs) > 0 {
		m.loadEpisodes(m.envs[0])
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *EpisodesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Max Tile", Width: 9},
		{Title: "Steps", Width: 7},
		{Title: "Outcome", Width: 10},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadEpisodes loads episodes for the given environment ID.
func (m *EpisodesModel) loadEpisodes(envID string) {
	if m.store == nil {
		m.episodes = nil
		m.updateTableRows()
		return
	}

	episodes, err := m.store.TopEpisodes(envID, maxEpisodes)
	if err != nil {
		m.episodes = nil
	} else {
		m.episodes = episodes
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current episodes.
func (m *EpisodesModel) updateTableRows() {
	rows := make([]table.Row, len(m.episodes))
	for i, e := range m.episodes {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.MaxTile),
			fmt.Sprintf("%d", e.Steps),
			e.Outcome,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m EpisodesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the episode browser.
func (m EpisodesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextEnv):
			if len(m.envs) > 0 {
				m.envCursor = (m.envCursor + 1) % len(m.envs)
				m.loadEpisodes(m.envs[m.envCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevEnv):
			if len(m.envs) > 0 {
				m.envCursor--
				if m.envCursor < 0 {
					m.envCursor = len(m.envs) - 1
				}
				m.loadEpisodes(m.envs[m.envCursor])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the episode browser.
func (m EpisodesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "EPISODES"
	if len(m.envs) > 0 {
		title = fmt.Sprintf("EPISODES - %s", m.envs[m.envCursor])
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.episodes) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No episodes recorded yet.\nPlay or roll out an episode first!"))
	} else {
		b.WriteString(boardStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunEpisodes runs the episode browser screen.
func RunEpisodes(store *storage.Store, width, height int) error {
	model := NewEpisodesModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
