// Package tui provides the Bubble Tea interface for twenty48, including
// SSH server support via Wish.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ademidov/twenty48/internal/config"
	"github.com/ademidov/twenty48/internal/game"
)

// Model is the Bubble Tea model for an interactive game session.
// The core is fully synchronous (one move per keypress), so there is no
// tick loop: the model updates only on input and resize events.
type Model struct {
	grid   *game.Grid
	cfg    config.Config
	keys   KeyMap
	help   help.Model
	width  int
	height int

	status   string
	noMoves  bool
	quitting bool
}

// NewModel creates a model for the given configuration.
// A zero seed means derive one from the current time.
func NewModel(cfg config.Config, seed int64, width, height int) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Model{
		grid:   newGrid(cfg, seed),
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

func newGrid(cfg config.Config, seed int64) *game.Grid {
	rng := rand.New(rand.NewSource(seed))
	return game.NewGrid(cfg.Board.Size, cfg.Spawn.FourProbability, rng)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := msg.String()

	switch {
	case matches(keys, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case matches(keys, m.keys.Restart):
		m.grid = newGrid(m.cfg, time.Now().UnixNano())
		m.status = ""
		m.noMoves = false
		return m, nil

	case matches(keys, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	dir, ok := m.keys.direction(keys)
	if !ok || m.noMoves {
		return m, nil
	}

	if !m.grid.PlayMove(dir) {
		m.status = "move not possible"
		return m, nil
	}
	m.status = ""

	// The core does not signal game over; poll all four directions.
	m.noMoves = true
	for _, d := range game.Directions {
		if m.grid.IsValidMove(d) {
			m.noMoves = false
			break
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts a local Bubble Tea program for the given configuration.
func Run(cfg config.Config, seed int64, width, height int) error {
	p := tea.NewProgram(
		NewModel(cfg, seed, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
