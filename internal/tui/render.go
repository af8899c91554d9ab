package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 7

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	boardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	// Tile colors follow the classic 2048 palette, falling back to the
	// highest entry for tiles beyond 2048.
	tileColors = map[int]lipgloss.Color{
		2:    lipgloss.Color("252"),
		4:    lipgloss.Color("230"),
		8:    lipgloss.Color("216"),
		16:   lipgloss.Color("209"),
		32:   lipgloss.Color("203"),
		64:   lipgloss.Color("196"),
		128:  lipgloss.Color("227"),
		256:  lipgloss.Color("221"),
		512:  lipgloss.Color("214"),
		1024: lipgloss.Color("208"),
		2048: lipgloss.Color("202"),
	}
)

func tileStyle(value int) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		color = tileColors[2048]
	}
	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(color)
}

// render draws the full game view: title, board, status line and help.
func (m Model) render() string {
	cells := m.grid.Cells()

	rows := make([]string, len(cells))
	for r, row := range cells {
		cols := make([]string, len(row))
		for c, value := range row {
			if value == 0 {
				cols[c] = emptyStyle.Render("·")
			} else {
				cols[c] = tileStyle(value).Render(strconv.Itoa(value))
			}
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}
	board := boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	status := " "
	switch {
	case m.noMoves:
		status = overStyle.Render("no more moves (press r to restart)")
	case m.status != "":
		status = statusStyle.Render(m.status)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("twenty48"),
		board,
		status,
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
