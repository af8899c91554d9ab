package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ademidov/twenty48/internal/game"
)

// KeyMap defines the key bindings for the game view.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Help, k.Quit},
	}
}

// direction translates a matched movement binding to a game direction.
// The bool result is false for keys that are not movement keys.
func (k KeyMap) direction(keys string) (game.Direction, bool) {
	switch {
	case matches(keys, k.Up):
		return game.Up, true
	case matches(keys, k.Down):
		return game.Down, true
	case matches(keys, k.Left):
		return game.Left, true
	case matches(keys, k.Right):
		return game.Right, true
	}
	return 0, false
}

func matches(keys string, b key.Binding) bool {
	for _, k := range b.Keys() {
		if k == keys {
			return true
		}
	}
	return false
}
