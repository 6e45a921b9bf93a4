// Package tui provides the Bubble Tea front end for term2048.
// It maps keys to game commands, draws the game screen with lipgloss colours
// and runs the variant menu and the scoreboard.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Exit    key.Binding
	Help    key.Binding
}

// NewKeyMap builds the in-game bindings from the keys section of the
// config file.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      binding(keys.Up, "up"),
		Down:    binding(keys.Down, "down"),
		Left:    binding(keys.Left, "left"),
		Right:   binding(keys.Right, "right"),
		Restart: binding(keys.Restart, "restart"),
		Exit:    binding(keys.Exit, "exit"),
		Help: key.NewBinding(
			key.WithKeys(config.HelpKey),
			key.WithHelp(config.HelpKey, "more help"),
		),
	}
}

// DefaultKeyMap returns WASD plus arrows, R to restart and Q to exit.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

// binding creates a key binding whose help label lists the distinct keys
// case-insensitively: ["w", "W", "up"] shows as "w/up".
func binding(keys []string, desc string) key.Binding {
	var labels []string
	seen := make(map[string]bool)
	for _, k := range keys {
		l := strings.ToLower(k)
		if seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Exit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Exit, k.Help},
	}
}

// Command translates a key message to a game command.
// Keys that are not bound return core.CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Up):
		return core.CommandUp
	case key.Matches(msg, k.Down):
		return core.CommandDown
	case key.Matches(msg, k.Left):
		return core.CommandLeft
	case key.Matches(msg, k.Right):
		return core.CommandRight
	case key.Matches(msg, k.Restart):
		return core.CommandRestart
	case key.Matches(msg, k.Exit):
		return core.CommandExit
	}
	return core.CommandNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Menu keys are fixed
// and ignore the configured in-game bindings.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "Q":
		return MenuActionQuit
	case "w", "W", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "S", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
