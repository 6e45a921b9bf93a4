package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"w", runeKey('w'), core.CommandUp},
		{"W", runeKey('W'), core.CommandUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.CommandUp},
		{"s", runeKey('s'), core.CommandDown},
		{"S", runeKey('S'), core.CommandDown},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.CommandDown},
		{"a", runeKey('a'), core.CommandLeft},
		{"A", runeKey('A'), core.CommandLeft},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandLeft},
		{"d", runeKey('d'), core.CommandRight},
		{"D", runeKey('D'), core.CommandRight},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.CommandRight},
		{"r", runeKey('r'), core.CommandRestart},
		{"R", runeKey('R'), core.CommandRestart},
		{"q", runeKey('q'), core.CommandExit},
		{"Q", runeKey('Q'), core.CommandExit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandExit},
		{"unbound", runeKey('x'), core.CommandNone},
		{"help is not a command", runeKey('?'), core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Command(tt.msg); got != tt.want {
				t.Errorf("Command(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Up = []string{"i"}
	keys.Left = []string{"j"}
	keys.Down = []string{"k"}
	keys.Right = []string{"l"}

	km := NewKeyMap(keys)

	if got := km.Command(runeKey('i')); got != core.CommandUp {
		t.Errorf("i = %v, want Up", got)
	}
	if got := km.Command(runeKey('l')); got != core.CommandRight {
		t.Errorf("l = %v, want Right", got)
	}
	if got := km.Command(runeKey('w')); got != core.CommandNone {
		t.Errorf("w = %v, want None after rebinding", got)
	}
	if got := km.Command(runeKey('r')); got != core.CommandRestart {
		t.Errorf("r = %v, want Restart", got)
	}
}

func TestBindingHelpLabel(t *testing.T) {
	b := binding([]string{"w", "W", "up"}, "up")
	if got := b.Help().Key; got != "w/up" {
		t.Errorf("help key = %q, want %q", got, "w/up")
	}
	if got := b.Help().Desc; got != "up" {
		t.Errorf("help desc = %q, want %q", got, "up")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"q", runeKey('q'), MenuActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey('k'), MenuActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"other", runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
