// Package config provides YAML-based configuration loading for term2048:
// the custom board, key bindings and logging.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/engine"
)

// Config is the full term2048 configuration file.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Keys  KeysConfig  `yaml:"keys"`
	Log   LogConfig   `yaml:"log"`

	// Source is where the configuration was read from: a file path or
	// "embedded".
	Source string `yaml:"-"`
}

// BoardConfig defines the board played by the "custom" variant.
type BoardConfig struct {
	Height        int `yaml:"height"`
	Width         int `yaml:"width"`
	WinValue      int `yaml:"win_value"`
	Spawn4Percent int `yaml:"spawn4_percent"`
}

// KeysConfig lists the keys bound to each in-game command, in Bubble Tea
// key notation ("w", "up", "ctrl+c"). "?" is reserved for help. The menu and
// scoreboard keys are fixed and not read from here.
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Exit    []string `yaml:"exit"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Engine converts the board section into an engine configuration.
func (b BoardConfig) Engine() engine.Config {
	return engine.Config{
		Height:        b.Height,
		Width:         b.Width,
		WinValue:      b.WinValue,
		Spawn4Percent: b.Spawn4Percent,
	}
}

// Validate checks the board, every key list and the log level.
func (c Config) Validate() error {
	if err := c.Board.Engine().Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if err := c.Keys.validate(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log: %w", err)
		}
	}
	return nil
}

// HelpKey toggles the full help view and cannot be bound to a command.
const HelpKey = "?"

func (k KeysConfig) validate() error {
	seen := make(map[string]string)
	for _, b := range k.bindings() {
		if len(b.keys) == 0 {
			return fmt.Errorf("%s has no keys", b.name)
		}
		for _, key := range b.keys {
			if key == HelpKey {
				return fmt.Errorf("%q is reserved for help, cannot bind it to %s", key, b.name)
			}
			if other, dup := seen[key]; dup && other != b.name {
				return fmt.Errorf("%q bound to both %s and %s", key, other, b.name)
			}
			seen[key] = b.name
		}
	}
	return nil
}

type binding struct {
	name string
	keys []string
}

func (k KeysConfig) bindings() []binding {
	return []binding{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"restart", k.Restart},
		{"exit", k.Exit},
	}
}
