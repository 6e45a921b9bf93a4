package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// SourceEmbedded is the Source of a configuration built from the embedded
// defaults.
const SourceEmbedded = "embedded"

// DefaultConfig returns the default configuration: the classic board, WASD
// and arrow keys, logging at info level to nowhere.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Height:        4,
			Width:         4,
			WinValue:      2048,
			Spawn4Percent: 10,
		},
		Keys: KeysConfig{
			Up:      []string{"w", "W", "up"},
			Down:    []string{"s", "S", "down"},
			Left:    []string{"a", "A", "left"},
			Right:   []string{"d", "D", "right"},
			Restart: []string{"r", "R"},
			Exit:    []string{"q", "Q", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: SourceEmbedded,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
