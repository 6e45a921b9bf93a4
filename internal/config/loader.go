package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the config file looked up relative to the working directory.
const LocalPath = "configs/term2048.yaml"

// Load loads the term2048 configuration.
// Search order: customPath -> ~/.term2048/config.yaml -> ./configs/term2048.yaml -> embedded default
//
// Fields missing from a file keep their default values. A customPath that
// cannot be read or parsed is an error; the other locations are skipped when
// unreadable. The result is validated whichever source it came from.
func Load(customPath string) (Config, error) {
	cfg, err := Read(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

// Read is Load without validation, for tools that inspect or replace a
// broken config file.
func Read(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return DefaultConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parse(data, LocalPath); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, SourceEmbedded)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults.
func parse(data []byte, source string) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// UserPath returns the path to the user config file, or empty if home is
// unavailable.
func UserPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".term2048", "config.yaml")
}

// WriteDefault writes the embedded default file to path, creating parent
// directories. An existing file is left alone unless overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultYAML, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
