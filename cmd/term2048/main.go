// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048                  - Play the default board
//	term2048 play [variant]   - Play a board, optionally resized with flags
//	term2048 menu             - Pick boards interactively and view scores
//	term2048 list             - List available boards
//	term2048 config init      - Write the default config file
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Use a specific config file
//	--log-file <path>    - Write logs to a file (overrides the config)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var (
	// Global flags
	flagSeed       int64
	flagConfigPath string
	flagLogFile    string
	flagLogLevel   string
)

// Set by loadApp before any subcommand runs.
var (
	appConfig config.Config
	logger    = log.New(io.Discard)
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "term2048 - the 2048 puzzle in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles with WASD or the arrow keys. Equal tiles merge into their
sum. Reach the target tile to win; the game is over when no move is left.

Available commands:
  play     - Play a board directly
  menu     - Interactive board picker with a scoreboard
  list     - Show all available boards
  config   - Manage the config file

Examples:
  term2048
  term2048 play big
  term2048 play --height 5 --width 5 --win 4096
  term2048 menu --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadApp,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return playVariant(defaultVariantID())
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadApp loads the config, sets up logging and registers the custom board.
func loadApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	appConfig = cfg

	if err := setupLogger(cfg.Log); err != nil {
		return err
	}
	logger.Debug("config loaded", "source", cfg.Source, "command", cmd.Name())

	// A board that differs from the classic one is offered as "custom".
	if cfg.Board.Engine() != engine.DefaultConfig() {
		if _, err := game.RegisterCustom(cfg.Board.Engine()); err != nil {
			return err
		}
	}
	return nil
}

// setupLogger points the package logger at the configured file. Without a
// file, logs are discarded so they never draw over the board.
func setupLogger(lc config.LogConfig) error {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	if lc.File == "" {
		return nil
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		Prefix:          "term2048",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return nil
}

// defaultVariantID is the board played when no variant is named.
func defaultVariantID() string {
	if game.VariantByID(game.CustomVariantID) != nil {
		return game.CustomVariantID
	}
	return game.Variants[0].ID
}

// runtimeConfig sizes the game to the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

func playOptions() tui.Options {
	return tui.Options{
		Logger: logger,
		Keys:   tui.NewKeyMap(appConfig.Keys),
	}
}
