package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from a menu",
	Long: `Start term2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a board.
After a round you return to the menu; Tab opens the scoreboard with every
round finished since the menu started.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play board
  Tab          - Scoreboard
  Q            - Quit

Examples:
  term2048 menu
  term2048 menu --seed 42
  term2048 menu --log-file term2048.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Scores are shared by every round played from this menu
	store, err := storage.Open()
	if err != nil {
		return fmt.Errorf("open scores: %w", err)
	}
	defer store.Close()

	cfg := runtimeConfig()
	seeded := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		g, err := registry.Create(menuResult.VariantID)
		if err != nil {
			logger.Error("cannot create board", "variant", menuResult.VariantID, "error", err)
			continue
		}

		// A fixed --seed replays the same opening every time; otherwise
		// each round gets a fresh one.
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		opts := playOptions()
		opts.Store = store
		if cfg, err = tui.Run(g, cfg, opts); err != nil {
			return err
		}
	}
}
