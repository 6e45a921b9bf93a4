package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagHeight int
	flagWidth  int
	flagWin    int
	flagSpawn4 int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board, or the default one.

Any of --height, --width, --win or --spawn4 turns the board into a custom
one; unset values are taken from the named variant.

Controls:
  W/A/S/D, arrows  - Slide tiles
  R                - Restart
  Q/Ctrl+C         - Exit
  ?                - Toggle help

Examples:
  term2048 play
  term2048 play tiny
  term2048 play classic --win 4096
  term2048 play --height 3 --width 6 --spawn4 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in rows")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in columns")
	playCmd.Flags().IntVar(&flagWin, "win", 0, "Tile value that wins the round")
	playCmd.Flags().IntVar(&flagSpawn4, "spawn4", -1, "Chance in percent that a new tile is a 4")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variantID := defaultVariantID()
	if len(args) == 1 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'term2048 list' to see available boards", variantID)
	}

	flags := cmd.Flags()
	if flags.Changed("height") || flags.Changed("width") || flags.Changed("win") || flags.Changed("spawn4") {
		v := game.VariantByID(variantID)
		if v == nil {
			return fmt.Errorf("variant %q cannot be resized", variantID)
		}
		custom, err := game.RegisterCustom(overrideBoard(v.Config))
		if err != nil {
			return err
		}
		variantID = custom.ID
	}

	return playVariant(variantID)
}

// overrideBoard applies the board flags that were set on top of base.
func overrideBoard(base engine.Config) engine.Config {
	cfg := base
	if flagHeight > 0 {
		cfg.Height = flagHeight
	}
	if flagWidth > 0 {
		cfg.Width = flagWidth
	}
	if flagWin > 0 {
		cfg.WinValue = flagWin
	}
	if flagSpawn4 >= 0 {
		cfg.Spawn4Percent = flagSpawn4
	}
	return cfg
}

// playVariant runs one interactive session of the variant.
func playVariant(variantID string) error {
	g, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("scores disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := playOptions()
	opts.Store = store
	if _, err := tui.Run(g, runtimeConfig(), opts); err != nil {
		return err
	}

	if store != nil {
		printRounds(store, g.Title())
	}
	return nil
}

// printRounds lists the rounds of the session just played, newest first.
func printRounds(store *storage.Store, title string) {
	rounds, err := store.RecentRounds(10)
	if err != nil || len(rounds) == 0 {
		return
	}

	fmt.Printf("Rounds on %s:\n", title)
	best := 0
	for _, r := range rounds {
		fmt.Printf("  %-10s score %-7d tile %-6d moves %d\n", r.Outcome, r.Score, r.MaxTile, r.Moves)
		best = max(best, r.Score)
	}
	fmt.Printf("Best: %d\n", best)
}
