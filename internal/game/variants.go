// Package game runs a 2048 session on top of the engine: the
// Init/Game/Win/GameOver/Exit loop, render snapshots and the named board
// variants offered by the CLI and menu.
package game

import (
	"fmt"

	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/registry"
)

// Variant is a named board configuration.
type Variant struct {
	ID          string
	Name        string
	Description string
	Config      engine.Config
}

// CustomVariantID is the registry ID of the variant built from the user's
// config file.
const CustomVariantID = "custom"

// Variants are the built-in boards, in menu order.
var Variants = []Variant{
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "4x4 board, reach 2048",
		Config:      engine.Config{Height: 4, Width: 4, WinValue: 2048, Spawn4Percent: 10},
	},
	{
		ID:          "quick",
		Name:        "Quick",
		Description: "4x4 board, reach 256",
		Config:      engine.Config{Height: 4, Width: 4, WinValue: 256, Spawn4Percent: 10},
	},
	{
		ID:          "tiny",
		Name:        "Tiny",
		Description: "3x3 board, reach 256",
		Config:      engine.Config{Height: 3, Width: 3, WinValue: 256, Spawn4Percent: 10},
	},
	{
		ID:          "big",
		Name:        "Big Board",
		Description: "5x5 board, reach 4096",
		Config:      engine.Config{Height: 5, Width: 5, WinValue: 4096, Spawn4Percent: 10},
	},
	{
		ID:          "wide",
		Name:        "Wide",
		Description: "3x6 board, reach 1024",
		Config:      engine.Config{Height: 3, Width: 6, WinValue: 1024, Spawn4Percent: 10},
	},
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// custom is the last variant passed to RegisterCustom.
var custom *Variant

// VariantByID returns the built-in or custom variant with the given id, or
// nil.
func VariantByID(id string) *Variant {
	for i := range Variants {
		if Variants[i].ID == id {
			return &Variants[i]
		}
	}
	if custom != nil && custom.ID == id {
		return custom
	}
	return nil
}

// RegisterCustom validates cfg and registers it as the "custom" variant,
// replacing any previous custom registration.
func RegisterCustom(cfg engine.Config) (Variant, error) {
	if err := cfg.Validate(); err != nil {
		return Variant{}, fmt.Errorf("game: custom variant: %w", err)
	}

	v := Variant{
		ID:          CustomVariantID,
		Name:        "Custom",
		Description: fmt.Sprintf("%dx%d board, reach %d", cfg.Height, cfg.Width, cfg.WinValue),
		Config:      cfg,
	}
	registry.Replace(v.ID, func() registry.Game {
		return New(v)
	})
	custom = &v
	return v, nil
}
