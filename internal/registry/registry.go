// Package registry provides a global registry of playable 2048 variants.
// Variants register themselves in init() functions, so the CLI and menu can
// list and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/term2048/internal/core"
)

// Game is the interface the platform drives.
// Implementations hold pure game logic with no Bubble Tea dependency.
type Game interface {
	// ID returns a unique identifier (e.g. "classic", "tiny").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session. The RuntimeConfig provides the screen
	// size and RNG seed.
	Reset(cfg core.RuntimeConfig) error

	// Step applies one player command.
	Step(cmd core.Command) core.StepResult

	// Resize tells the game the screen size changed.
	Resize(width, height int)

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and status.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// Replace registers f under id, overwriting any existing entry.
// Used for variants built from runtime configuration.
func Replace(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
