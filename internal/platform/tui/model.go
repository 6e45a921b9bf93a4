package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

// helpHeight is the number of terminal rows reserved below the game screen
// for the full help view.
const helpHeight = 2

// Model is the Bubble Tea model for playing one variant.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	config    core.RuntimeConfig
	gameState core.GameState
	rounds    int // Rounds recorded during this run
	quitting  bool
}

// Options configures a play Model. Store and Logger may be nil; zero Keys
// means DefaultKeyMap.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Keys   KeyMap
}

// NewModel resets the game and creates a Bubble Tea model for it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := opts.Keys
	if len(keys.Up.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}
	logger.Info("round started", "variant", game.ID(), "seed", cfg.Seed)

	screenH := max(cfg.ScreenH-helpHeight, 0)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, screenH),
		store:     opts.Store,
		logger:    logger,
		keys:      keys,
		help:      h,
		config:    cfg,
		gameState: game.State(),
	}, nil
}

// Init implements tea.Model. The game is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey maps the key to a command and steps the game once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CommandNone {
		return m, nil
	}

	result := m.game.Step(cmd)
	m.gameState = result.State
	m.logger.Debug("step", "command", cmd, "moved", result.Moved, "score", result.State.Score)

	if result.Finished != nil {
		m.record(*result.Finished)
	}
	if cmd == core.CommandRestart && !result.State.Exited {
		m.logger.Info("round started", "variant", m.game.ID())
	}

	if result.State.Exited {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// record saves a finished round. Storage failures are logged and never
// interrupt play.
func (m *Model) record(r core.RoundSummary) {
	m.logger.Info("round finished",
		"variant", r.Variant,
		"round", r.ID,
		"outcome", r.Outcome,
		"score", r.Score,
		"max_tile", r.MaxTile,
		"moves", r.Moves,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(r); err != nil {
		if errors.Is(err, storage.ErrDuplicateRound) {
			m.logger.Debug("round already recorded", "round", r.ID)
			return
		}
		m.logger.Warn("could not record round", "error", err)
		return
	}
	m.rounds++
}

// handleResize processes window resize events. The board keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Recorded returns how many rounds this model wrote to the store.
func (m Model) Recorded() int {
	return m.rounds
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run plays game until the player exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.RuntimeConfig, error) {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return cfg, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return cfg, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Config(), nil
	}
	return cfg, nil
}
