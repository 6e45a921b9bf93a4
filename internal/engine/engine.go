// Package engine implements the 2048 grid: sliding, merging, spawning and
// win/loss detection. It has no dependencies on rendering or input.
package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is returned by TryMove for a direction outside
	// Up/Down/Left/Right.
	ErrInvalidDirection = errors.New("engine: invalid direction")

	// ErrMoveRejected is returned by TryMove when no tile can move in the
	// requested direction. The grid is left untouched.
	ErrMoveRejected = errors.New("engine: move not possible")
)

// Source is the random source used for spawning tiles.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Config fixes the engine parameters for its whole lifetime.
type Config struct {
	Height        int
	Width         int
	WinValue      int
	Spawn4Percent int // Chance in percent that a spawned tile is a 4
}

// DefaultConfig returns the classic 4x4 board played to 2048.
func DefaultConfig() Config {
	return Config{
		Height:        4,
		Width:         4,
		WinValue:      2048,
		Spawn4Percent: 10,
	}
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	if c.Height < 2 || c.Width < 2 {
		return fmt.Errorf("engine: board must be at least 2x2, got %dx%d", c.Height, c.Width)
	}
	if c.WinValue < 4 || c.WinValue&(c.WinValue-1) != 0 {
		return fmt.Errorf("engine: win value must be a power of two >= 4, got %d", c.WinValue)
	}
	if c.Spawn4Percent < 0 || c.Spawn4Percent > 100 {
		return fmt.Errorf("engine: spawn4 percent must be in [0,100], got %d", c.Spawn4Percent)
	}
	return nil
}

// Engine owns the grid, score and high score of a single player.
// It is not safe for concurrent use.
type Engine struct {
	cfg Config
	rng Source

	grid      Grid
	score     int
	highScore int
	moves     int
}

// New creates an engine and deals the first two tiles.
func New(cfg Config, rng Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("engine: nil random source")
	}

	e := &Engine{cfg: cfg, rng: rng}
	e.Reset()
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset starts a new game. The score of the discarded game is folded into
// the high score first.
func (e *Engine) Reset() {
	if e.score > e.highScore {
		e.highScore = e.score
	}
	e.score = 0
	e.moves = 0
	e.grid = NewGrid(e.cfg.Height, e.cfg.Width)
	e.Spawn()
	e.Spawn()
}

// Move slides the grid in dir and spawns a tile.
// Returns false, leaving the state untouched, if nothing can move that way.
func (e *Engine) Move(dir Direction) bool {
	return e.TryMove(dir) == nil
}

// TryMove is Move with the failure reason: ErrInvalidDirection or
// ErrMoveRejected.
func (e *Engine) TryMove(dir Direction) error {
	if !dir.Valid() {
		return ErrInvalidDirection
	}
	if !e.MoveIsPossible(dir) {
		return ErrMoveRejected
	}

	grid, gained := Slide(e.grid, dir)
	e.grid = grid
	e.score += gained
	e.moves++
	e.Spawn()
	return nil
}

// MoveIsPossible reports whether some tile could slide into an empty
// neighbour or merge with an equal one in dir. It does not mutate state.
func (e *Engine) MoveIsPossible(dir Direction) bool {
	return CanSlide(e.grid, dir)
}

// Spawn places a 2 (or a 4, with Spawn4Percent chance) on a random empty
// cell. Calling it on a full grid is a programming error and panics.
func (e *Engine) Spawn() {
	value := 2
	if e.rng.Intn(100) >= 100-e.cfg.Spawn4Percent {
		value = 4
	}

	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		panic("engine: spawn on a full grid")
	}

	cell := empty[e.rng.Intn(len(empty))]
	e.grid[cell.Row][cell.Col] = value
}

// IsWin reports whether any tile has reached the win value.
func (e *Engine) IsWin() bool {
	return e.grid.MaxTile() >= e.cfg.WinValue
}

// IsGameOver reports whether no direction allows a move.
func (e *Engine) IsGameOver() bool {
	for _, dir := range Directions {
		if e.MoveIsPossible(dir) {
			return false
		}
	}
	return true
}

// Score returns the current game's score.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score among games discarded by Reset.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Moves returns the number of successful moves in the current game.
func (e *Engine) Moves() int {
	return e.moves
}

// Grid returns a copy of the board.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}

// EmptyCells returns the positions of all empty cells.
func (e *Engine) EmptyCells() []Cell {
	return e.grid.EmptyCells()
}

// Load replaces the board and score, e.g. to replay a saved position in
// tests. The high score is kept.
func (e *Engine) Load(g Grid, score int) error {
	if g.Height() != e.cfg.Height {
		return fmt.Errorf("engine: grid has %d rows, want %d", g.Height(), e.cfg.Height)
	}
	for r, row := range g {
		if len(row) != e.cfg.Width {
			return fmt.Errorf("engine: row %d has %d cells, want %d", r, len(row), e.cfg.Width)
		}
		for c, v := range row {
			if v < 0 {
				return fmt.Errorf("engine: negative tile %d at (%d,%d)", v, r, c)
			}
		}
	}
	if score < 0 {
		return fmt.Errorf("engine: negative score %d", score)
	}

	e.grid = g.Clone()
	e.score = score
	e.moves = 0
	return nil
}
