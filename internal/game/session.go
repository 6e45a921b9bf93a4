package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// Session plays one variant: it owns the engine and the loop state.
// A session keeps its high score across restarts.
type Session struct {
	variant Variant
	eng     *engine.Engine
	state   State
	roundID uuid.UUID
}

var errNotStarted = errors.New("game: session not started")

// New creates a session for the given variant. Call Reset before use.
func New(v Variant) *Session {
	return &Session{
		variant: v,
		state:   StateInit,
	}
}

// NewWithSource creates a started session drawing spawns from src.
// Used by tests that need exact tile placement.
func NewWithSource(v Variant, src engine.Source) (*Session, error) {
	eng, err := engine.New(v.Config, src)
	if err != nil {
		return nil, fmt.Errorf("game: %s: %w", v.ID, err)
	}

	s := New(v)
	s.eng = eng
	s.beginRound(false)
	return s, nil
}

// ID returns the variant identifier.
func (s *Session) ID() string {
	return s.variant.ID
}

// Title returns the display name.
func (s *Session) Title() string {
	return s.variant.Name
}

// Variant returns the variant this session plays.
func (s *Session) Variant() Variant {
	return s.variant
}

// Reset starts the session from scratch with a fresh engine.
// The high score is not carried over from a previous Reset.
func (s *Session) Reset(cfg core.RuntimeConfig) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng, err := engine.New(s.variant.Config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("game: %s: %w", s.variant.ID, err)
	}

	s.eng = eng
	s.beginRound(false)
	return nil
}

// beginRound moves from StateInit into StateGame. The engine deals the
// opening tiles itself on construction, so resetEngine is only set for
// restarts.
func (s *Session) beginRound(resetEngine bool) {
	s.state = StateInit
	if resetEngine {
		s.eng.Reset()
	}
	s.roundID = uuid.New()
	s.state = Next(s.state, core.CommandNone, MoveResult{})
}

// Resize is a no-op: Render lays the board out against the destination
// screen every frame.
func (s *Session) Resize(width, height int) {}

// Step applies one command and advances the loop.
func (s *Session) Step(cmd core.Command) core.StepResult {
	if s.eng == nil {
		return core.StepResult{State: s.State()}
	}

	var res MoveResult
	if s.state == StateGame && cmd.IsMove() {
		res.Moved = s.eng.Move(directionFor(cmd))
		if res.Moved {
			res.Win = s.eng.IsWin()
			res.GameOver = s.eng.IsGameOver()
		}
	}

	prev := s.state
	next := Next(prev, cmd, res)

	var finished *core.RoundSummary
	if prev == StateGame && next != StateGame {
		finished = s.summary(outcomeFor(next))
	}

	s.state = next
	if s.state == StateInit {
		s.beginRound(true)
	}

	return core.StepResult{
		State:    s.State(),
		Moved:    res.Moved,
		Finished: finished,
	}
}

// summary describes the round being left. Restarting or exiting an
// untouched board is not worth recording and yields nil.
func (s *Session) summary(outcome string) *core.RoundSummary {
	if (outcome == OutcomeRestart || outcome == OutcomeExit) && s.eng.Score() == 0 {
		return nil
	}
	return &core.RoundSummary{
		ID:      s.roundID.String(),
		Variant: s.variant.ID,
		Score:   s.eng.Score(),
		MaxTile: s.eng.MaxTile(),
		Moves:   s.eng.Moves(),
		Outcome: outcome,
	}
}

// Round outcomes reported in core.RoundSummary.
const (
	OutcomeWin      = "win"
	OutcomeGameOver = "game_over"
	OutcomeRestart  = "restart"
	OutcomeExit     = "exit"
)

func outcomeFor(next State) string {
	switch next {
	case StateWin:
		return OutcomeWin
	case StateGameOver:
		return OutcomeGameOver
	case StateInit:
		return OutcomeRestart
	default:
		return OutcomeExit
	}
}

// directionFor maps a move command to an engine direction.
// Non-move commands map to an invalid direction, which the engine rejects.
func directionFor(cmd core.Command) engine.Direction {
	switch cmd {
	case core.CommandUp:
		return engine.DirUp
	case core.CommandDown:
		return engine.DirDown
	case core.CommandLeft:
		return engine.DirLeft
	case core.CommandRight:
		return engine.DirRight
	default:
		return engine.Direction(-1)
	}
}

// LoadPosition replaces the board and score of the running round.
func (s *Session) LoadPosition(g engine.Grid, score int) error {
	if s.eng == nil {
		return errNotStarted
	}
	if err := s.eng.Load(g, score); err != nil {
		return err
	}
	s.state = StateGame
	return nil
}

// LoopState returns the current loop state.
func (s *Session) LoopState() State {
	return s.state
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	if s.eng == nil {
		return core.GameState{Exited: s.state == StateExit}
	}
	return core.GameState{
		Score:     s.eng.Score(),
		HighScore: s.eng.HighScore(),
		Won:       s.state == StateWin,
		GameOver:  s.state == StateGameOver,
		Exited:    s.state == StateExit,
	}
}
