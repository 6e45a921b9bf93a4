package game

import "github.com/vovakirdan/term2048/internal/core"

// State is a phase of the play loop.
type State int

const (
	StateInit State = iota
	StateGame
	StateWin
	StateGameOver
	StateExit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateGame:
		return "game"
	case StateWin:
		return "win"
	case StateGameOver:
		return "game_over"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// MoveResult is what the engine reported for the command being processed.
// Only meaningful in StateGame for move commands.
type MoveResult struct {
	Moved    bool
	Win      bool
	GameOver bool
}

// Next returns the state that follows s after cmd.
// It has no side effects; the session performs the reset on entering
// StateInit.
func Next(s State, cmd core.Command, res MoveResult) State {
	switch s {
	case StateInit:
		return StateGame

	case StateGame:
		switch {
		case cmd == core.CommandRestart:
			return StateInit
		case cmd == core.CommandExit:
			return StateExit
		case cmd.IsMove() && res.Moved:
			if res.Win {
				return StateWin
			}
			if res.GameOver {
				return StateGameOver
			}
		}
		return StateGame

	case StateWin, StateGameOver:
		switch cmd {
		case core.CommandRestart:
			return StateInit
		case core.CommandExit:
			return StateExit
		}
		return s

	default:
		return StateExit
	}
}
