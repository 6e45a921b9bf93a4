package game

import "github.com/vovakirdan/term2048/internal/engine"

// Snapshot is a read-only view of the session for rendering and tests.
type Snapshot struct {
	Variant   string
	State     State
	Grid      engine.Grid // Copy; safe to keep
	Score     int
	HighScore int
	MaxTile   int
	Moves     int
	WinValue  int
	Win       bool
	GameOver  bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	if s.eng == nil {
		return Snapshot{Variant: s.variant.ID, State: s.state, WinValue: s.variant.Config.WinValue}
	}

	return Snapshot{
		Variant:   s.variant.ID,
		State:     s.state,
		Grid:      s.eng.Grid(),
		Score:     s.eng.Score(),
		HighScore: s.eng.HighScore(),
		MaxTile:   s.eng.MaxTile(),
		Moves:     s.eng.Moves(),
		WinValue:  s.variant.Config.WinValue,
		Win:       s.state == StateWin,
		GameOver:  s.state == StateGameOver,
	}
}
