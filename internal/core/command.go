package core

// Command is a player intent, abstracted from physical key presses.
// The platform maps keys to commands; the game only ever sees these values.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandRestart
	CommandExit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandRestart:
		return "Restart"
	case CommandExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the command is one of the four directions.
func (c Command) IsMove() bool {
	return c >= CommandUp && c <= CommandRight
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score     int
	HighScore int
	Won       bool // A tile reached the win value; waiting for restart or exit
	GameOver  bool // No move possible; waiting for restart or exit
	Exited    bool // The player asked to leave
}

// Finished reports whether the current round has ended.
func (s GameState) Finished() bool {
	return s.Won || s.GameOver
}

// RoundSummary describes a round that just ended.
type RoundSummary struct {
	ID      string
	Variant string
	Score   int
	MaxTile int
	Moves   int
	Outcome string // "win", "game_over", "restart" or "exit"
}

// StepResult is returned by Game.Step after each command.
type StepResult struct {
	State    GameState
	Moved    bool          // The command was a move that changed the board
	Finished *RoundSummary // Set when the command ended a round
}
