package core

import "testing"

func TestCommandIsMove(t *testing.T) {
	moves := []Command{CommandUp, CommandDown, CommandLeft, CommandRight}
	for _, c := range moves {
		if !c.IsMove() {
			t.Errorf("%s should be a move", c)
		}
	}

	others := []Command{CommandNone, CommandRestart, CommandExit, Command(99)}
	for _, c := range others {
		if c.IsMove() {
			t.Errorf("%s should not be a move", c)
		}
	}
}

func TestCommandString(t *testing.T) {
	if CommandRestart.String() != "Restart" {
		t.Errorf("CommandRestart.String() = %q", CommandRestart.String())
	}
	if Command(42).String() != "Unknown" {
		t.Errorf("Command(42).String() = %q", Command(42).String())
	}
}

func TestGameStateFinished(t *testing.T) {
	if (GameState{Score: 10}).Finished() {
		t.Error("playing state should not be finished")
	}
	if !(GameState{Won: true}).Finished() {
		t.Error("won state should be finished")
	}
	if !(GameState{GameOver: true}).Finished() {
		t.Error("game over state should be finished")
	}
}
