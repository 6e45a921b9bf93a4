package registry

import (
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

type fakeGame struct{ id string }

func (f *fakeGame) ID() string                        { return f.id }
func (f *fakeGame) Title() string                     { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig) error    { return nil }
func (f *fakeGame) Step(core.Command) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Resize(int, int)                   {}
func (f *fakeGame) Render(*core.Screen)               {}
func (f *fakeGame) State() core.GameState             { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_zz", func() Game { return &fakeGame{id: "test_zz"} })

	if !Exists("test_zz") {
		t.Fatal("registered variant should exist")
	}

	g, err := Create("test_zz")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_zz" {
		t.Errorf("Create() returned %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_zz" {
			found = true
			if info.Title != "Fake test_zz" {
				t.Errorf("List() title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered variant")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })
}

func TestReplaceOverwrites(t *testing.T) {
	Replace("test_custom", func() Game { return &fakeGame{id: "a"} })
	Replace("test_custom", func() Game { return &fakeGame{id: "b"} })

	g, err := Create("test_custom")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "b" {
		t.Errorf("Replace should overwrite, got %q", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_variant"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
	if Exists("no_such_variant") {
		t.Error("Exists() should be false for unknown IDs")
	}
}

func TestListSorted(t *testing.T) {
	Register("test_b", func() Game { return &fakeGame{id: "test_b"} })
	Register("test_a", func() Game { return &fakeGame{id: "test_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
