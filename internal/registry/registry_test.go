package registry

import (
	"testing"

	"github.com/helpingstar/gym-game2048/internal/game"
)

type fakeEnv struct {
	id string
}

func (f *fakeEnv) ID() string { return f.id }

func (f *fakeEnv) Reset(seed int64) (game.StepResult, error) { return game.StepResult{}, nil }

func (f *fakeEnv) Step(action int) (game.StepResult, error) { return game.StepResult{}, nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("fake-v0", func() (Environment, error) {
		return &fakeEnv{id: "fake-v0"}, nil
	})

	if !Exists("fake-v0") {
		t.Error("fake-v0 should exist after registration")
	}

	e, err := Create("fake-v0")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if e.ID() != "fake-v0" {
		t.Errorf("ID() = %q, want fake-v0", e.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nonexistent-v0"); err == nil {
		t.Error("Create() with unknown ID should fail")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()

	Register("dup-v0", func() (Environment, error) { return &fakeEnv{id: "dup-v0"}, nil })
	Register("dup-v0", func() (Environment, error) { return &fakeEnv{id: "dup-v0"}, nil })
}

func TestListSorted(t *testing.T) {
	Register("zz-v0", func() (Environment, error) { return &fakeEnv{id: "zz-v0"}, nil })
	Register("aa-v0", func() (Environment, error) { return &fakeEnv{id: "aa-v0"}, nil })

	ids := List()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("List() = %v, not sorted", ids)
		}
	}
}
