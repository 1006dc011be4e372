package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/universal-elevators/internal/building"
)

type stubController struct{ seed int64 }

func (s stubController) ID() string                                       { return "stub" }
func (s stubController) Title() string                                    { return "Stub" }
func (s stubController) Decide(building.ControlView) []building.Direction { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub", func(seed int64) building.Controller {
		return stubController{seed: seed}
	})

	if !Exists("test_stub") {
		t.Fatal("registered controller not found")
	}

	c, err := Create("test_stub", 42)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.(stubController).seed != 42 {
		t.Errorf("seed = %d, want 42", c.(stubController).seed)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, want Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() does not include test_stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_controller", 1)
	if !errors.Is(err, ErrUnknownController) {
		t.Errorf("Create() error = %v, want ErrUnknownController", err)
	}
	if Exists("no_such_controller") {
		t.Error("Exists() reports an unregistered controller")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	f := func(seed int64) building.Controller { return stubController{} }
	Register("test_dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test_dup", f)
}
