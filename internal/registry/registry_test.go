package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/torus-snake/internal/replay"
)

type stubScenario struct {
	id string
}

func (s stubScenario) ID() string    { return s.id }
func (s stubScenario) Title() string { return "Stub " + s.id }
func (s stubScenario) Script() replay.Script {
	return replay.Script{Name: s.id, Steps: []replay.Step{{Repeat: 1}}}
}

func register(id string) {
	Register(id, func() Scenario { return stubScenario{id: id} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("test-b")
	register("test-a")

	if !Exists("test-a") {
		t.Fatal("test-a should exist after Register")
	}

	sc, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if sc.ID() != "test-a" {
		t.Errorf("ID() = %q, expected test-a", sc.ID())
	}
	if sc.Script().Name != "test-a" {
		t.Errorf("Script().Name = %q, expected test-a", sc.Script().Name)
	}

	list := List()
	var ids []string
	for _, info := range list {
		if strings.HasPrefix(info.ID, "test-") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("Title for %s = %q", info.ID, info.Title)
			}
			if info.Ticks != 1 {
				t.Errorf("Ticks for %s = %d, expected 1", info.ID, info.Ticks)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test-a" || ids[1] != "test-b" {
		t.Errorf("List() ids = %v, expected sorted [test-a test-b]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("no-such-scenario") {
		t.Fatal("no-such-scenario should not exist")
	}
	if _, err := Create("no-such-scenario"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test-dup")

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	register("test-dup")
}
