package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

func simpleLevel() (*sim.Level, error) {
	return &sim.Level{
		Name:      "simple",
		Spawn:     sim.Point{X: 10, Y: 10},
		Platforms: []sim.Platform{{X: 0, Y: 100, W: 200, H: 20}},
		Goal:      &sim.Goal{X: 150, Y: 36},
	}, nil
}

func TestRegisterAndLoad(t *testing.T) {
	Register(9001, "simple", simpleLevel)
	t.Cleanup(func() { Remove(9001) })

	if !Exists(9001) {
		t.Fatal("level should exist after Register")
	}

	a, err := Load(9001)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	b, err := Load(9001)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if a == b {
		t.Error("Load should return a fresh level each call")
	}
	if a.ID != 9001 {
		t.Errorf("ID = %d, expected 9001", a.ID)
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load(-42)
	if !errors.Is(err, sim.ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	err := Add(LevelInfo{ID: 9002, Name: "broken", Source: "test"}, func() (*sim.Level, error) {
		return &sim.Level{Name: "broken"}, nil
	})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	t.Cleanup(func() { Remove(9002) })

	if _, err := Load(9002); !errors.Is(err, sim.ErrInvalidLevelData) {
		t.Errorf("expected ErrInvalidLevelData, got %v", err)
	}
}

func TestAddDuplicate(t *testing.T) {
	if err := Add(LevelInfo{ID: 9003, Source: "a"}, simpleLevel); err != nil {
		t.Fatalf("first Add error: %v", err)
	}
	t.Cleanup(func() { Remove(9003) })

	if err := Add(LevelInfo{ID: 9003, Source: "b"}, simpleLevel); err == nil {
		t.Error("duplicate Add should fail")
	}
}

func TestListSortedAndNext(t *testing.T) {
	for _, id := range []int{9012, 9010, 9011} {
		if err := Add(LevelInfo{ID: id, Source: "test"}, simpleLevel); err != nil {
			t.Fatalf("Add(%d) error: %v", id, err)
		}
	}
	t.Cleanup(func() {
		Remove(9010)
		Remove(9011)
		Remove(9012)
	})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("list not sorted: %d >= %d", list[i-1].ID, list[i].ID)
		}
	}

	if next, ok := Next(9010); !ok || next != 9011 {
		t.Errorf("Next(9010) = %d, %v", next, ok)
	}
	if _, ok := Next(9012); ok {
		t.Error("Next after the last level should report false")
	}
}

func TestProviderServesCatalog(t *testing.T) {
	Register(9020, "simple", simpleLevel)
	t.Cleanup(func() { Remove(9020) })

	loop := sim.NewLoop(Provider(), sim.DefaultParams(), sim.NewRunState(3))
	if err := loop.LoadLevel(9020); err != nil {
		t.Fatalf("LoadLevel error: %v", err)
	}
	if loop.State() != sim.StateRunning {
		t.Errorf("State = %v, expected Running", loop.State())
	}
}
