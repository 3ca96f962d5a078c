package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func registerTestLevel(t *testing.T, id int, name string) {
	t.Helper()
	f := func() (*sim.Level, error) {
		return &sim.Level{Name: name, Goal: &sim.Goal{X: 10, Y: 10}}, nil
	}
	if err := registry.Add(registry.LevelInfo{ID: id, Name: name, Source: "test"}, f); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	t.Cleanup(func() { registry.Remove(id) })
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardTabs(t *testing.T) {
	registerTestLevel(t, 7001, "Marsh")
	store := openStore(t)
	store.SaveRun(storage.Run{LevelID: 7001, Score: 40, Coins: 2, Total: 40, Outcome: storage.OutcomeComplete})
	store.SaveRun(storage.Run{LevelID: 7001, Score: 10, Total: 10, Outcome: storage.OutcomeGameOver})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.tabs) != 2 || m.tabs[0].LevelID != campaignTab {
		t.Fatalf("expected campaign tab then one level, got %+v", m.tabs)
	}
	if len(m.runs) != 2 || m.runs[0].Total != 40 {
		t.Errorf("campaign tab should list runs by total, got %+v", m.runs)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.stats == nil || m.stats.Attempts != 2 || m.stats.Completed != 1 {
		t.Fatalf("unexpected level stats %+v", m.stats)
	}
	view := m.View()
	if !strings.Contains(view, "Marsh") || !strings.Contains(view, "Cleared 1 (50%)") {
		t.Errorf("level tab missing name or stats:\n%s", view)
	}

	// Wraps back to the campaign tab.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).tabCursor != 0 {
		t.Error("tab should wrap around")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected empty message without a store")
	}
}

func TestMenuListsLevelsWithBestScore(t *testing.T) {
	registerTestLevel(t, 7002, "Dunes")
	registerTestLevel(t, 7003, "Glacier")
	store := openStore(t)
	store.SaveRun(storage.Run{LevelID: 7003, Score: 75, Outcome: storage.OutcomeComplete})

	m := NewMenuModel(store, core.DefaultConfig())
	if len(m.items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.items))
	}
	if m.items[0].Best != 0 || m.items[1].Best != 75 {
		t.Errorf("unexpected best scores %+v", m.items)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu")
	}
	if sel := next.(MenuModel).Selected(); sel == nil || sel.LevelID != 7003 {
		t.Errorf("expected level 7003 selected, got %+v", sel)
	}
}
