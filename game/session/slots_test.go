package session

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
)

func newTestState(round int) *engine.GameState {
	state := engine.InitGameStateFromConfig(nil)
	state.GameStarted = true
	state.Round = round
	state.Players = []engine.Player{
		{ID: "player-1", Name: "Alice", Cash: 2000, Salary: 1000, Expenses: 500},
		{ID: "player-2", Name: "Bob", Cash: 1500, Salary: 1000, Expenses: 500},
	}
	return state
}

func TestSlotSaveAndLoad(t *testing.T) {
	store, err := NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSlotStore failed: %v", err)
	}

	info, err := store.Save("mid-game", newTestState(3))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info.ID == "" {
		t.Error("save must get an id")
	}
	if info.Name != "mid-game" {
		t.Errorf("expected name mid-game, got %s", info.Name)
	}
	if info.Version != engine.SnapshotVersion {
		t.Errorf("expected version %d, got %d", engine.SnapshotVersion, info.Version)
	}
	if info.Round != 3 || info.Players != 2 {
		t.Errorf("unexpected summary: round=%d players=%d", info.Round, info.Players)
	}

	state, err := store.Load(info.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.Round != 3 {
		t.Errorf("expected round 3, got %d", state.Round)
	}
	if state.Players[1].Cash != 1500 {
		t.Errorf("expected Bob's cash 1500, got %d", state.Players[1].Cash)
	}

	if _, err := store.Load("no-such-save"); err == nil {
		t.Error("expected error for unknown save id")
	}
}

func TestSlotDefaultName(t *testing.T) {
	store, err := NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	info, err := store.Save("   ", newTestState(1))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info.Name == "" {
		t.Error("blank names must get a generated fallback")
	}
}

func TestSlotCapEvictsOldest(t *testing.T) {
	store, err := NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var firstID string
	for i := 0; i < MaxSaveSlots; i++ {
		info, err := store.Save(fmt.Sprintf("slot %d", i), newTestState(i+1))
		if err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
		if i == 0 {
			firstID = info.ID
		}
	}

	// One past the cap evicts the oldest slot
	if _, err := store.Save("overflow", newTestState(99)); err != nil {
		t.Fatalf("Save past cap failed: %v", err)
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != MaxSaveSlots {
		t.Errorf("expected %d slots after eviction, got %d", MaxSaveSlots, len(infos))
	}
	for _, info := range infos {
		if info.ID == firstID {
			t.Error("oldest slot must have been evicted")
		}
	}
}

func TestSlotListNewestFirst(t *testing.T) {
	store, err := NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		if _, err := store.Save(fmt.Sprintf("slot %d", i), newTestState(i)); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i].Date.After(infos[i-1].Date) {
			t.Error("slots must list newest first")
		}
	}
}

func TestSlotVersionMismatchRejected(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSlotStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		id      string
		version int
	}{
		{"untagged", 0},
		{"future", engine.SnapshotVersion + 1},
	}
	for _, tc := range cases {
		raw := fmt.Sprintf(`{"version": %d, "id": %q, "name": "stale", "date": "2026-01-01T00:00:00Z", "game_state": null}`, tc.version, tc.id)
		if err := os.WriteFile(filepath.Join(dir, tc.id+".json"), []byte(raw), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := store.Load(tc.id); err == nil {
			t.Errorf("expected error loading slot with snapshot version %d", tc.version)
		}
	}

	// Mismatched slots are skipped by listings, not fatal
	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("expected mismatched slots to be skipped, got %d", len(infos))
	}
}

func TestSlotDelete(t *testing.T) {
	store, err := NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	info, err := store.Save("doomed", newTestState(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(info.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(info.ID); err == nil {
		t.Error("deleted slot must not load")
	}
	if err := store.Delete(info.ID); err == nil {
		t.Error("expected error for double delete")
	}
}
