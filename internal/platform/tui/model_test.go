package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// scriptedGame replays a fixed sequence of states, one per Step.
type scriptedGame struct {
	states []core.GameState
	next   int
	resets int
}

func (g *scriptedGame) ID() string { return "2048" }
func (g *scriptedGame) Title() string { return "2048" }
func (g *scriptedGame) Render(dst *core.Screen) {}
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) State() core.GameState {
	if g.next == 0 {
		return core.GameState{}
	}
	return g.states[g.next-1]
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if g.next < len(g.states) {
		g.next++
	}
	return core.StepResult{State: g.State()}
}

func openModelStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func savedRows(t *testing.T, store *storage.Store) int {
	t.Helper()
	entries, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	return len(entries)
}

func TestGameOverSavedOnce(t *testing.T) {
	store := openModelStore(t)
	game := &scriptedGame{states: []core.GameState{
		{Score: 100, MaxTile: 16, Moves: 10, GameOver: true},
		// undo out of game over
		{Score: 92, MaxTile: 16, Moves: 10, Undos: 1},
		{Score: 120, MaxTile: 32, Moves: 12, Undos: 1, GameOver: true},
		{Score: 120, MaxTile: 32, Moves: 12, Undos: 1, GameOver: true},
	}}
	m := NewModel(game, store, core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	for range game.states {
		m = tick(t, m)
	}

	if got := savedRows(t, store); got != 1 {
		t.Fatalf("saved %d rows for one game, want 1", got)
	}
}

func TestRestartRearmsSaving(t *testing.T) {
	store := openModelStore(t)
	game := &scriptedGame{states: []core.GameState{
		{Score: 100, MaxTile: 16, Moves: 10, GameOver: true},
		{Score: 60, MaxTile: 8, Moves: 7, GameOver: true},
	}}
	m := NewModel(game, store, core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	m = tick(t, m)
	if got := savedRows(t, store); got != 1 {
		t.Fatalf("after first game over: %d rows, want 1", got)
	}

	m.inputFrame.Set(core.ActionRestart)
	m = tick(t, m)
	if game.resets != 1 {
		t.Fatalf("restart reset the game %d times, want 1", game.resets)
	}
	if m.scoreSaved {
		t.Fatal("restart should re-arm saving")
	}

	m = tick(t, m)
	if got := savedRows(t, store); got != 2 {
		t.Errorf("after second game over: %d rows, want 2", got)
	}
}

func TestEmptyGameNotSaved(t *testing.T) {
	store := openModelStore(t)
	game := &scriptedGame{states: []core.GameState{{GameOver: true}}}
	m := NewModel(game, store, core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	tick(t, m)
	if got := savedRows(t, store); got != 0 {
		t.Errorf("saved %d rows for a scoreless game, want 0", got)
	}
}
