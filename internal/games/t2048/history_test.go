package t2048

import "testing"

func TestHistoryStack(t *testing.T) {
	h := newHistory()
	if !h.saveNeeded {
		t.Fatal("new history should need a save")
	}
	if _, ok := h.peek(); ok {
		t.Error("peek on empty history should fail")
	}
	if _, ok := h.pop(); ok {
		t.Error("pop on empty history should fail")
	}

	a := BoardFromValues([4][4]int{{2}})
	b := BoardFromValues([4][4]int{{4}})

	h.push(a, 1)
	if h.saveNeeded {
		t.Error("push should clear saveNeeded")
	}
	h.push(b, 2)

	if h.depth() != 2 {
		t.Fatalf("depth = %d, want 2", h.depth())
	}

	top, ok := h.peek()
	if !ok || top.board != b || top.score != 2 {
		t.Errorf("peek = %+v, want board b score 2", top)
	}
	if h.depth() != 2 {
		t.Error("peek should not remove the snapshot")
	}

	got, _ := h.pop()
	if got.board != b {
		t.Error("pop should return the most recent snapshot first")
	}
	got, _ = h.pop()
	if got.board != a || got.score != 1 {
		t.Errorf("second pop = %+v, want board a score 1", got)
	}

	h.push(a, 1)
	h.clear()
	if h.depth() != 0 || !h.saveNeeded {
		t.Error("clear should empty the stack and require a save")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := NewEngineFromBoard(newTestRNG(), BoardFromValues([4][4]int{{2, 2}}), 0)
	e.Left()

	prev, _ := e.history.peek()
	e.board[3][3] = Tile{Value: 1024}
	if prev2, _ := e.history.peek(); prev2.board != prev.board {
		t.Error("mutating the board altered a recorded snapshot")
	}
	if prev.board[0][0].Value != 2 || prev.board[0][1].Value != 2 {
		t.Errorf("snapshot board = %v, want pre-move board", prev.board.Values())
	}
}

func TestOneSnapshotPerMove(t *testing.T) {
	e := NewEngine(newTestRNG(), DefaultSpawn4Prob)
	for i, dir := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		e.Move(dir)
		if e.HistoryDepth() != i+1 {
			t.Errorf("after %v HistoryDepth = %d, want %d", dir, e.HistoryDepth(), i+1)
		}
	}
}
