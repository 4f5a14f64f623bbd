package t2048

import "testing"

func TestMoveEfficiencyBetter(t *testing.T) {
	tests := []struct {
		name string
		a, b MoveEfficiency
		want bool
	}{
		{"more empty tiles", MoveEfficiency{EmptyTiles: 5, Score: 0}, MoveEfficiency{EmptyTiles: 4, Score: 100}, true},
		{"fewer empty tiles", MoveEfficiency{EmptyTiles: 3, Score: 100}, MoveEfficiency{EmptyTiles: 4, Score: 0}, false},
		{"tie broken by score", MoveEfficiency{EmptyTiles: 4, Score: 8}, MoveEfficiency{EmptyTiles: 4, Score: 4}, true},
		{"full tie", MoveEfficiency{EmptyTiles: 4, Score: 4}, MoveEfficiency{EmptyTiles: 4, Score: 4}, false},
		{"no-op ranks last", MoveEfficiency{EmptyTiles: -1}, MoveEfficiency{EmptyTiles: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Better(tt.b); got != tt.want {
				t.Errorf("%+v.Better(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEfficiencyIsPure(t *testing.T) {
	e := NewEngine(newTestRNG(), DefaultSpawn4Prob)
	e.Move(DirLeft)
	e.Move(DirUp)

	board, score, maxTile, depth := e.Tiles(), e.Score(), e.MaxTile(), e.HistoryDepth()

	for _, dir := range Directions {
		e.Efficiency(dir)
		if e.Tiles() != board || e.Score() != score || e.MaxTile() != maxTile || e.HistoryDepth() != depth {
			t.Fatalf("Efficiency(%v) changed engine state", dir)
		}
	}
	e.Advise()
	if e.Tiles() != board || e.Score() != score || e.MaxTile() != maxTile || e.HistoryDepth() != depth {
		t.Fatal("Advise changed engine state")
	}

	// A real move after probing still records exactly one snapshot
	e.Move(DirDown)
	if e.HistoryDepth() != depth+1 {
		t.Errorf("HistoryDepth = %d, want %d", e.HistoryDepth(), depth+1)
	}
}

func TestEfficiencyDoesNotLeakMaxTile(t *testing.T) {
	e := NewEngineFromBoard(newTestRNG(), BoardFromValues([4][4]int{{64, 64}}), 0)
	if got := e.Efficiency(DirLeft); got.Score != 128 {
		t.Errorf("Efficiency(Left).Score = %d, want 128", got.Score)
	}
	if e.MaxTile() != 64 {
		t.Errorf("MaxTile after Efficiency = %d, want 64", e.MaxTile())
	}
}

func TestAdviseSingleLegalMove(t *testing.T) {
	// Only Right changes the board: the left column is packed and merge-free
	e := NewEngineFromBoard(newTestRNG(), BoardFromValues([4][4]int{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
	}), 0)

	for _, dir := range []Direction{DirLeft, DirUp, DirDown} {
		if got := e.Efficiency(dir); got.EmptyTiles != -1 || got.Score != 0 {
			t.Errorf("Efficiency(%v) = %+v, want {-1 0}", dir, got)
		}
	}

	best := e.Advise()
	if best.Direction != DirRight {
		t.Errorf("Advise().Direction = %v, want Right", best.Direction)
	}
	// Every row changes and the tile spawned after the first one may merge
	// in a later row
	slid := best.EmptyTiles == 11 && best.Score == 0
	merged := best.EmptyTiles == 12 && (best.Score == 4 || best.Score == 8)
	if !slid && !merged {
		t.Errorf("Advise() = %+v, want 11 empty with score 0 or 12 empty with a merge", best)
	}
}

func TestAdviseTieBreak(t *testing.T) {
	// Left and Right both leave 14 empty cells and score 4; Left is tried first
	e := NewEngineFromBoard(newTestRNG(), BoardFromValues([4][4]int{{2, 2}}), 0)

	best := e.Advise()
	want := MoveEfficiency{EmptyTiles: 14, Score: 4, Direction: DirLeft}
	if best != want {
		t.Errorf("Advise() = %+v, want %+v", best, want)
	}
	if down := e.Efficiency(DirDown); down.EmptyTiles != 13 {
		t.Errorf("Efficiency(Down).EmptyTiles = %d, want 13", down.EmptyTiles)
	}
	if up := e.Efficiency(DirUp); up.EmptyTiles != -1 {
		t.Errorf("Efficiency(Up).EmptyTiles = %d, want -1", up.EmptyTiles)
	}
}

func TestAdviseLockedBoard(t *testing.T) {
	e := NewEngineFromBoard(newTestRNG(), BoardFromValues([4][4]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}), 0)

	best := e.Advise()
	if best.EmptyTiles != -1 || best.Direction != DirLeft {
		t.Errorf("Advise() on locked board = %+v, want {-1 0 Left}", best)
	}
}

func TestAutoMove(t *testing.T) {
	e := NewEngineFromBoard(newTestRNG(), BoardFromValues([4][4]int{{2, 2}}), 0)

	if dir := e.AutoMove(); dir != DirLeft {
		t.Errorf("AutoMove() = %v, want Left", dir)
	}
	if e.Score() != 4 || e.Board()[0][0] != 4 {
		t.Errorf("AutoMove did not apply the move: score %d board %v", e.Score(), e.Board())
	}
	if e.HistoryDepth() != 1 {
		t.Errorf("HistoryDepth = %d, want 1", e.HistoryDepth())
	}
}
