package t2048

import "math/rand"

// DefaultSpawn4Prob is the probability of spawning a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// initialMaxTile is the max tile reported before any merge.
const initialMaxTile = 2

// Engine owns the board, score and undo history of a single game.
// Every move is expressed as the canonical left move wrapped in rotations.
// An Engine is not safe for concurrent use.
type Engine struct {
	board      Board
	score      int
	maxTile    int
	history    history
	rng        *rand.Rand
	spawn4Prob float64
}

// NewEngine creates an engine with two spawned tiles.
// A spawn4Prob outside [0, 1] falls back to DefaultSpawn4Prob.
func NewEngine(rng *rand.Rand, spawn4Prob float64) *Engine {
	if spawn4Prob < 0 || spawn4Prob > 1 {
		spawn4Prob = DefaultSpawn4Prob
	}
	e := &Engine{
		rng:        rng,
		spawn4Prob: spawn4Prob,
	}
	e.Reset()
	return e
}

// NewEngineFromBoard creates an engine positioned on the given board.
// No tiles are spawned. Intended for tests and replays.
func NewEngineFromBoard(rng *rand.Rand, board Board, score int) *Engine {
	e := &Engine{
		board:      board,
		score:      score,
		maxTile:    max(initialMaxTile, board.MaxValue()),
		history:    newHistory(),
		rng:        rng,
		spawn4Prob: DefaultSpawn4Prob,
	}
	return e
}

// Reset clears the board, score and history and spawns two tiles.
func (e *Engine) Reset() {
	e.board = Board{}
	e.score = 0
	e.maxTile = initialMaxTile
	e.history.clear()
	e.spawn()
	e.spawn()
}

// SetSpawn4Prob changes the probability of spawning a 4.
func (e *Engine) SetSpawn4Prob(p float64) {
	if p < 0 || p > 1 {
		return
	}
	e.spawn4Prob = p
}

// Board returns a copy of the current tile values.
func (e *Engine) Board() [BoardSize][BoardSize]int {
	return e.board.Values()
}

// Tiles returns a copy of the current board.
func (e *Engine) Tiles() Board {
	return e.board
}

// Score returns the accumulated merge score.
func (e *Engine) Score() int {
	return e.score
}

// MaxTile returns the highest tile value produced so far.
func (e *Engine) MaxTile() int {
	return e.maxTile
}

// EmptyCount returns the number of empty cells.
func (e *Engine) EmptyCount() int {
	return e.board.EmptyCount()
}

// CanMove reports whether any direction would change the board.
func (e *Engine) CanMove() bool {
	return e.board.CanMove()
}

// spawn places a 2 or a 4 on a random empty cell. No-op on a full board.
func (e *Engine) spawn() {
	cells := e.board.EmptyCells()
	if len(cells) == 0 {
		return
	}
	cell := cells[e.rng.Intn(len(cells))]

	value := 2
	if e.rng.Float64() < e.spawn4Prob {
		value = 4
	}
	e.board[cell.Y][cell.X] = Tile{Value: value}
}

// slideLeft applies compress and merge to every row. At most one tile is
// spawned per call, right after the first row that changed.
func (e *Engine) slideLeft() {
	spawned := false
	for y := range BoardSize {
		changed, gained, largest := slideRow(&e.board[y])
		if !changed {
			continue
		}
		e.score += gained
		if largest > e.maxTile {
			e.maxTile = largest
		}
		if !spawned {
			spawned = true
			e.spawn()
		}
	}
}

// turn records a snapshot, rotates the board by k quarter turns, moves left
// and rotates back.
func (e *Engine) turn(k int) {
	e.recordIfNeeded()
	e.board.rotate(k)
	e.slideLeft()
	e.board.rotate(4 - k)
	e.history.saveNeeded = true
}

// Left moves all tiles left.
func (e *Engine) Left() { e.turn(0) }

// Right moves all tiles right.
func (e *Engine) Right() { e.turn(2) }

// Up moves all tiles up.
func (e *Engine) Up() { e.turn(3) }

// Down moves all tiles down.
func (e *Engine) Down() { e.turn(1) }

// Move applies a move in the given direction.
// Returns true if the board changed. Unknown directions are ignored.
func (e *Engine) Move(dir Direction) bool {
	switch dir {
	case DirLeft:
		e.Left()
	case DirRight:
		e.Right()
	case DirUp:
		e.Up()
	case DirDown:
		e.Down()
	default:
		return false
	}
	return e.HasBoardChanged()
}

// RandomMove applies a uniformly chosen direction regardless of the board.
func (e *Engine) RandomMove() Direction {
	dir := Directions[e.rng.Intn(len(Directions))]
	e.Move(dir)
	return dir
}
