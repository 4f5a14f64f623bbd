package t2048

import "github.com/samber/lo"

// MoveEfficiency is the measured outcome of a speculative move.
// A move that leaves the board unchanged is reported as {-1, 0}.
type MoveEfficiency struct {
	EmptyTiles int
	Score      int
	Direction  Direction
}

// Better reports whether m ranks above o: more empty tiles first,
// then higher score.
func (m MoveEfficiency) Better(o MoveEfficiency) bool {
	if m.EmptyTiles != o.EmptyTiles {
		return m.EmptyTiles > o.EmptyTiles
	}
	return m.Score > o.Score
}

// adviseOrder is the order in which the advisor tries directions.
// On a full tie the earliest direction tried wins.
var adviseOrder = []Direction{DirLeft, DirDown, DirRight, DirUp}

// Efficiency applies dir speculatively, measures the result and rolls back.
// Board, score, max tile and history are left as they were.
func (e *Engine) Efficiency(dir Direction) MoveEfficiency {
	maxTile := e.maxTile
	e.history.saveNeeded = true

	result := MoveEfficiency{EmptyTiles: -1, Score: 0, Direction: dir}
	if e.Move(dir) {
		result.EmptyTiles = e.board.EmptyCount()
		result.Score = e.score
	}

	e.Rollback()
	e.maxTile = maxTile
	e.history.saveNeeded = true
	return result
}

// Advise ranks all four directions and returns the best one without
// applying it.
func (e *Engine) Advise() MoveEfficiency {
	candidates := lo.Map(adviseOrder, func(dir Direction, _ int) MoveEfficiency {
		return e.Efficiency(dir)
	})
	return lo.MaxBy(candidates, func(a, b MoveEfficiency) bool {
		return a.Better(b)
	})
}

// AutoMove applies the direction chosen by Advise and returns it.
func (e *Engine) AutoMove() Direction {
	best := e.Advise()
	e.Move(best.Direction)
	return best.Direction
}
