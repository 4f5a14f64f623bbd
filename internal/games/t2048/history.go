package t2048

// snapshot is a copy of the mutable engine state taken before a move.
type snapshot struct {
	board Board
	score int
}

// history is a LIFO stack of pre-move snapshots.
// saveNeeded gates recording so that a directional move, which rotates
// around the canonical left move, still records exactly one snapshot.
type history struct {
	entries    []snapshot
	saveNeeded bool
}

func newHistory() history {
	return history{saveNeeded: true}
}

// push records a snapshot and clears the save-needed flag.
func (h *history) push(board Board, score int) {
	h.entries = append(h.entries, snapshot{board: board, score: score})
	h.saveNeeded = false
}

// pop removes and returns the most recent snapshot.
func (h *history) pop() (snapshot, bool) {
	if len(h.entries) == 0 {
		return snapshot{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// peek returns the most recent snapshot without removing it.
func (h *history) peek() (snapshot, bool) {
	if len(h.entries) == 0 {
		return snapshot{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *history) depth() int {
	return len(h.entries)
}

func (h *history) clear() {
	h.entries = h.entries[:0]
	h.saveNeeded = true
}

// recordIfNeeded pushes a snapshot of the current state when the
// save-needed flag is set.
func (e *Engine) recordIfNeeded() {
	if e.history.saveNeeded {
		e.history.push(e.board, e.score)
	}
}

// Rollback restores the board and score from the most recent snapshot.
// Returns false and leaves the state untouched when there is nothing to undo.
// The running max tile is not rolled back.
func (e *Engine) Rollback() bool {
	prev, ok := e.history.pop()
	if !ok {
		return false
	}
	e.board = prev.board
	e.score = prev.score
	return true
}

// CanUndo reports whether a snapshot is available.
func (e *Engine) CanUndo() bool {
	return e.history.depth() > 0
}

// HistoryDepth returns the number of recorded snapshots.
func (e *Engine) HistoryDepth() int {
	return e.history.depth()
}

// HasBoardChanged compares the current board with the most recent snapshot.
// Returns false when no snapshot exists.
func (e *Engine) HasBoardChanged() bool {
	prev, ok := e.history.peek()
	if !ok {
		return false
	}
	return HasChanged(prev.board, e.board)
}
