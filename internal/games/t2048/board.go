package t2048

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all move directions in declaration order.
var Directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a 4x4 grid of tiles stored row-major.
// Being an array, assigning a Board copies every tile.
type Board [BoardSize][BoardSize]Tile

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// BoardFromValues builds a board from raw tile values.
func BoardFromValues(values [BoardSize][BoardSize]int) Board {
	var b Board
	for y := range BoardSize {
		for x := range BoardSize {
			b[y][x] = Tile{Value: values[y][x]}
		}
	}
	return b
}

// Values returns the tile values of the board.
func (b Board) Values() [BoardSize][BoardSize]int {
	var v [BoardSize][BoardSize]int
	for y := range BoardSize {
		for x := range BoardSize {
			v[y][x] = b[y][x].Value
		}
	}
	return v
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x].IsEmpty() {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells.
func (b Board) EmptyCount() int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// MaxValue returns the highest tile value on the board.
func (b Board) MaxValue() int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x].Value > maxVal {
				maxVal = b[y][x].Value
			}
		}
	}
	return maxVal
}

// HasChanged reports whether any cell value differs between the two boards.
func HasChanged(before, after Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if before[y][x].Value != after[y][x].Value {
				return true
			}
		}
	}
	return false
}

// rotate turns the board clockwise by k quarter turns.
func (b *Board) rotate(k int) {
	for range ((k % 4) + 4) % 4 {
		var turned Board
		for y := range BoardSize {
			for x := range BoardSize {
				turned[x][BoardSize-1-y] = b[y][x]
			}
		}
		*b = turned
	}
}

// compressRow packs non-empty tiles toward index 0, keeping their order.
// Each tile is shifted left one slot at a time past preceding empties.
// Returns true if any tile moved.
func compressRow(row *[BoardSize]Tile) bool {
	moved := false
	for i := 1; i < BoardSize; i++ {
		if row[i].IsEmpty() {
			continue
		}
		for a := i - 1; a >= 0 && row[a].IsEmpty(); a-- {
			row[a], row[a+1] = row[a+1], row[a]
			moved = true
		}
	}
	return moved
}

// mergeRow makes a single left-to-right pass combining equal neighbours,
// then compresses the row again. A tile produced by a merge is never merged
// a second time in the same pass: [2,2,2,2] becomes [4,4,0,0].
// Returns whether any merge happened, the score gained and the largest
// merged value.
func mergeRow(row *[BoardSize]Tile) (merged bool, gained, largest int) {
	for i := 1; i < BoardSize; i++ {
		if row[i].IsEmpty() || row[i-1].Value != row[i].Value {
			continue
		}
		value := row[i-1].Value * 2
		row[i-1].Value = value
		row[i] = Tile{}
		gained += value
		if value > largest {
			largest = value
		}
		merged = true
	}
	compressRow(row)
	return merged, gained, largest
}

// slideRow compresses and merges a row toward index 0.
// Returns whether the row changed, the score gained and the largest merged value.
func slideRow(row *[BoardSize]Tile) (changed bool, gained, largest int) {
	compressed := compressRow(row)
	merged, gained, largest := mergeRow(row)
	return compressed || merged, gained, largest
}

// CanMove reports whether at least one direction would change the board.
// The check runs on a copy; the receiver is never modified.
func (b Board) CanMove() bool {
	scratch := b
	for range 4 {
		for y := range BoardSize {
			row := scratch[y]
			if changed, _, _ := slideRow(&row); changed {
				return true
			}
		}
		scratch.rotate(1)
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent tiles share a value.
func (b Board) HasPossibleMerge() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := b[y][x].Value
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && b[y][x+1].Value == val {
				return true
			}
			if y < BoardSize-1 && b[y+1][x].Value == val {
				return true
			}
		}
	}
	return false
}
