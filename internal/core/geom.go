// Package core provides fundamental types shared by the game and the
// platform layer: the screen buffer, input actions and runtime config.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w x h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks r by n cells on every side. The size never goes negative.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid divides a rectangle into equal cells separated by one-cell borders,
// the layout of a bordered game board.
type Grid struct {
	Origin     Rect // Outer bounds, borders included
	Cols, Rows int
	CellW      int // Interior width of one cell
	CellH      int // Interior height of one cell
}

// NewGrid lays out a cols x rows grid with its top-left corner at (x, y).
func NewGrid(x, y, cols, rows, cellW, cellH int) Grid {
	return Grid{
		Origin: NewRect(x, y, cols*(cellW+1)+1, rows*(cellH+1)+1),
		Cols:   cols,
		Rows:   rows,
		CellW:  cellW,
		CellH:  cellH,
	}
}

// Cell returns the interior of the cell at column col and row row.
func (g Grid) Cell(col, row int) Rect {
	return Rect{
		X: g.Origin.X + 1 + col*(g.CellW+1),
		Y: g.Origin.Y + 1 + row*(g.CellH+1),
		W: g.CellW,
		H: g.CellH,
	}
}
