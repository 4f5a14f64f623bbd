package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	tileW = 5 // Interior width of a board cell
	tileH = 1 // Interior height of a board cell
)

// tileStyles lists the look of each tile value. Larger values reuse the
// last entry.
var tileStyles = []struct {
	value int
	style core.Style
}{
	{2, core.Fg(core.ColorBlack).On(core.ColorWhite)},
	{4, core.Fg(core.ColorBlack).On(core.ColorBrightWhite)},
	{8, core.Fg(core.ColorBrightWhite).On(core.ColorOrange)},
	{16, core.Fg(core.ColorBrightWhite).On(core.ColorBrightRed)},
	{32, core.Fg(core.ColorBrightWhite).On(core.ColorRed)},
	{64, core.Fg(core.ColorBrightWhite).On(core.ColorMagenta)},
	{128, core.Fg(core.ColorBlack).On(core.ColorBrightYellow).Bolded()},
	{256, core.Fg(core.ColorBlack).On(core.ColorYellow).Bolded()},
	{512, core.Fg(core.ColorBlack).On(core.ColorBrightGreen).Bolded()},
	{1024, core.Fg(core.ColorBrightWhite).On(core.ColorGreen).Bolded()},
	{2048, core.Fg(core.ColorBrightWhite).On(core.ColorBrightMagenta).Bolded()},
	{4096, core.Fg(core.ColorBrightWhite).On(core.ColorBlue).Bolded()},
}

// TileStyle returns the display style of a tile value. Empty cells are plain.
func TileStyle(value int) core.Style {
	var style core.Style
	for _, ts := range tileStyles {
		if value < ts.value {
			break
		}
		style = ts.style
	}
	return style
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	const hudHeight = 3
	boardW := BoardSize*(tileW+1) + 1
	grid := core.NewGrid((g.screenW-boardW)/2, hudHeight+1, BoardSize, BoardSize, tileW, tileH)

	g.renderHUD(dst, grid.Origin)
	g.renderBoard(dst, grid)
	g.renderFooter(dst, grid.Origin.X, grid.Origin.Bottom()+1)
	g.renderOverlays(dst, grid.Origin)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	boardX, boardW := board.X, board.W
	dst.DrawTextInRect(core.NewRect(boardX, 0, boardW, 1), "2048", core.Fg(core.ColorBrightYellow).Bolded())

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	modeStr := "Campaign"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	if g.autoPlay {
		modeStr += " [AUTO]"
	}
	// Right-aligned on the score row
	dst.DrawTextColor(max(boardX, boardX+boardW-len(modeStr)), 1, modeStr, core.ColorGray)

	if g.mode == ModeCampaign {
		dst.DrawText(boardX, 2, fmt.Sprintf("Lv %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.currentTarget))
	} else {
		dst.DrawText(boardX, 2, fmt.Sprintf("Best tile: %d", g.engine.MaxTile()))
	}
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, grid core.Grid) {
	stepX, stepY := grid.CellW+1, grid.CellH+1
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := grid.Origin.X + x*stepX
			py := grid.Origin.Y + y*stepY

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				dst.DrawHLine(px+1, py, grid.CellW, '─')
			}
			if y < BoardSize {
				dst.DrawVLine(px, py+1, grid.CellH, '│')
			}
		}
	}

	board := g.engine.Board()
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}
			cell := grid.Cell(x, y)
			style := TileStyle(val)
			dst.FillRect(cell, ' ', style)
			dst.DrawTextInRect(cell, strconv.Itoa(val), style)
		}
	}
}

// renderFooter draws the last move, the advisor hint and undo depth.
func (g *Game) renderFooter(dst *core.Screen, boardX, y int) {
	if g.lastMove != "" {
		dst.DrawTextColor(boardX, y, "Last: "+g.lastMove, core.ColorGray)
	}
	if g.cfg.Assist.ShowHint && !g.gameOver && !g.won {
		hint := g.Hint()
		if hint.EmptyTiles >= 0 {
			dst.DrawTextColor(boardX, y+1, "Hint: "+hint.Direction.String(), core.ColorCyan)
		}
	}
	if g.cfg.Rules.Undo {
		dst.DrawTextColor(boardX, y+2, fmt.Sprintf("Undo: %d", g.engine.HistoryDepth()), core.ColorGray)
	}
}

// renderOverlays draws game state overlays centered on the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")

	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			drawOverlay(dst, board, targetStr, "Final level complete!")
		} else {
			drawOverlay(dst, board, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}

	case g.won:
		drawOverlay(dst, board, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")

	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.engine.MaxTile())
		if g.cfg.Rules.Undo && g.engine.CanUndo() {
			drawOverlay(dst, board, "GAME OVER", maxStr, "R: restart  U: undo")
		} else {
			drawOverlay(dst, board, "GAME OVER", maxStr, "Press R to restart")
		}
	}
}

// drawOverlay draws a boxed message centered on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	cx, cy := area.Center()
	box := core.CenteredRect(cx, cy, maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	inner := box.Inset(1)
	for i, line := range lines {
		dst.DrawTextInRect(core.NewRect(inner.X, inner.Y+i, inner.W, 1), line, core.Style{})
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | U: Undo | H: Hint move | Space: Autoplay | X: Random | P: Pause | Q: Quit"
}
