package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// palette maps core colors to ANSI color codes.
// ColorDefault has no entry and leaves the terminal color alone.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:         "0",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// lipglossStyle converts a cell style to a lipgloss style.
func lipglossStyle(st core.Style) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(st.Bold)
	if c, ok := palette[st.Fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[st.Bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a style are emitted as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	// Tiles repeat the same few styles, so convert each one once per frame
	styles := make(map[core.Style]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			st := s.GetCell(x, y).Style

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Style != st {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if st.Plain() {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[st]
			if !ok {
				style = lipglossStyle(st)
				styles[st] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
