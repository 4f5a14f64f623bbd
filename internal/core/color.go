package core

// Color is a terminal palette entry. ColorDefault keeps whatever the
// terminal uses, so it is valid as both foreground and background.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Style is the look of a single cell. The zero Style is plain text.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Fg returns a style with only a foreground color set.
func Fg(c Color) Style {
	return Style{Fg: c}
}

// On returns s drawn over the background c.
func (s Style) On(c Color) Style {
	s.Bg = c
	return s
}

// Bolded returns s in bold.
func (s Style) Bolded() Style {
	s.Bold = true
	return s
}

// Plain reports whether s has no colors and no weight.
func (s Style) Plain() bool {
	return s == Style{}
}
