package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

// Colors used by the runner's renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightCyan
)
