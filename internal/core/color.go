package core

// Color represents a foreground color for a rendered cell. The platform layer
// maps these to its own styling; core stays terminal-agnostic.
type Color uint8

// Predefined colors for floor elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
