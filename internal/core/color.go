package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI color; games only pick from this palette.
type Color uint8

// Base ANSI palette.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Extended 256-color shades, used for rock sizes.
const (
	ColorOrange Color = iota + ColorBrightWhite + 1
	ColorGray
)
