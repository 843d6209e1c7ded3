package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorPurple
	ColorGray
	ColorDarkGray
	ColorBrightWhite
)

// ANSI returns the terminal color code for the color, or "" for the default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "196"
	case ColorGreen:
		return "46"
	case ColorYellow:
		return "226"
	case ColorBlue:
		return "21"
	case ColorMagenta:
		return "201"
	case ColorCyan:
		return "51"
	case ColorWhite:
		return "7"
	case ColorOrange:
		return "208"
	case ColorPurple:
		return "93"
	case ColorGray:
		return "245"
	case ColorDarkGray:
		return "238"
	case ColorBrightWhite:
		return "15"
	default:
		return ""
	}
}
