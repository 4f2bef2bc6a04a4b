package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)

// FighterColor returns the color assigned to fighter 1 or 2.
func FighterColor(id int) Color {
	if id == 2 {
		return ColorBlue
	}
	return ColorRed
}

// HealthColor picks a bar color from the remaining health fraction.
func HealthColor(fraction float64) Color {
	switch {
	case fraction > 0.6:
		return ColorGreen
	case fraction > 0.3:
		return ColorYellow
	default:
		return ColorRed
	}
}
