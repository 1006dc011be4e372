package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the building view.
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
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// LoadColor grades an occupancy ratio: green when roomy, yellow when
// filling up, red when (nearly) full.
func LoadColor(used, capacity int) Color {
	if capacity <= 0 || used*10 >= capacity*9 {
		return ColorRed
	}
	if used*2 >= capacity {
		return ColorYellow
	}
	return ColorGreen
}
