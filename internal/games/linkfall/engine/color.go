package engine

// Color is the value stored in a field cell.
// ColorNone marks an empty cell; every other value is occupied.
type Color uint8

const (
	ColorNone Color = iota
	ColorBlue
	ColorYellow
	ColorGreen
	ColorPurple
	ColorRed
	ColorFloor // Sentinel for the floor row, never part of the palette
)

// Palette is the fixed set of colors pieces and targets are drawn from.
var Palette = [...]Color{ColorBlue, ColorYellow, ColorGreen, ColorPurple, ColorRed}

// PaletteSize is the number of colors in Palette.
const PaletteSize = len(Palette)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorPurple:
		return "purple"
	case ColorRed:
		return "red"
	case ColorFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Char returns a single character used by the ASCII renderer.
func (c Color) Char() rune {
	switch c {
	case ColorNone:
		return '.'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorPurple:
		return 'P'
	case ColorRed:
		return 'R'
	case ColorFloor:
		return '='
	default:
		return '?'
	}
}

// LowerChar returns the lowercase form of Char, used for target endpoints.
func (c Color) LowerChar() rune {
	ch := c.Char()
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
