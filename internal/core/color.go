package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Predefined colors. The bright variants and pink are used for tetromino kinds.
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
	ColorOrange
	ColorGray
	ColorPink
)

// RGB returns the 24-bit color used by pixel renderers (desktop, browser).
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 0xf0, 0x00, 0x00
	case ColorGreen, ColorBrightGreen:
		return 0x00, 0xf0, 0x00
	case ColorYellow, ColorBrightYellow:
		return 0xf0, 0xf0, 0x00
	case ColorBlue, ColorBrightBlue:
		return 0x00, 0x00, 0xf0
	case ColorMagenta, ColorBrightMagenta:
		return 0xa0, 0x00, 0xf0
	case ColorCyan, ColorBrightCyan:
		return 0x00, 0xf0, 0xf0
	case ColorOrange:
		return 0xf0, 0xa0, 0x00
	case ColorPink:
		return 0xff, 0x5f, 0xbf
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	default:
		return 0xf8, 0xf8, 0xf8
	}
}

// Hex returns the color as a CSS hex string, e.g. "#ff5fbf".
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	r, g, b := c.RGB()
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{r, g, b} {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0f]
	}
	return string(buf)
}
