package life

import "image/color"

// Theme selects the colour scheme used to draw the board.
type Theme uint8

const (
	ThemeDefault Theme = iota
	ThemeGruvbox
	ThemeMatrix
	ThemeMidnight
	themeCount
)

// Style is the background, cell and accent colour triple of a theme.
type Style struct {
	Bg, Fg, Accent color.RGBA
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

var styles = [themeCount]Style{
	ThemeDefault:  {Bg: hex(0x000000), Fg: hex(0xffffff), Accent: hex(0x00e430)},
	ThemeGruvbox:  {Bg: hex(0x282828), Fg: hex(0xebdbb2), Accent: hex(0xcc241d)},
	ThemeMatrix:   {Bg: hex(0x131721), Fg: hex(0x32c603), Accent: hex(0x0079f1)},
	ThemeMidnight: {Bg: hex(0x0d1017), Fg: hex(0xffffff), Accent: hex(0xd65d0e)},
}

// Style returns the colours for t.
func (t Theme) Style() Style {
	if t >= themeCount {
		return styles[ThemeDefault]
	}
	return styles[t]
}

// Tint returns the per-cell colour of a live cell at (x, y) for themes that
// colour cells by position. ok is false for flat themes.
func (t Theme) Tint(x, y int) (c color.RGBA, ok bool) {
	if t != ThemeMidnight {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 0xff}, true
}

// Next cycles to the following theme.
func (t Theme) Next() Theme { return (t + 1) % themeCount }

func (t Theme) String() string {
	switch t {
	case ThemeDefault:
		return "Default"
	case ThemeGruvbox:
		return "Gruvbox"
	case ThemeMatrix:
		return "Matrix"
	case ThemeMidnight:
		return "Midnight"
	default:
		return "Unknown"
	}
}
