package core

import "image/color"

// Glyph metrics of the fixed-width face every Canvas renders text with, in
// pixels at scale 1.
const (
	GlyphW = 7
	GlyphH = 13
)

// Canvas is the drawing surface handed to simulations. Coordinates are window
// pixels with the origin at the top-left corner.
type Canvas interface {
	Bounds() Size
	Clear(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y int, scale float64, c color.Color)
	// Cells draws a w*h row-major cell buffer, each cell scale pixels wide.
	Cells(cells []Cell, w, h, scale int, on, off color.Color)
}

// TextWidth returns the pixel width of s drawn at the given scale.
func TextWidth(s string, scale float64) int {
	n := 0
	for range s {
		n++
	}
	return int(float64(n*GlyphW) * scale)
}
