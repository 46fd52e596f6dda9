// Package term runs the simulation host in a terminal through tcell. Every
// character cell stands for CellW x CellH window pixels, so simulations keep
// drawing in pixels and the canvas samples their output per cell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"multisim/internal/core"
)

// Pixel size of one terminal cell.
const (
	CellW = 8
	CellH = 16
)

type cell struct {
	bg, fg color.NRGBA
	r      rune
}

// Canvas is a core.Canvas rasterized at character-cell resolution.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas returns a canvas covering cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	c.Clear(color.Black)
}

// Size returns the canvas size in terminal cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

func (c *Canvas) Bounds() core.Size {
	return core.Size{W: c.cols * CellW, H: c.rows * CellH}
}

func (c *Canvas) Clear(col color.Color) {
	bg := nrgba(col)
	bg.A = 0xff
	for i := range c.cells {
		c.cells[i] = cell{bg: bg, r: ' '}
	}
}

// FillRect paints every cell whose centre lies inside the rectangle.
func (c *Canvas) FillRect(x, y, w, h float32, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	src := nrgba(col)
	c0, c1 := span(x, x+w, CellW, c.cols)
	r0, r1 := span(y, y+h, CellH, c.rows)
	for row := r0; row < r1; row++ {
		for cl := c0; cl < c1; cl++ {
			c.blendBg(cl, row, src)
		}
	}
}

// StrokeRect paints the border cells of the rectangle.
func (c *Canvas) StrokeRect(x, y, w, h, width float32, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	src := nrgba(col)
	c0, r0 := int(x)/CellW, int(y)/CellH
	c1, r1 := int(x+w-1)/CellW, int(y+h-1)/CellH
	for cl := c0; cl <= c1; cl++ {
		c.setBg(cl, r0, src)
		if r1 != r0 {
			c.setBg(cl, r1, src)
		}
	}
	for row := r0 + 1; row < r1; row++ {
		c.setBg(c0, row, src)
		if c1 != c0 {
			c.setBg(c1, row, src)
		}
	}
}

// FillCircle paints cells whose centre lies in the circle; a circle smaller
// than a cell still marks the cell holding its centre.
func (c *Canvas) FillCircle(cx, cy, r float32, col color.Color) {
	src := nrgba(col)
	c.blendBg(int(cx)/CellW, int(cy)/CellH, src)
	c0, c1 := span(cx-r, cx+r, CellW, c.cols)
	r0, r1 := span(cy-r, cy+r, CellH, c.rows)
	for row := r0; row < r1; row++ {
		for cl := c0; cl < c1; cl++ {
			dx := float64(cl*CellW+CellW/2) - float64(cx)
			dy := float64(row*CellH+CellH/2) - float64(cy)
			if math.Hypot(dx, dy) <= float64(r) && (cl != int(cx)/CellW || row != int(cy)/CellH) {
				c.blendBg(cl, row, src)
			}
		}
	}
}

// Text writes one rune per cell on the row holding the text's vertical
// centre. Scale only moves that row; glyphs stay one cell wide.
func (c *Canvas) Text(s string, x, y int, scale float64, col color.Color) {
	if scale <= 0 {
		scale = 1
	}
	row := (y + int(core.GlyphH*scale)/2) / CellH
	if row < 0 || row >= c.rows {
		return
	}
	fg := nrgba(col)
	cl := x / CellW
	for _, r := range s {
		if cl >= 0 && cl < c.cols {
			p := &c.cells[row*c.cols+cl]
			p.r, p.fg = r, fg
		}
		cl++
	}
}

// Cells samples the grid at the centre of every terminal cell.
func (c *Canvas) Cells(cells []core.Cell, w, h, scale int, on, off color.Color) {
	if scale <= 0 || len(cells) != w*h {
		return
	}
	pOn, pOff := nrgba(on), nrgba(off)
	for row := 0; row < c.rows; row++ {
		gy := (row*CellH + CellH/2) / scale
		if gy >= h {
			break
		}
		for cl := 0; cl < c.cols; cl++ {
			gx := (cl*CellW + CellW/2) / scale
			if gx >= w {
				break
			}
			src := pOff
			if cells[gy*w+gx] != core.Dead {
				src = pOn
			}
			c.blendBg(cl, row, src)
		}
	}
}

// Flush copies the canvas onto the screen. The caller shows the screen.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for cl := 0; cl < c.cols; cl++ {
			p := c.cells[row*c.cols+cl]
			style := tcell.StyleDefault.Background(tcellColor(p.bg)).Foreground(tcellColor(p.fg))
			screen.SetContent(cl, row, p.r, nil, style)
		}
	}
}

func (c *Canvas) setBg(cl, row int, src color.NRGBA) {
	if cl < 0 || cl >= c.cols || row < 0 || row >= c.rows {
		return
	}
	p := &c.cells[row*c.cols+cl]
	p.bg = src
	p.bg.A = 0xff
	p.r = ' '
}

// blendBg composites src over the cell background and erases any text the
// new fill covers.
func (c *Canvas) blendBg(cl, row int, src color.NRGBA) {
	if cl < 0 || cl >= c.cols || row < 0 || row >= c.rows || src.A == 0 {
		return
	}
	p := &c.cells[row*c.cols+cl]
	p.bg = over(src, p.bg)
	if src.A == 0xff {
		p.r = ' '
	}
}

// span returns the cell range [lo, hi) whose centres fall in [a, b).
func span(a, b float32, size, limit int) (int, int) {
	lo := int(math.Ceil(float64(a)/float64(size) - 0.5))
	hi := int(math.Ceil(float64(b)/float64(size) - 0.5))
	return max(lo, 0), min(hi, limit)
}

func nrgba(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func over(src, dst color.NRGBA) color.NRGBA {
	a := uint32(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(0xff-a) + 0x7f) / 0xff)
	}
	return color.NRGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 0xff}
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var _ core.Canvas = (*Canvas)(nil)
