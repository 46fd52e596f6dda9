//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"multisim/internal/core"
)

// Canvas implements core.Canvas on top of an ebiten image. One Canvas is
// reused across frames; Target points it at the frame's screen.
type Canvas struct {
	dst     *ebiten.Image
	face    font.Face
	ascent  int
	painter *GridPainter
}

// NewCanvas returns a Canvas drawing text with the 7x13 bitmap face.
func NewCanvas() *Canvas {
	face := basicfont.Face7x13
	return &Canvas{face: face, ascent: face.Metrics().Ascent.Ceil()}
}

// Target sets the image subsequent calls draw onto.
func (c *Canvas) Target(dst *ebiten.Image) { c.dst = dst }

func (c *Canvas) Bounds() core.Size {
	b := c.dst.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

func (c *Canvas) Clear(col color.Color) { c.dst.Fill(col) }

func (c *Canvas) FillRect(x, y, w, h float32, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, x, y, w, h, col, false)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float32, col color.Color) {
	vector.StrokeRect(c.dst, x, y, w, h, width, col, false)
}

func (c *Canvas) FillCircle(cx, cy, r float32, col color.Color) {
	vector.DrawFilledCircle(c.dst, cx, cy, r, col, true)
}

func (c *Canvas) Text(s string, x, y int, scale float64, col color.Color) {
	if s == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(c.ascent))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.DrawWithOptions(c.dst, s, c.face, op)
}

// Cells draws the buffer through a GridPainter, rebuilt when the grid size
// changes.
func (c *Canvas) Cells(cells []core.Cell, w, h, scale int, on, off color.Color) {
	if c.painter != nil {
		if pw, ph := c.painter.Size(); pw != w || ph != h {
			c.painter.Dispose()
			c.painter = nil
		}
	}
	if c.painter == nil {
		c.painter = NewGridPainter(w, h)
	}
	c.painter.Blit(c.dst, cells, on, off, scale)
}

var _ core.Canvas = (*Canvas)(nil)
