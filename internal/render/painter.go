//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"multisim/internal/core"
)

// GridPainter uploads cell buffers into a single w*h image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Blit uploads cells into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Dispose releases the GPU image.
func (gp *GridPainter) Dispose() {
	if gp.img != nil {
		gp.img.Dispose()
		gp.img = nil
	}
}
