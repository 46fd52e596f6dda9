package render

import (
	"image/color"

	"multisim/internal/core"
)

// rgba8 returns c as straight 8-bit components.
func rgba8(c color.Color) [4]byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]byte{n.R, n.G, n.B, n.A}
}

// fillCellsRGBA converts a cell buffer into RGBA pixels in buf, one pixel per
// cell. buf must hold 4*len(cells) bytes.
func fillCellsRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	pOn, pOff := rgba8(on), rgba8(off)
	for i, c := range cells {
		p := pOff
		if c != core.Dead {
			p = pOn
		}
		copy(buf[i*4:i*4+4], p[:])
	}
}
