package render

import (
	"image/color"
	"slices"
	"testing"

	"multisim/internal/core"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []core.Cell{core.Alive, core.Dead, core.Alive}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 0xff, G: 0x80, B: 0x10, A: 0xff}
	off := color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xff}

	fillCellsRGBA(buf, cells, on, off)

	want := []byte{
		0xff, 0x80, 0x10, 0xff,
		0x01, 0x02, 0x03, 0xff,
		0xff, 0x80, 0x10, 0xff,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}
