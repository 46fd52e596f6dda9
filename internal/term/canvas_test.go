package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"multisim/internal/core"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
)

func bgAt(t *testing.T, c *Canvas, cl, row int) color.NRGBA {
	t.Helper()
	cols, _ := c.Size()
	return c.cells[row*cols+cl].bg
}

func TestBoundsInPixels(t *testing.T) {
	c := NewCanvas(100, 40)
	if got := c.Bounds(); got != (core.Size{W: 800, H: 640}) {
		t.Fatalf("Bounds = %+v", got)
	}
}

func TestFillRectCoversCellCentres(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillRect(8, 16, 16, 16, red)
	for row := 0; row < 5; row++ {
		for cl := 0; cl < 10; cl++ {
			want := row == 1 && (cl == 1 || cl == 2)
			if got := bgAt(t, c, cl, row) == (color.NRGBA{R: 0xff, A: 0xff}); got != want {
				t.Fatalf("cell %d,%d filled=%v, want %v", cl, row, got, want)
			}
		}
	}
}

func TestFillRectBlendsAlpha(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Clear(color.White)
	c.FillRect(0, 0, 8, 16, color.NRGBA{A: 0x80})
	bg := bgAt(t, c, 0, 0)
	if bg.R < 0x7e || bg.R > 0x80 {
		t.Fatalf("half black over white = %v", bg)
	}
}

func TestCellsSampleGrid(t *testing.T) {
	c := NewCanvas(4, 2)
	cells := []core.Cell{
		core.Alive, core.Dead,
		core.Dead, core.Alive,
	}
	c.Cells(cells, 2, 2, 16, green, red)
	want := [2][4]color.NRGBA{}
	g, r := color.NRGBA{G: 0xff, A: 0xff}, color.NRGBA{R: 0xff, A: 0xff}
	want[0] = [4]color.NRGBA{g, g, r, r}
	want[1] = [4]color.NRGBA{r, r, g, g}
	for row := 0; row < 2; row++ {
		for cl := 0; cl < 4; cl++ {
			if got := bgAt(t, c, cl, row); got != want[row][cl] {
				t.Fatalf("cell %d,%d = %v, want %v", cl, row, got, want[row][cl])
			}
		}
	}
}

func TestTextAndFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 4)

	c := NewCanvas(20, 4)
	c.Clear(color.Black)
	c.Text("HI", 16, 16, 1, red)
	c.Flush(screen)

	r, _, style, _ := screen.GetContent(2, 1)
	if r != 'H' {
		t.Fatalf("rune at 2,1 = %q, want H", r)
	}
	fg, bg, _ := style.Decompose()
	if fr, _, _ := fg.RGB(); fr != 0xff {
		t.Fatalf("fg = %v", fg)
	}
	if br, bgG, bb := bg.RGB(); br != 0 || bgG != 0 || bb != 0 {
		t.Fatalf("bg = %v", bg)
	}
	if r, _, _, _ := screen.GetContent(3, 1); r != 'I' {
		t.Fatalf("rune at 3,1 = %q, want I", r)
	}
}

func TestStrokeRectOutline(t *testing.T) {
	c := NewCanvas(5, 5)
	c.StrokeRect(8, 16, 24, 48, 1, green)
	g := color.NRGBA{G: 0xff, A: 0xff}
	if bgAt(t, c, 1, 1) != g || bgAt(t, c, 3, 3) != g || bgAt(t, c, 1, 2) != g {
		t.Fatal("border cells not painted")
	}
	if bgAt(t, c, 2, 2) == g {
		t.Fatal("interior painted")
	}
}
