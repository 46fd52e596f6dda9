package host

import (
	"fmt"
	"image/color"

	"multisim/internal/core"
)

const (
	menuTop     = 220
	menuItemH   = 44
	menuItemGap = 12
	menuMargin  = 100
)

var (
	menuBg     = color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}
	menuItem   = color.RGBA{R: 0x2a, G: 0x2f, B: 0x3a, A: 0xff}
	menuActive = color.RGBA{R: 0x00, G: 0xa0, B: 0x30, A: 0xff}
	menuText   = color.RGBA{R: 0xeb, G: 0xdb, B: 0xb2, A: 0xff}
	menuAccent = color.RGBA{R: 0x00, G: 0xe4, B: 0x30, A: 0xff}
)

// menuItemRect returns the clickable rectangle of entry i.
func menuItemRect(window core.Size, i int) (x, y, w, h int) {
	x = menuMargin
	w = max(window.W-2*menuMargin, 1)
	y = menuTop + i*(menuItemH+menuItemGap)
	return x, y, w, menuItemH
}

// menuItemAt returns the entry under the pointer.
func menuItemAt(window core.Size, px, py int) (int, bool) {
	for i := range Selectable {
		x, y, w, h := menuItemRect(window, i)
		if px >= x && px < x+w && py >= y && py < y+h {
			return i, true
		}
	}
	return 0, false
}

// menuInput moves the cursor and reports a chosen entry: digit keys pick
// directly, Enter picks the cursor, a left click picks the entry under it.
func (s *Selector) menuInput(f *core.Frame) (Selected, bool) {
	digits := []core.Key{core.KeyDigit1, core.KeyDigit2, core.KeyDigit3, core.KeyDigit4}
	for i, k := range digits {
		if i < len(Selectable) && f.Pressed(k) {
			f.Consume(k)
			return Selectable[i], true
		}
	}
	if f.Pressed(core.KeyUp) {
		f.Consume(core.KeyUp)
		s.menuCursor = (s.menuCursor + len(Selectable) - 1) % len(Selectable)
	}
	if f.Pressed(core.KeyDown) {
		f.Consume(core.KeyDown)
		s.menuCursor = (s.menuCursor + 1) % len(Selectable)
	}
	if i, ok := menuItemAt(f.Global.Window, f.Global.MouseX, f.Global.MouseY); ok {
		if f.Global.MouseDX != 0 || f.Global.MouseDY != 0 {
			s.menuCursor = i
		}
		if f.Global.Clicked(core.MouseLeft) {
			f.ConsumeClick(core.MouseLeft)
			return Selectable[i], true
		}
	}
	if f.Pressed(core.KeyEnter) {
		f.Consume(core.KeyEnter)
		return Selectable[s.menuCursor], true
	}
	return None, false
}

func (s *Selector) drawMenu(dst core.Canvas) {
	win := dst.Bounds()
	dst.Clear(menuBg)

	title := "MULTISIM"
	const titleScale = 6
	dst.Text(title, (win.W-core.TextWidth(title, titleScale))/2, 60, titleScale, menuAccent)
	if s.splash != "" {
		const splashScale = 1.5
		dst.Text(s.splash, (win.W-core.TextWidth(s.splash, splashScale))/2, 60+core.GlyphH*titleScale+16, splashScale, color.RGBA{R: 0xff, G: 0xe0, B: 0x4d, A: 0xff})
	}

	for i, sel := range Selectable {
		x, y, w, h := menuItemRect(win, i)
		bg := menuItem
		if i == s.menuCursor {
			bg = menuActive
		}
		dst.FillRect(float32(x), float32(y), float32(w), float32(h), bg)
		label := fmt.Sprintf("%d  %s", i+1, sel.Label())
		const scale = 2
		dst.Text(label, x+16, y+(h-core.GlyphH*scale)/2, scale, menuText)
	}

	hint := "Up/Down + Enter, 1-4 or click to start  |  Esc returns here"
	if !s.terminal {
		hint += "  |  F11 fullscreen"
	}
	dst.Text(hint, (win.W-core.TextWidth(hint, 1))/2, win.H-core.GlyphH-12, 1, menuText)
}
