package host

import (
	"fmt"
	"image/color"
	"strings"

	"multisim/internal/core"
)

var (
	statusBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	statusText   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	statusAccent = color.RGBA{R: 0x00, G: 0xe4, B: 0x30, A: 0xff}
	helpShade    = color.RGBA{A: 0xe0}
)

var windowHelp = []string{
	"F3    - show FPS",
	"F11   - toggle fullscreen",
}

// Draw renders the menu or the active simulation with its overlays.
func (s *Selector) Draw(dst core.Canvas, f *core.Frame) {
	if s.sim == nil {
		s.drawMenu(dst)
		return
	}
	s.sim.Draw(dst, f)
	if pp, ok := s.sim.(core.ParameterProvider); ok {
		s.drawStatusBar(dst, pp.Parameters())
	}
	switch s.state {
	case Help:
		s.drawHelp(dst)
	case Paused:
		if _, ok := s.sim.(core.Editor); !ok {
			s.drawBanner(dst, "PAUSED")
		}
	}
}

// drawStatusBar lays out "Label: value" pairs along the bottom of the window.
func (s *Selector) drawStatusBar(dst core.Canvas, snap core.ParameterSnapshot) {
	win := dst.Bounds()
	top := win.H - core.StatusBarHeight
	dst.FillRect(0, float32(top), float32(win.W), core.StatusBarHeight, statusBg)

	var parts []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	y := top + (core.StatusBarHeight-core.GlyphH)/2
	state := "[" + strings.ToUpper(s.state.String()) + "]"
	dst.Text(state, 8, y, 1, statusAccent)
	dst.Text(strings.Join(parts, "   "), 16+core.TextWidth(state, 1), y, 1, statusText)
}

func (s *Selector) drawHelp(dst core.Canvas) {
	win := dst.Bounds()
	dst.FillRect(0, 0, float32(win.W), float32(win.H), helpShade)

	const (
		headScale = 3
		lineScale = 1.5
	)
	lineH := core.GlyphH*3/2 + 6
	y := 24
	dst.Text("CONTROLS", 16, y, headScale, statusAccent)
	y += core.GlyphH*headScale + 16

	lines := []string{"Space - pause/unpause", "H     - help menu"}
	if h, ok := s.sim.(core.Helper); ok {
		lines = h.Help()
	}
	if !s.terminal {
		lines = append(lines, windowHelp...)
	}
	for _, line := range lines {
		dst.Text(line, 16, y, lineScale, statusText)
		y += lineH
	}

	dst.Text("Press Enter or H to start the game", 16, win.H-2*lineH-8, lineScale, statusText)
	dst.Text("Press Escape to exit to the menu", 16, win.H-lineH-8, lineScale, statusText)
}

func (s *Selector) drawBanner(dst core.Canvas, msg string) {
	win := dst.Bounds()
	const scale = 4
	w := core.TextWidth(msg, scale)
	x := (win.W - w) / 2
	y := (win.H-core.StatusBarHeight)/2 - core.GlyphH*scale/2
	dst.FillRect(float32(x-12), float32(y-12), float32(w+24), float32(core.GlyphH*scale+24), helpShade)
	dst.Text(msg, x, y, scale, statusAccent)
}
