package life

import (
	"fmt"
	"time"

	"multisim/internal/core"
)

const tickAdjust = 10 * time.Millisecond

// Sim hosts an Engine: it maps input onto engine operations and draws the board.
type Sim struct {
	engine *Engine
	theme  Theme
	seed   int64

	hoverX, hoverY int
	hovering       bool
	painting       bool
	paint          core.Cell
	lastX, lastY   int
}

// New returns a Game of Life sized for the given window.
func New(window core.Size, cfg Config) *Sim {
	s := &Sim{engine: NewEngine(cfg), seed: cfg.Seed}
	s.engine.Activate(window.W, window.H)
	return s
}

// Engine exposes the underlying engine.
func (s *Sim) Engine() *Engine { return s.engine }

// Name returns the display name.
func (s *Sim) Name() string { return "Game of Life" }

// SetPaused follows the host overlay: any overlay other than running pauses
// the engine and enables editing.
func (s *Sim) SetPaused(p bool) {
	s.engine.SetPaused(p)
	s.painting = false
}

// OnResize starts the resize debounce.
func (s *Sim) OnResize(f *core.Frame) {
	s.engine.RequestResize(f.Global.Window.W, f.Global.Window.H, f.Now)
}

// Settle applies a due resize and tracks the hovered cell.
func (s *Sim) Settle(f *core.Frame) {
	s.engine.Poll(f.Now)
	s.trackHover(f)
}

// Update handles board commands and advances the engine.
func (s *Sim) Update(f *core.Frame) {
	s.handleKeys(f)
	s.engine.Update(f.Delta)
}

// Edit handles board commands, manual stepping and mouse editing while paused.
func (s *Sim) Edit(f *core.Frame) {
	s.handleKeys(f)
	if f.Pressed(core.KeyN) {
		s.engine.StepOnce()
	}
	s.handleMouse(f)
}

func (s *Sim) handleKeys(f *core.Frame) {
	switch {
	case f.Pressed(core.KeyC):
		s.engine.Clear()
	case f.Pressed(core.KeyA):
		s.engine.Fill()
	case f.Pressed(core.KeyI):
		s.engine.Invert()
	case f.Pressed(core.KeyR):
		s.seed++
		s.engine.Randomize(s.seed)
	case f.Pressed(core.KeyT):
		s.theme = s.theme.Next()
	case f.Pressed(core.KeyEqual):
		s.engine.SetTick(s.engine.Tick() + tickAdjust)
	case f.Pressed(core.KeyMinus):
		s.engine.SetTick(s.engine.Tick() - tickAdjust)
	}
}

func (s *Sim) trackHover(f *core.Frame) {
	scale := s.engine.Scale()
	x := f.Global.MouseX / scale
	y := f.Global.MouseY / scale
	s.hovering = f.Global.MouseX >= 0 && f.Global.MouseY >= 0 && s.engine.Grid().In(x, y)
	s.hoverX, s.hoverY = x, y
}

// handleMouse toggles the clicked cell and paints the resulting state while
// the button stays down. The right button erases.
func (s *Sim) handleMouse(f *core.Frame) {
	g := f.Global
	if !s.hovering {
		s.painting = g.Down(core.MouseLeft) && s.painting
		return
	}
	x, y := s.hoverX, s.hoverY
	switch {
	case g.Clicked(core.MouseLeft):
		s.engine.ToggleCell(x, y)
		s.paint = s.engine.Grid().At(x, y)
		s.painting = true
		s.lastX, s.lastY = x, y
	case g.Down(core.MouseLeft) && s.painting:
		if x != s.lastX || y != s.lastY {
			s.engine.SetCell(x, y, s.paint)
			s.lastX, s.lastY = x, y
		}
	case g.Down(core.MouseRight):
		s.engine.SetCell(x, y, core.Dead)
		s.painting = false
	default:
		s.painting = false
	}
}

// Draw renders the board and, while paused, the hovered cell outline.
func (s *Sim) Draw(dst core.Canvas, f *core.Frame) {
	st := s.theme.Style()
	dst.Clear(st.Bg)
	g := s.engine.Grid()
	scale := s.engine.Scale()
	if _, tinted := s.theme.Tint(0, 0); tinted {
		s.drawTinted(dst, g, scale)
	} else {
		dst.Cells(g.Cells(), g.W, g.H, scale, st.Fg, st.Bg)
	}
	if s.engine.Paused() && s.hovering {
		fs := float32(scale)
		dst.StrokeRect(float32(s.hoverX)*fs, float32(s.hoverY)*fs, fs, fs, 2, st.Accent)
	}
}

func (s *Sim) drawTinted(dst core.Canvas, g *core.Grid, scale int) {
	fs := float32(scale)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != core.Alive {
				continue
			}
			c, _ := s.theme.Tint(x, y)
			dst.FillRect(float32(x)*fs, float32(y)*fs, fs, fs, c)
		}
	}
}

// Parameters reports the board state for the status bar.
func (s *Sim) Parameters() core.ParameterSnapshot {
	e := s.engine
	mode := "RUNNING"
	if e.Paused() {
		mode = "DESIGN"
	}
	size := e.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "life",
		Params: []core.Parameter{
			{Key: "mode", Label: "Mode", Type: core.ParamTypeText, Value: mode},
			{Key: "generation", Label: "Gen", Type: core.ParamTypeInt, Value: fmt.Sprint(e.Generation())},
			{Key: "population", Label: "Pop", Type: core.ParamTypeInt, Value: fmt.Sprint(e.Grid().Population())},
			{Key: "tick", Label: "Tick", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.2fs", e.Tick().Seconds())},
			{Key: "grid", Label: "Grid", Type: core.ParamTypeText, Value: fmt.Sprintf("%dx%d", size.W, size.H)},
			{Key: "edge", Label: "Edge", Type: core.ParamTypeText, Value: e.Edge().String()},
			{Key: "theme", Label: "Theme", Type: core.ParamTypeText, Value: s.theme.String()},
		},
	}}}
}

// Help lists the board controls.
func (s *Sim) Help() []string {
	return []string{
		"Left mouse button  - toggle cell, drag to paint (paused)",
		"Right mouse button - make cell dead (paused)",
		"Space              - pause/unpause game",
		"N                  - step one generation (paused)",
		"H                  - help menu",
		"C                  - clear the board",
		"A                  - fill the board with live cells",
		"I                  - invert cells",
		"R                  - generate a random pattern",
		fmt.Sprintf("T                  - switch themes (currently: %s)", s.theme),
		fmt.Sprintf("+                  - add %.2fs to update time (%.2fs)", tickAdjust.Seconds(), s.engine.Tick().Seconds()),
		fmt.Sprintf("-                  - subtract %.2fs from update time (%.2fs)", tickAdjust.Seconds(), s.engine.Tick().Seconds()),
	}
}

func init() {
	core.Register("life", func(window core.Size, cfg map[string]string) core.Simulation {
		return New(window, FromMap(cfg))
	})
}
