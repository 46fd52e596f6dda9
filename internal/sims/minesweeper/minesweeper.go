package minesweeper

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"multisim/internal/core"
)

const tileSize = 32

var numberColors = [9]color.RGBA{
	{},
	{R: 0x3c, G: 0x6e, B: 0xff, A: 0xff},
	{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff},
	{R: 0xe0, G: 0x3c, B: 0x3c, A: 0xff},
	{R: 0x1f, G: 0x2a, B: 0x8c, A: 0xff},
	{R: 0x8c, G: 0x1f, B: 0x1f, A: 0xff},
	{R: 0x1f, G: 0x8c, B: 0x8c, A: 0xff},
	{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	{R: 0x70, G: 0x70, B: 0x70, A: 0xff},
}

var (
	hiddenColor   = color.RGBA{R: 0x9a, G: 0xa4, B: 0xb1, A: 0xff}
	revealedColor = color.RGBA{R: 0xdc, G: 0xdf, B: 0xe4, A: 0xff}
	gridColor     = color.RGBA{R: 0x55, G: 0x5d, B: 0x68, A: 0xff}
	flagColor     = color.RGBA{R: 0xe0, G: 0x3c, B: 0x3c, A: 0xff}
	mineColor     = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// Config holds the board dimensions and mine count.
type Config struct {
	Width, Height int
	Mines         int
	Seed          int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 16, Height: 12, Mines: 30, Seed: 5}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["mines"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Mines = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Game wraps a Board with mouse input and a clock.
type Game struct {
	cfg    Config
	rng    *core.RNG
	board  *Board
	window core.Size

	started bool
	elapsed time.Duration
}

// New returns a fresh game centred in the window.
func New(window core.Size, cfg Config) *Game {
	g := &Game{cfg: cfg, rng: core.NewRNG(cfg.Seed), window: window}
	g.restart()
	return g
}

func (g *Game) restart() {
	g.board = NewBoard(g.cfg.Width, g.cfg.Height, g.cfg.Mines, g.rng)
	g.started = false
	g.elapsed = 0
}

// Name returns the display name.
func (g *Game) Name() string { return "Minesweeper" }

// Board exposes the current board.
func (g *Game) Board() *Board { return g.board }

func (g *Game) over() bool { return g.board.Lost() || g.board.Won() }

// origin returns the pixel position of the board's top-left corner.
func (g *Game) origin() (int, int) {
	fieldH := g.window.H - core.StatusBarHeight
	x := (g.window.W - g.board.W*tileSize) / 2
	y := (fieldH - g.board.H*tileSize) / 2
	return max(x, 0), max(y, 0)
}

// TileAt maps window pixels to board coordinates.
func (g *Game) TileAt(px, py int) (int, int, bool) {
	ox, oy := g.origin()
	if px < ox || py < oy {
		return 0, 0, false
	}
	x, y := (px-ox)/tileSize, (py-oy)/tileSize
	return x, y, g.board.In(x, y)
}

// OnResize re-centres the board.
func (g *Game) OnResize(f *core.Frame) { g.window = f.Global.Window }

// Update handles clicks and the game clock.
func (g *Game) Update(f *core.Frame) {
	if f.Pressed(core.KeyR) {
		g.restart()
		return
	}
	if g.started && !g.over() {
		g.elapsed += f.Delta
	}
	if g.over() {
		return
	}
	x, y, ok := g.TileAt(f.Global.MouseX, f.Global.MouseY)
	if !ok {
		return
	}
	switch {
	case f.Global.Clicked(core.MouseLeft):
		if !g.started {
			g.board.RelocateMine(x, y)
			g.started = true
		}
		if !g.board.Open(x, y) {
			g.board.RevealMines()
		}
	case f.Global.Clicked(core.MouseRight):
		g.board.ToggleFlag(x, y)
	}
}

// Draw renders the board.
func (g *Game) Draw(dst core.Canvas, f *core.Frame) {
	dst.Clear(color.RGBA{R: 0x1b, G: 0x1f, B: 0x26, A: 0xff})
	ox, oy := g.origin()
	b := g.board
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			px := float32(ox + x*tileSize)
			py := float32(oy + y*tileSize)
			t := b.Tile(x, y)
			bg := hiddenColor
			if t.Revealed {
				bg = revealedColor
			}
			dst.FillRect(px, py, tileSize, tileSize, bg)
			dst.StrokeRect(px, py, tileSize, tileSize, 1, gridColor)
			switch {
			case t.Revealed && t.Mine:
				dst.FillCircle(px+tileSize/2, py+tileSize/2, tileSize/4, mineColor)
			case t.Revealed && t.Neighbors > 0:
				s := strconv.Itoa(t.Neighbors)
				dst.Text(s, int(px)+(tileSize-core.TextWidth(s, 2))/2, int(py)+(tileSize-core.GlyphH*2)/2, 2, numberColors[t.Neighbors])
			case t.Flagged:
				dst.FillRect(px+tileSize/3, py+tileSize/4, tileSize/3, tileSize/2, flagColor)
			}
		}
	}
	switch {
	case b.Won():
		g.banner(dst, "YOU WIN - press R")
	case b.Lost():
		g.banner(dst, "BOOM - press R")
	}
}

func (g *Game) banner(dst core.Canvas, msg string) {
	const scale = 3
	w := core.TextWidth(msg, scale)
	x := (g.window.W - w) / 2
	y := (g.window.H-core.StatusBarHeight)/2 - core.GlyphH*scale/2
	dst.FillRect(float32(x-10), float32(y-10), float32(w+20), float32(core.GlyphH*scale+20), color.RGBA{A: 0xd0})
	dst.Text(msg, x, y, scale, color.White)
}

// Parameters reports mines, flags and game state.
func (g *Game) Parameters() core.ParameterSnapshot {
	state := "PLAYING"
	switch {
	case g.board.Won():
		state = "WON"
	case g.board.Lost():
		state = "LOST"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "minesweeper",
		Params: []core.Parameter{
			{Key: "state", Label: "State", Type: core.ParamTypeText, Value: state},
			{Key: "mines", Label: "Mines", Type: core.ParamTypeInt, Value: strconv.Itoa(g.board.Mines)},
			{Key: "flags", Label: "Flags", Type: core.ParamTypeInt, Value: strconv.Itoa(g.board.Flags())},
			{Key: "time", Label: "Time", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.0fs", g.elapsed.Seconds())},
		},
	}}}
}

// Help lists the game controls.
func (g *Game) Help() []string {
	return []string{
		"Left mouse button  - open tile",
		"Right mouse button - flag tile",
		"R                  - new game",
		"Space              - pause/unpause",
		"H                  - help menu",
	}
}

func init() {
	core.Register("minesweeper", func(window core.Size, cfg map[string]string) core.Simulation {
		return New(window, FromMap(cfg))
	})
}
