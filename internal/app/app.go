//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"multisim/internal/core"
	"multisim/internal/host"
	"multisim/internal/render"
)

var keyMap = map[ebiten.Key]core.Key{
	ebiten.KeyEscape:         core.KeyEscape,
	ebiten.KeyEnter:          core.KeyEnter,
	ebiten.KeyNumpadEnter:    core.KeyEnter,
	ebiten.KeySpace:          core.KeySpace,
	ebiten.KeyArrowUp:        core.KeyUp,
	ebiten.KeyArrowDown:      core.KeyDown,
	ebiten.KeyArrowLeft:      core.KeyLeft,
	ebiten.KeyArrowRight:     core.KeyRight,
	ebiten.KeyA:              core.KeyA,
	ebiten.KeyC:              core.KeyC,
	ebiten.KeyF:              core.KeyF,
	ebiten.KeyH:              core.KeyH,
	ebiten.KeyI:              core.KeyI,
	ebiten.KeyN:              core.KeyN,
	ebiten.KeyR:              core.KeyR,
	ebiten.KeyS:              core.KeyS,
	ebiten.KeyT:              core.KeyT,
	ebiten.KeyW:              core.KeyW,
	ebiten.KeyDigit1:         core.KeyDigit1,
	ebiten.KeyDigit2:         core.KeyDigit2,
	ebiten.KeyDigit3:         core.KeyDigit3,
	ebiten.KeyDigit4:         core.KeyDigit4,
	ebiten.KeyEqual:          core.KeyEqual,
	ebiten.KeyNumpadAdd:      core.KeyEqual,
	ebiten.KeyMinus:          core.KeyMinus,
	ebiten.KeyNumpadSubtract: core.KeyMinus,
	ebiten.KeyF3:             core.KeyF3,
	ebiten.KeyF11:            core.KeyF11,
}

var buttonMap = map[ebiten.MouseButton]core.MouseButton{
	ebiten.MouseButtonLeft:   core.MouseLeft,
	ebiten.MouseButtonRight:  core.MouseRight,
	ebiten.MouseButtonMiddle: core.MouseMiddle,
}

// Game adapts the simulation host to the ebiten.Game interface.
type Game struct {
	host   *host.Selector
	canvas *render.Canvas
	logger *log.Logger

	frame  core.Frame
	start  time.Time
	window core.Size

	title      string
	fullscreen bool

	// drawErr holds a panic recovered in Draw until the next Update.
	drawErr error
}

// New constructs a Game for the provided host. window is the initial logical
// size used until ebiten reports a layout.
func New(sel *host.Selector, window core.Size, logger *log.Logger) *Game {
	return &Game{
		host:   sel,
		canvas: render.NewCanvas(),
		logger: logger,
		start:  time.Now(),
		window: window,
	}
}

// Update reads this frame's input and runs one host frame. A panic inside the
// frame is converted into a *core.FatalError.
func (g *Game) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.Fatalf("app.Game.Update", "panic: %v", r)
		}
	}()

	if g.drawErr != nil {
		return g.drawErr
	}
	g.readInput()
	if err := g.host.Update(&g.frame); err != nil {
		return err
	}

	if t := g.host.Title(); t != g.title {
		g.title = t
		ebiten.SetWindowTitle(t)
	}
	if fs := g.host.Fullscreen(); fs != g.fullscreen {
		g.fullscreen = fs
		g.logger.Debug("fullscreen", "on", fs)
		ebiten.SetFullscreen(fs)
	}
	return nil
}

func (g *Game) readInput() {
	f := &g.frame
	f.Begin(time.Since(g.start))
	for ek, k := range keyMap {
		if inpututil.IsKeyJustPressed(ek) {
			f.Press(k)
		} else if ebiten.IsKeyPressed(ek) {
			f.Hold(k)
		}
	}

	gs := &f.Global
	gs.Window = g.window
	x, y := ebiten.CursorPosition()
	gs.MouseDX, gs.MouseDY = x-gs.MouseX, y-gs.MouseY
	gs.MouseX, gs.MouseY = x, y
	for eb, b := range buttonMap {
		gs.MouseDown[b] = ebiten.IsMouseButtonPressed(eb)
		gs.MousePressed[b] = inpututil.IsMouseButtonJustPressed(eb)
	}
	gs.ScrollX, gs.ScrollY = ebiten.Wheel()
	gs.FPS = ebiten.ActualFPS()
}

// Draw renders the current host frame. A panic is kept as a
// *core.FatalError and returned by the next Update.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.drawErr != nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			g.drawErr = core.Fatalf("app.Game.Draw", "panic: %v", r)
		}
	}()
	g.canvas.Target(screen)
	g.host.Draw(g.canvas, &g.frame)
	if g.host.ShowFPS() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
	}
}

// Layout keeps the logical screen equal to the window so simulations see
// resizes in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.window = core.Size{W: outsideWidth, H: outsideHeight}
	}
	return g.window.W, g.window.H
}
