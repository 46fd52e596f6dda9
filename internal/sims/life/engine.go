package life

import (
	"time"

	"multisim/internal/core"
)

const (
	minTick = time.Millisecond
	maxTick = 2 * time.Second
)

// Engine runs Conway's Game of Life at a fixed tick rate, independent of the
// frame rate that drives it.
type Engine struct {
	cfg   Config
	cur   *core.Grid
	nxt   *core.Grid
	clock *core.FixedStep

	paused     bool
	generation uint64
	resize     pendingResize
}

// pendingResize tracks a debounced window resize.
type pendingResize struct {
	active bool
	w, h   int
	first  time.Duration
	last   time.Duration
}

// NewEngine returns an engine with a 1x1 grid. Call Activate before use.
func NewEngine(cfg Config) *Engine {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	e := &Engine{
		cfg:   cfg,
		clock: core.NewFixedStep(cfg.Tick, cfg.UpdateCap),
	}
	e.cur = core.NewGrid(1, 1)
	e.nxt = core.NewGrid(1, 1)
	return e
}

// GridSize converts window pixels into grid dimensions.
func (e *Engine) GridSize(w, h int) core.Size {
	gw := w / e.cfg.Scale
	gh := (h - e.cfg.StatusBar) / e.cfg.Scale
	return core.Size{W: max(gw, 1), H: max(gh, 1)}
}

// Activate allocates a fresh dead grid sized for a w*h pixel window, resets
// the accumulator and unpauses.
func (e *Engine) Activate(w, h int) {
	size := e.GridSize(w, h)
	e.cur = core.NewGrid(size.W, size.H)
	e.nxt = core.NewGrid(size.W, size.H)
	e.clock.Reset()
	e.paused = false
	e.generation = 0
	e.resize = pendingResize{}
}

// Grid returns the current generation. Callers must not keep it across
// Update, StepOnce or Resize.
func (e *Engine) Grid() *core.Grid { return e.cur }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Scale returns the pixel size of a cell.
func (e *Engine) Scale() int { return e.cfg.Scale }

// Edge returns the neighbour policy in use.
func (e *Engine) Edge() core.EdgePolicy { return e.cfg.Edge }

// Generation returns the number of generations computed since activation.
func (e *Engine) Generation() uint64 { return e.generation }

// Paused reports whether Update is currently ignored.
func (e *Engine) Paused() bool { return e.paused }

// SetPaused stops or resumes time advancement.
func (e *Engine) SetPaused(p bool) { e.paused = p }

// Tick returns the simulated time per generation.
func (e *Engine) Tick() time.Duration { return e.clock.Step() }

// SetTick changes the time per generation, clamped to a sane range.
func (e *Engine) SetTick(d time.Duration) {
	e.clock.SetStep(min(max(d, minTick), maxTick))
}

// UpdateCap returns the maximum delta consumed per Update.
func (e *Engine) UpdateCap() time.Duration { return e.clock.Limit() }

// ToggleCell flips a cell. It only applies while paused and ignores
// coordinates outside the grid.
func (e *Engine) ToggleCell(x, y int) {
	if !e.paused || !e.cur.In(x, y) {
		return
	}
	if e.cur.At(x, y) == core.Alive {
		e.cur.Set(x, y, core.Dead)
		return
	}
	e.cur.Set(x, y, core.Alive)
}

// SetCell writes a cell while paused.
func (e *Engine) SetCell(x, y int, c core.Cell) {
	if !e.paused {
		return
	}
	e.cur.Set(x, y, c)
}

// Update advances as many generations as the accumulated time allows and
// returns how many were computed.
func (e *Engine) Update(dt time.Duration) int {
	if e.paused {
		return 0
	}
	n := e.clock.Advance(dt)
	for i := 0; i < n; i++ {
		e.step()
	}
	return n
}

// StepOnce advances exactly one generation regardless of pause state.
func (e *Engine) StepOnce() { e.step() }

// step computes the next generation from the current one into the spare
// buffer, then swaps.
func (e *Engine) step() {
	w, h := e.cur.W, e.cur.H
	cur := e.cur.Cells()
	nxt := e.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = NextState(cur[idx], e.cur.LiveNeighbors(x, y, e.cfg.Edge))
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// RequestResize records a window resize observed at now. The grid is rebuilt
// by Poll once no further request has arrived for ResizeLimit, or once
// ResizeMaxWait has passed since the first pending request.
func (e *Engine) RequestResize(w, h int, now time.Duration) {
	if !e.resize.active {
		e.resize.active = true
		e.resize.first = now
	}
	e.resize.w, e.resize.h = w, h
	e.resize.last = now
}

// ResizePending reports whether a debounced resize is waiting.
func (e *Engine) ResizePending() bool { return e.resize.active }

// Poll applies a pending resize whose debounce window has elapsed. It
// reports whether the grid was rebuilt.
func (e *Engine) Poll(now time.Duration) bool {
	if !e.resize.active {
		return false
	}
	quiet := now-e.resize.last >= e.cfg.ResizeLimit
	overdue := now-e.resize.first >= e.cfg.ResizeMaxWait
	if !quiet && !overdue {
		return false
	}
	e.resize.active = false
	e.Resize(e.resize.w, e.resize.h)
	return true
}

// Resize rebuilds the grid for a w*h pixel window immediately.
func (e *Engine) Resize(w, h int) {
	size := e.GridSize(w, h)
	e.ResizeGrid(size.W, size.H)
}

// ResizeGrid rebuilds the grid with the given cell dimensions, keeping the
// overlapping top-left region.
func (e *Engine) ResizeGrid(w, h int) {
	e.cur = e.cur.Resized(w, h)
	e.nxt = core.NewGrid(e.cur.W, e.cur.H)
}

// Clear kills every cell.
func (e *Engine) Clear() { e.cur.Fill(core.Dead) }

// Fill makes every cell alive.
func (e *Engine) Fill() { e.cur.Fill(core.Alive) }

// Invert flips every cell.
func (e *Engine) Invert() {
	cells := e.cur.Cells()
	for i, c := range cells {
		cells[i] = core.Alive - c
	}
}

// Randomize fills the grid from the given seed at the configured density.
func (e *Engine) Randomize(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, e.cur.Cells(), e.cfg.Density)
}
