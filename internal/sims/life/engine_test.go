package life

import (
	"slices"
	"testing"
	"time"

	"multisim/internal/core"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Scale = 1
	cfg.StatusBar = 0
	cfg.UpdateCap = 0
	return cfg
}

func newTestEngine(w, h int) *Engine {
	e := NewEngine(testConfig())
	e.Activate(w, h)
	return e
}

func snapshot(e *Engine) []core.Cell {
	return append([]core.Cell(nil), e.Grid().Cells()...)
}

func set(e *Engine, cells ...[2]int) {
	for _, c := range cells {
		e.Grid().Set(c[0], c[1], core.Alive)
	}
}

func TestNextStateExhaustive(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := core.Dead
		if n == 2 || n == 3 {
			wantAlive = core.Alive
		}
		if got := NextState(core.Alive, n); got != wantAlive {
			t.Fatalf("NextState(Alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantDead := core.Dead
		if n == 3 {
			wantDead = core.Alive
		}
		if got := NextState(core.Dead, n); got != wantDead {
			t.Fatalf("NextState(Dead, %d) = %v, want %v", n, got, wantDead)
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	e := newTestEngine(6, 6)
	set(e, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	want := snapshot(e)
	for i := 0; i < 25; i++ {
		e.StepOnce()
		if !slices.Equal(want, e.Grid().Cells()) {
			t.Fatalf("block changed after %d generations", i+1)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := newTestEngine(5, 5)
	set(e, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	vertical := snapshot(e)

	e.StepOnce()
	horizontal := snapshot(e)
	expects := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := e.Grid().At(x, y) == core.Alive
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[[2]int{x, y}])
			}
		}
	}

	for gen := 2; gen <= 12; gen++ {
		e.StepOnce()
		want := vertical
		if gen%2 == 1 {
			want = horizontal
		}
		if !slices.Equal(want, e.Grid().Cells()) {
			t.Fatalf("blinker phase wrong at generation %d", gen)
		}
	}
}

func TestBlinkerAtEdgeDependsOnPolicy(t *testing.T) {
	bounded := newTestEngine(5, 5)
	set(bounded, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})
	bounded.StepOnce()
	if bounded.Grid().Population() != 2 {
		t.Fatalf("bounded edge blinker population = %d, want 2", bounded.Grid().Population())
	}

	cfg := testConfig()
	cfg.Edge = core.Toroidal
	wrapped := NewEngine(cfg)
	wrapped.Activate(5, 5)
	set(wrapped, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})
	wrapped.StepOnce()
	for _, x := range []int{4, 0, 1} {
		if wrapped.Grid().At(x, 1) != core.Alive {
			t.Fatalf("toroidal blinker missing cell (%d,1)", x)
		}
	}
	if wrapped.Grid().Population() != 3 {
		t.Fatalf("toroidal blinker population = %d, want 3", wrapped.Grid().Population())
	}
}

func TestUpdateAdvancesFixedGenerations(t *testing.T) {
	e := newTestEngine(8, 8)
	if n := e.Update(5 * e.Tick()); n != 5 {
		t.Fatalf("Update(5 ticks) advanced %d generations, want 5", n)
	}
	if e.Generation() != 5 {
		t.Fatalf("generation = %d, want 5", e.Generation())
	}
}

func TestUpdateCapBoundsCatchUp(t *testing.T) {
	cfg := testConfig()
	cfg.UpdateCap = 2 * cfg.Tick
	e := NewEngine(cfg)
	e.Activate(8, 8)

	if n := e.Update(5 * cfg.Tick); n != 2 {
		t.Fatalf("capped Update advanced %d generations, want 2", n)
	}
	if n := e.Update(5 * cfg.Tick); n != 2 {
		t.Fatalf("second capped Update advanced %d generations, want 2", n)
	}
	if e.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", e.Generation())
	}
}

func TestPausedUpdateNeverChangesGrid(t *testing.T) {
	e := newTestEngine(5, 5)
	set(e, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	e.SetPaused(true)
	want := snapshot(e)
	for i := 0; i < 10; i++ {
		if n := e.Update(time.Second); n != 0 {
			t.Fatalf("paused Update advanced %d generations", n)
		}
	}
	if !slices.Equal(want, e.Grid().Cells()) {
		t.Fatal("paused Update modified the grid")
	}
	for i := uint64(1); i <= 3; i++ {
		e.StepOnce()
		if e.Generation() != i {
			t.Fatalf("StepOnce generation = %d, want %d", e.Generation(), i)
		}
	}
}

func TestToggleCellOnlyWhilePaused(t *testing.T) {
	e := newTestEngine(4, 4)
	e.ToggleCell(1, 1)
	if e.Grid().At(1, 1) != core.Dead {
		t.Fatal("ToggleCell must be ignored while running")
	}
	e.SetPaused(true)
	e.ToggleCell(1, 1)
	if e.Grid().At(1, 1) != core.Alive {
		t.Fatal("ToggleCell did not set the cell")
	}
	e.ToggleCell(1, 1)
	if e.Grid().At(1, 1) != core.Dead {
		t.Fatal("ToggleCell did not clear the cell")
	}
	e.ToggleCell(-1, 0)
	e.ToggleCell(4, 4)
	if e.Grid().Population() != 0 {
		t.Fatal("out-of-range ToggleCell modified the grid")
	}
}

func TestResizeShrinkPreservesTopLeft(t *testing.T) {
	e := newTestEngine(10, 8)
	e.Randomize(7)
	before := e.Grid().Resized(10, 8)

	e.ResizeGrid(6, 5)
	if got := e.Size(); got != (core.Size{W: 6, H: 5}) {
		t.Fatalf("size after shrink = %+v", got)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			if e.Grid().At(x, y) != before.At(x, y) {
				t.Fatalf("cell (%d,%d) not preserved", x, y)
			}
		}
	}
}

func TestResizeGrowPreservesOriginal(t *testing.T) {
	e := newTestEngine(4, 3)
	e.Fill()
	e.ResizeGrid(7, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 7; x++ {
			want := core.Dead
			if x < 4 && y < 3 {
				want = core.Alive
			}
			if got := e.Grid().At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	e.StepOnce()
}

func TestActivateSizesFromWindow(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.Activate(800, 648)
	if got := e.Size(); got != (core.Size{W: 50, H: 38}) {
		t.Fatalf("grid size = %+v, want 50x38", got)
	}
	e.Activate(5, 5)
	if got := e.Size(); got != (core.Size{W: 1, H: 1}) {
		t.Fatalf("tiny window grid = %+v, want 1x1", got)
	}
}

func TestActivateDiscardsState(t *testing.T) {
	e := newTestEngine(6, 6)
	e.Fill()
	e.StepOnce()
	e.SetPaused(true)
	e.Activate(6, 6)
	if e.Grid().Population() != 0 || e.Generation() != 0 || e.Paused() {
		t.Fatal("Activate must yield a fresh, running, empty grid")
	}
}

func TestResizeDebounce(t *testing.T) {
	cfg := testConfig()
	cfg.ResizeLimit = 200 * time.Millisecond
	cfg.ResizeMaxWait = time.Second
	e := NewEngine(cfg)
	e.Activate(10, 10)

	ms := time.Millisecond
	e.RequestResize(20, 20, 0)
	if e.Poll(100 * ms) {
		t.Fatal("resize applied before the quiet window elapsed")
	}
	e.RequestResize(30, 30, 150*ms)
	if e.Poll(300 * ms) {
		t.Fatal("a newer request must restart the quiet window")
	}
	if !e.Poll(350 * ms) {
		t.Fatal("resize not applied after the quiet window")
	}
	if got := e.Size(); got != (core.Size{W: 30, H: 30}) {
		t.Fatalf("size after debounce = %+v, want 30x30", got)
	}
	if e.ResizePending() {
		t.Fatal("resize still pending after Poll applied it")
	}
}

func TestResizeDebounceMaxWait(t *testing.T) {
	cfg := testConfig()
	cfg.ResizeLimit = 200 * time.Millisecond
	cfg.ResizeMaxWait = 500 * time.Millisecond
	e := NewEngine(cfg)
	e.Activate(10, 10)

	for now := time.Duration(0); now < 500*time.Millisecond; now += 100 * time.Millisecond {
		e.RequestResize(12, 12, now)
		if e.Poll(now) {
			t.Fatalf("resize applied early at %s", now)
		}
	}
	if !e.Poll(500 * time.Millisecond) {
		t.Fatal("continuous resizing must still rebuild after the max wait")
	}
}

func TestSetTickClamps(t *testing.T) {
	e := newTestEngine(2, 2)
	e.SetTick(0)
	if e.Tick() != minTick {
		t.Fatalf("tick = %s, want %s", e.Tick(), minTick)
	}
	e.SetTick(time.Hour)
	if e.Tick() != maxTick {
		t.Fatalf("tick = %s, want %s", e.Tick(), maxTick)
	}
}

func TestInvertAndRandomize(t *testing.T) {
	e := newTestEngine(8, 8)
	e.Invert()
	if e.Grid().Population() != 64 {
		t.Fatalf("inverting an empty grid gave population %d", e.Grid().Population())
	}
	e.Randomize(3)
	first := snapshot(e)
	e.Randomize(3)
	if !slices.Equal(first, e.Grid().Cells()) {
		t.Fatal("Randomize is not deterministic for a seed")
	}
}
