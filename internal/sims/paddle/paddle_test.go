package paddle

import (
	"testing"
	"time"

	"multisim/internal/core"
)

func frame(delta time.Duration, keys ...core.Key) *core.Frame {
	f := &core.Frame{Delta: delta}
	f.Global.Window = core.Size{W: 800, H: 648}
	for _, k := range keys {
		f.Hold(k)
	}
	return f
}

func TestPaddlesClampToField(t *testing.T) {
	g := New(core.Size{W: 800, H: 648}, DefaultConfig())
	for i := 0; i < 200; i++ {
		g.Update(frame(16*time.Millisecond, core.KeyW, core.KeyDown))
		g.serve(1)
	}
	if g.left.y != 0 {
		t.Fatalf("left paddle y = %v, want 0", g.left.y)
	}
	if want := float64(648 - core.StatusBarHeight - paddleH); g.right.y != want {
		t.Fatalf("right paddle y = %v, want %v", g.right.y, want)
	}
}

func TestMissScoresForOpponent(t *testing.T) {
	g := New(core.Size{W: 800, H: 648}, DefaultConfig())
	g.left.y = 0
	g.ball = ball{x: 30, y: 500, vx: -300, vy: 0}
	for i := 0; i < 60; i++ {
		g.Update(frame(16 * time.Millisecond))
	}
	if l, r := g.Scores(); l != 0 || r != 1 {
		t.Fatalf("scores = %d:%d, want 0:1", l, r)
	}
}

func TestPaddleReturnsBall(t *testing.T) {
	g := New(core.Size{W: 800, H: 648}, DefaultConfig())
	g.right.y = 260
	g.ball = ball{x: 740, y: 300, vx: 300, vy: 0}
	for i := 0; i < 10; i++ {
		g.Update(frame(16 * time.Millisecond))
	}
	if g.ball.vx >= 0 {
		t.Fatalf("ball not returned, vx = %v", g.ball.vx)
	}
	if l, r := g.Scores(); l != 0 || r != 0 {
		t.Fatalf("unexpected score %d:%d", l, r)
	}
}
