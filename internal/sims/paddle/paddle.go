package paddle

import (
	"image/color"
	"strconv"

	"multisim/internal/core"
)

const (
	paddleW      = 12
	paddleH      = 80
	paddleMargin = 24
	ballR        = 8
	speedup      = 1.05
	maxBallSpeed = 900
)

// Config holds the paddle game tunables.
type Config struct {
	PaddleSpeed float64 // pixels per second
	BallSpeed   float64 // pixels per second at serve
	Seed        int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{PaddleSpeed: 420, BallSpeed: 300, Seed: 11}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["paddle_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.PaddleSpeed = parsed
		}
	}
	if v, ok := cfg["ball_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.BallSpeed = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

type paddle struct {
	y     float64
	score int
}

type ball struct {
	x, y   float64
	vx, vy float64
}

// Game is a two-player paddle game: W/S move the left paddle, Up/Down the right.
type Game struct {
	cfg   Config
	rng   *core.RNG
	field core.Size

	left, right paddle
	ball        ball
}

// New returns a Game with both paddles centred and the ball served.
func New(window core.Size, cfg Config) *Game {
	g := &Game{cfg: cfg, rng: core.NewRNG(cfg.Seed)}
	g.field = playfield(window)
	g.left.y = float64(g.field.H-paddleH) / 2
	g.right.y = g.left.y
	g.serve(g.rng.Sign())
	return g
}

func playfield(window core.Size) core.Size {
	return core.Size{W: window.W, H: max(window.H-core.StatusBarHeight, paddleH)}
}

// Name returns the display name.
func (g *Game) Name() string { return "Pong" }

// Scores returns the left and right scores.
func (g *Game) Scores() (int, int) { return g.left.score, g.right.score }

// serve places the ball in the centre heading towards dir (-1 left, 1 right).
func (g *Game) serve(dir float64) {
	g.ball = ball{
		x:  float64(g.field.W) / 2,
		y:  float64(g.field.H) / 2,
		vx: g.cfg.BallSpeed * dir,
		vy: g.cfg.BallSpeed * 0.5 * g.rng.Sign() * (0.5 + g.rng.Float64()),
	}
}

// OnResize keeps paddles and ball inside the new playfield.
func (g *Game) OnResize(f *core.Frame) {
	g.field = playfield(f.Global.Window)
	limit := float64(g.field.H - paddleH)
	g.left.y = min(max(g.left.y, 0), limit)
	g.right.y = min(max(g.right.y, 0), limit)
	g.ball.x = min(max(g.ball.x, ballR), float64(g.field.W-ballR))
	g.ball.y = min(max(g.ball.y, ballR), float64(g.field.H-ballR))
}

// Update moves paddles and ball and scores points.
func (g *Game) Update(f *core.Frame) {
	dt := f.Delta.Seconds()
	limit := float64(g.field.H - paddleH)
	step := g.cfg.PaddleSpeed * dt
	if f.Held(core.KeyW) {
		g.left.y -= step
	}
	if f.Held(core.KeyS) {
		g.left.y += step
	}
	if f.Held(core.KeyUp) {
		g.right.y -= step
	}
	if f.Held(core.KeyDown) {
		g.right.y += step
	}
	g.left.y = min(max(g.left.y, 0), limit)
	g.right.y = min(max(g.right.y, 0), limit)

	b := &g.ball
	b.x += b.vx * dt
	b.y += b.vy * dt
	if b.y < ballR {
		b.y = 2*ballR - b.y
		b.vy = -b.vy
	}
	if bottom := float64(g.field.H - ballR); b.y > bottom {
		b.y = 2*bottom - b.y
		b.vy = -b.vy
	}

	leftFace := float64(paddleMargin + paddleW)
	rightFace := float64(g.field.W - paddleMargin - paddleW)
	if b.vx < 0 && b.x-ballR <= leftFace && b.x-ballR >= leftFace-paddleW && g.covers(g.left, b.y) {
		b.x = leftFace + ballR
		g.returnBall(g.left)
	}
	if b.vx > 0 && b.x+ballR >= rightFace && b.x+ballR <= rightFace+paddleW && g.covers(g.right, b.y) {
		b.x = rightFace - ballR
		g.returnBall(g.right)
	}

	switch {
	case b.x < -ballR:
		g.right.score++
		g.serve(1)
	case b.x > float64(g.field.W+ballR):
		g.left.score++
		g.serve(-1)
	}
}

func (g *Game) covers(p paddle, y float64) bool {
	return y+ballR >= p.y && y-ballR <= p.y+paddleH
}

// returnBall reverses the ball and angles it by where it struck the paddle.
func (g *Game) returnBall(p paddle) {
	b := &g.ball
	offset := (b.y - (p.y + paddleH/2)) / (paddleH / 2)
	speed := min(abs(b.vx)*speedup, maxBallSpeed)
	if b.vx > 0 {
		b.vx = -speed
	} else {
		b.vx = speed
	}
	b.vy = offset * speed * 0.75
}

// Draw renders the court.
func (g *Game) Draw(dst core.Canvas, f *core.Frame) {
	dst.Clear(color.Black)
	gray := color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	cx := float32(g.field.W) / 2
	for y := 0; y < g.field.H; y += 24 {
		dst.FillRect(cx-2, float32(y), 4, 12, gray)
	}
	dst.FillRect(paddleMargin, float32(g.left.y), paddleW, paddleH, color.White)
	dst.FillRect(float32(g.field.W-paddleMargin-paddleW), float32(g.right.y), paddleW, paddleH, color.White)
	dst.FillCircle(float32(g.ball.x), float32(g.ball.y), ballR, color.White)

	const scale = 4
	ls := strconv.Itoa(g.left.score)
	rs := strconv.Itoa(g.right.score)
	dst.Text(ls, int(cx)-40-core.TextWidth(ls, scale), 20, scale, color.White)
	dst.Text(rs, int(cx)+40, 20, scale, color.White)
}

// Parameters reports the score.
func (g *Game) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "pong",
		Params: []core.Parameter{
			{Key: "left", Label: "Left", Type: core.ParamTypeInt, Value: strconv.Itoa(g.left.score)},
			{Key: "right", Label: "Right", Type: core.ParamTypeInt, Value: strconv.Itoa(g.right.score)},
		},
	}}}
}

// Help lists the game controls.
func (g *Game) Help() []string {
	return []string{
		"W / S       - move left paddle",
		"Up / Down   - move right paddle",
		"Space       - pause/unpause",
		"H           - help menu",
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	core.Register("paddle", func(window core.Size, cfg map[string]string) core.Simulation {
		return New(window, FromMap(cfg))
	})
}
