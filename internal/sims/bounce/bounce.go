package bounce

import (
	"fmt"
	"image/color"
	"strconv"

	"multisim/internal/core"
)

const (
	logoW = 120
	logoH = 60
)

var palette = []color.RGBA{
	{R: 0xff, G: 0x4d, B: 0x4d, A: 0xff},
	{R: 0x4d, G: 0xff, B: 0x88, A: 0xff},
	{R: 0x4d, G: 0x9d, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xe0, B: 0x4d, A: 0xff},
	{R: 0xd2, G: 0x4d, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Config holds the bouncing logo parameters.
type Config struct {
	Speed float64 // pixels per second
	Seed  int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Speed: 180, Seed: 7}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Demo is a logo bouncing around the window, changing colour on every wall hit.
type Demo struct {
	rng    *core.RNG
	field  core.Size
	x, y   float64
	vx, vy float64
	color  int

	hits    int
	corners int
}

// New returns a Demo with the logo placed randomly inside the window.
func New(window core.Size, cfg Config) *Demo {
	d := &Demo{rng: core.NewRNG(cfg.Seed)}
	d.field = playfield(window)
	d.x = float64(d.rng.IntN(max(d.field.W-logoW, 1)))
	d.y = float64(d.rng.IntN(max(d.field.H-logoH, 1)))
	d.vx = cfg.Speed * d.rng.Sign()
	d.vy = cfg.Speed * d.rng.Sign()
	d.color = d.rng.IntN(len(palette))
	return d
}

func playfield(window core.Size) core.Size {
	return core.Size{W: window.W, H: max(window.H-core.StatusBarHeight, 0)}
}

// Name returns the display name.
func (d *Demo) Name() string { return "DvD bouncy" }

// Position returns the logo's top-left corner.
func (d *Demo) Position() (float64, float64) { return d.x, d.y }

// Hits returns how many walls the logo has touched.
func (d *Demo) Hits() int { return d.hits }

// OnResize keeps the logo inside the new playfield.
func (d *Demo) OnResize(f *core.Frame) {
	d.field = playfield(f.Global.Window)
	d.x = clamp(d.x, 0, float64(d.field.W-logoW))
	d.y = clamp(d.y, 0, float64(d.field.H-logoH))
}

// Update moves the logo by the frame delta.
func (d *Demo) Update(f *core.Frame) {
	dt := f.Delta.Seconds()
	var hitX, hitY bool
	d.x, d.vx, hitX = reflect(d.x+d.vx*dt, d.vx, 0, float64(d.field.W-logoW))
	d.y, d.vy, hitY = reflect(d.y+d.vy*dt, d.vy, 0, float64(d.field.H-logoH))
	if hitX || hitY {
		d.hits++
		d.color = (d.color + 1 + d.rng.IntN(len(palette)-1)) % len(palette)
	}
	if hitX && hitY {
		d.corners++
	}
}

// reflect folds pos back into [lo, hi], flipping the velocity when it
// crossed a bound.
func reflect(pos, vel, lo, hi float64) (float64, float64, bool) {
	if hi < lo {
		return lo, vel, false
	}
	switch {
	case pos < lo:
		return lo + (lo - pos), abs(vel), true
	case pos > hi:
		return hi - (pos - hi), -abs(vel), true
	}
	return pos, vel, false
}

// Draw renders the logo.
func (d *Demo) Draw(dst core.Canvas, f *core.Frame) {
	dst.Clear(color.Black)
	c := palette[d.color]
	dst.FillRect(float32(d.x), float32(d.y), logoW, logoH, c)
	label := "DVD"
	const scale = 3
	tw := core.TextWidth(label, scale)
	dst.Text(label, int(d.x)+(logoW-tw)/2, int(d.y)+(logoH-core.GlyphH*scale)/2, scale, color.Black)
}

// Parameters reports the bounce counters.
func (d *Demo) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "bounce",
		Params: []core.Parameter{
			{Key: "hits", Label: "Hits", Type: core.ParamTypeInt, Value: strconv.Itoa(d.hits)},
			{Key: "corners", Label: "Corners", Type: core.ParamTypeInt, Value: strconv.Itoa(d.corners)},
			{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.0fpx/s", abs(d.vx))},
		},
	}}}
}

// Help lists the demo controls.
func (d *Demo) Help() []string {
	return []string{
		"Watch the logo and wait for a perfect corner hit.",
		"Space  - pause/unpause",
		"H      - help menu",
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func init() {
	core.Register("bounce", func(window core.Size, cfg map[string]string) core.Simulation {
		return New(window, FromMap(cfg))
	})
}
