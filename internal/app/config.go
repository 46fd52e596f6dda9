package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"multisim/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width, Height int

	Tick          time.Duration
	UpdateCap     time.Duration
	ResizeLimit   time.Duration
	ResizeMaxWait time.Duration
	Edge          string

	Debug    bool
	LogFile  string
	CrashDir string

	// Params holds extra key=value pairs handed to simulation factories.
	Params map[string]string
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Scale:         16,
		TPS:           60,
		Seed:          1,
		Width:         800,
		Height:        648,
		Tick:          10 * time.Millisecond,
		UpdateCap:     200 * time.Millisecond,
		ResizeLimit:   200 * time.Millisecond,
		ResizeMaxWait: time.Second,
		Edge:          core.Bounded.String(),
		CrashDir:      ".",
		Params:        map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to open directly (life, bounce, paddle, minesweeper); empty shows the menu")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one Game of Life cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the host loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized simulations")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "Game of Life generation time step")
	fs.DurationVar(&c.UpdateCap, "cap", c.UpdateCap, "largest frame delta fed to the Game of Life stepper (0 disables)")
	fs.DurationVar(&c.ResizeLimit, "resize", c.ResizeLimit, "quiet period before a resized grid is rebuilt")
	fs.DurationVar(&c.ResizeMaxWait, "resize-max", c.ResizeMaxWait, "longest a pending grid rebuild may be postponed")
	fs.StringVar(&c.Edge, "edge", c.Edge, "Game of Life edge policy: bounded or toroidal")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log at debug level")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append logs to this file")
	fs.StringVar(&c.CrashDir, "crash-dir", c.CrashDir, "directory for crash reports")
	fs.Func("param", "extra simulation parameter as key=value (repeatable)", func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("param %q: want key=value", s)
		}
		if c.Params == nil {
			c.Params = map[string]string{}
		}
		c.Params[k] = v
		return nil
	})
}

// Validate reports flag values no simulation can run with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if _, ok := core.ParseEdgePolicy(c.Edge); !ok {
		return fmt.Errorf("unknown edge policy %q", c.Edge)
	}
	return nil
}

// Window returns the initial window size.
func (c *Config) Window() core.Size { return core.Size{W: c.Width, H: c.Height} }

// SimConfig flattens the configuration into the map simulation factories
// parse. Explicit -param values win over the named flags.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"scale":      strconv.Itoa(c.Scale),
		"seed":       strconv.FormatInt(c.Seed, 10),
		"tick":       c.Tick.String(),
		"cap":        c.UpdateCap.String(),
		"resize":     c.ResizeLimit.String(),
		"resize_max": c.ResizeMaxWait.String(),
		"edge":       c.Edge,
	}
	for k, v := range c.Params {
		m[k] = v
	}
	return m
}
