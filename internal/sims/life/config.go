package life

import (
	"strconv"
	"time"

	"multisim/internal/core"
)

// Config holds the Game of Life tunables.
type Config struct {
	// Scale is the pixel size of one cell.
	Scale int
	// StatusBar is the pixel height kept free below the grid.
	StatusBar int

	Tick          time.Duration
	UpdateCap     time.Duration
	ResizeLimit   time.Duration
	ResizeMaxWait time.Duration

	Edge    core.EdgePolicy
	Density float64
	Seed    int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Scale:         16,
		StatusBar:     core.StatusBarHeight,
		Tick:          10 * time.Millisecond,
		UpdateCap:     200 * time.Millisecond,
		ResizeLimit:   200 * time.Millisecond,
		ResizeMaxWait: time.Second,
		Edge:          core.Bounded,
		Density:       0.25,
		Seed:          1,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["status_bar"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.StatusBar = parsed
		}
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Tick = parsed
		}
	}
	if v, ok := cfg["cap"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.UpdateCap = parsed
		}
	}
	if v, ok := cfg["resize"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.ResizeLimit = parsed
		}
	}
	if v, ok := cfg["resize_max"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.ResizeMaxWait = parsed
		}
	}
	if c.ResizeMaxWait < c.ResizeLimit {
		c.ResizeMaxWait = c.ResizeLimit
	}
	if v, ok := cfg["edge"]; ok {
		if parsed, ok := core.ParseEdgePolicy(v); ok {
			c.Edge = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
