package app

import (
	"flag"
	"io"
	"testing"
	"time"

	"multisim/internal/core"
	"multisim/internal/sims/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("multisim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestDefaultsReachLifeUnchanged(t *testing.T) {
	cfg := parse(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	got := life.FromMap(cfg.SimConfig())
	if got != life.DefaultConfig() {
		t.Fatalf("life config = %+v, want defaults %+v", got, life.DefaultConfig())
	}
	if cfg.Window() != (core.Size{W: 800, H: 648}) {
		t.Fatalf("window = %+v", cfg.Window())
	}
}

func TestFlagsFlowIntoSimConfig(t *testing.T) {
	cfg := parse(t, "-edge", "toroidal", "-tick", "50ms", "-cap", "0", "-param", "mines=12", "-param", "edge=bounded")
	m := cfg.SimConfig()
	if m["mines"] != "12" {
		t.Fatalf("mines = %q", m["mines"])
	}
	if m["edge"] != "bounded" {
		t.Fatalf("-param should override -edge, got %q", m["edge"])
	}
	lc := life.FromMap(m)
	if lc.Tick != 50*time.Millisecond || lc.UpdateCap != 0 {
		t.Fatalf("tick=%s cap=%s", lc.Tick, lc.UpdateCap)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := [][]string{
		{"-scale", "0"},
		{"-tps", "-1"},
		{"-width", "0"},
		{"-edge", "mobius"},
		{"-tick", "0s"},
	}
	for _, args := range cases {
		if err := parse(t, args...).Validate(); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
}

func TestParamNeedsKeyValue(t *testing.T) {
	fs := flag.NewFlagSet("multisim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	NewConfig().Bind(fs)
	if err := fs.Parse([]string{"-param", "novalue"}); err == nil {
		t.Fatal("expected error for malformed -param")
	}
}
