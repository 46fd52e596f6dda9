package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"multisim/internal/core"
)

func TestEmptySoupSettlesImmediately(t *testing.T) {
	res := runSoup(soup{edge: core.Bounded, density: 0, seed: 1}, 16, 16, 10)
	if res.initial != 0 || res.settledAt != 0 || res.period != 1 {
		t.Fatalf("empty soup = %+v", res)
	}
}

func TestRunAllReturnsEverySoup(t *testing.T) {
	soups := []soup{
		{edge: core.Bounded, density: 0.3, seed: 1},
		{edge: core.Toroidal, density: 0.3, seed: 2},
		{edge: core.Toroidal, density: 0.5, seed: 3},
	}
	got := runAll(soups, 20, 20, 50, 2, log.New(io.Discard))
	if len(got) != len(soups) {
		t.Fatalf("results = %d, want %d", len(got), len(soups))
	}
	for _, r := range got {
		if r.peak < r.initial || r.generation == 0 {
			t.Fatalf("bad result %+v", r)
		}
	}
}
