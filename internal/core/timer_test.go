package core

import (
	"testing"
	"time"
)

func TestFixedStepUncapped(t *testing.T) {
	fs := NewFixedStep(10*time.Millisecond, 0)
	if n := fs.Advance(50 * time.Millisecond); n != 5 {
		t.Fatalf("Advance(5 steps) = %d, want 5", n)
	}
	if fs.Pending() != 0 {
		t.Fatalf("pending = %s, want 0", fs.Pending())
	}
}

func TestFixedStepCapBoundsCatchUp(t *testing.T) {
	fs := NewFixedStep(10*time.Millisecond, 20*time.Millisecond)
	if n := fs.Advance(50 * time.Millisecond); n != 2 {
		t.Fatalf("capped Advance = %d, want 2", n)
	}
	if n := fs.Advance(time.Second); n != 2 {
		t.Fatalf("second capped Advance = %d, want 2", n)
	}
}

func TestFixedStepAccumulatesRemainders(t *testing.T) {
	fs := NewFixedStep(10*time.Millisecond, 0)
	total := 0
	for i := 0; i < 10; i++ {
		total += fs.Advance(4 * time.Millisecond)
	}
	if total != 4 {
		t.Fatalf("ticks after 40ms = %d, want 4", total)
	}
	fs.Reset()
	if fs.Pending() != 0 {
		t.Fatalf("Reset left %s pending", fs.Pending())
	}
}

func TestFixedStepIgnoresNegativeDelta(t *testing.T) {
	fs := NewFixedStep(10*time.Millisecond, 0)
	if n := fs.Advance(-time.Second); n != 0 || fs.Pending() != 0 {
		t.Fatalf("negative delta produced %d ticks, %s pending", n, fs.Pending())
	}
}
