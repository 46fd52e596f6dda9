package core

import "time"

// FixedStep converts variable frame deltas into a whole number of fixed ticks.
// Each Advance consumes at most limit of the supplied delta, so a long hitch
// produces a bounded amount of catch-up work.
type FixedStep struct {
	step        time.Duration
	limit       time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep ticking every step. A non-positive limit
// disables the per-call cap.
func NewFixedStep(step, limit time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	fs.SetLimit(limit)
	return fs
}

// SetStep changes the tick length. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = time.Second / 60
	}
	f.step = step
}

// Step returns the tick length.
func (f *FixedStep) Step() time.Duration { return f.step }

// SetLimit changes the maximum delta consumed per Advance.
func (f *FixedStep) SetLimit(limit time.Duration) {
	if limit < 0 {
		limit = 0
	}
	f.limit = limit
}

// Limit returns the per-call cap, zero when uncapped.
func (f *FixedStep) Limit() time.Duration { return f.limit }

// Pending returns the time accumulated but not yet consumed by a tick.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Reset drops any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Advance adds delta (capped) to the accumulator and reports how many ticks
// are due.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta < 0 {
		delta = 0
	}
	if f.limit > 0 && delta > f.limit {
		delta = f.limit
	}
	f.accumulator += delta
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
	}
	return ticks
}
