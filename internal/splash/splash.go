// Package splash holds the one-liners shown under the menu title.
package splash

import "multisim/internal/core"

// Lines are the candidate splash texts.
var Lines = []string{
	"Now with 100% more gliders!",
	"Four simulations, one window.",
	"B3/S23 since 1970.",
	"Will it hit the corner?",
	"First click is always safe.",
	"Press H when in doubt.",
	"Powered by a fixed time step.",
	"Resize me, I dare you.",
}

// Pick returns a random line.
func Pick(rng *core.RNG) string {
	return Lines[rng.IntN(len(Lines))]
}
