package life

import "multisim/internal/core"

// NextState applies Conway's rule: a live cell survives with two or three
// live neighbours, a dead cell is born with exactly three.
func NextState(c core.Cell, neighbors int) core.Cell {
	if c == core.Alive {
		if neighbors == 2 || neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
	if neighbors == 3 {
		return core.Alive
	}
	return core.Dead
}
