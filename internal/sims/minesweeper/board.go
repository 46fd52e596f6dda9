package minesweeper

import "multisim/internal/core"

// Tile is one square of the board.
type Tile struct {
	Mine      bool
	Revealed  bool
	Flagged   bool
	Neighbors int
}

// Board holds the minefield in row-major order.
type Board struct {
	W, H  int
	Mines int
	tiles []Tile

	revealed int
	exploded bool
}

// NewBoard returns a board of the given size with mines placed from rng.
// The mine count is clamped so at least one safe tile remains.
func NewBoard(w, h, mines int, rng *core.RNG) *Board {
	w, h = max(w, 1), max(h, 1)
	mines = min(max(mines, 0), w*h-1)
	b := &Board{W: w, H: h, Mines: mines, tiles: make([]Tile, w*h)}
	b.placeMines(rng)
	b.calculateNeighbors()
	return b
}

func (b *Board) placeMines(rng *core.RNG) {
	placed := 0
	for placed < b.Mines {
		i := rng.IntN(len(b.tiles))
		if !b.tiles[i].Mine {
			b.tiles[i].Mine = true
			placed++
		}
	}
}

func (b *Board) calculateNeighbors() {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			t := &b.tiles[y*b.W+x]
			t.Neighbors = 0
			if t.Mine {
				continue
			}
			b.eachNeighbor(x, y, func(nx, ny int) {
				if b.tiles[ny*b.W+nx].Mine {
					t.Neighbors++
				}
			})
		}
	}
}

func (b *Board) eachNeighbor(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.In(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// In reports whether (x, y) lies on the board.
func (b *Board) In(x, y int) bool { return x >= 0 && y >= 0 && x < b.W && y < b.H }

// Tile returns the tile at (x, y). The zero Tile is returned when out of range.
func (b *Board) Tile(x, y int) Tile {
	if !b.In(x, y) {
		return Tile{}
	}
	return b.tiles[y*b.W+x]
}

// RelocateMine moves a mine away from (x, y) to the first free tile, so the
// first click of a game never loses.
func (b *Board) RelocateMine(x, y int) {
	if !b.In(x, y) || !b.tiles[y*b.W+x].Mine {
		return
	}
	for i := range b.tiles {
		if !b.tiles[i].Mine && i != y*b.W+x {
			b.tiles[i].Mine = true
			b.tiles[y*b.W+x].Mine = false
			b.calculateNeighbors()
			return
		}
	}
}

// Open reveals (x, y), flood-filling across tiles with no adjacent mines. It
// returns false when a mine was revealed. Out-of-range, revealed and flagged
// tiles are ignored.
func (b *Board) Open(x, y int) bool {
	if !b.In(x, y) {
		return true
	}
	t := &b.tiles[y*b.W+x]
	if t.Revealed || t.Flagged {
		return true
	}
	if t.Mine {
		t.Revealed = true
		b.exploded = true
		return false
	}

	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := &b.tiles[p[1]*b.W+p[0]]
		if cur.Revealed || cur.Flagged || cur.Mine {
			continue
		}
		cur.Revealed = true
		b.revealed++
		if cur.Neighbors != 0 {
			continue
		}
		b.eachNeighbor(p[0], p[1], func(nx, ny int) {
			if !b.tiles[ny*b.W+nx].Revealed {
				stack = append(stack, [2]int{nx, ny})
			}
		})
	}
	return true
}

// ToggleFlag flips the flag on an unrevealed tile.
func (b *Board) ToggleFlag(x, y int) {
	if !b.In(x, y) {
		return
	}
	t := &b.tiles[y*b.W+x]
	if t.Revealed {
		return
	}
	t.Flagged = !t.Flagged
}

// Flags counts flagged tiles.
func (b *Board) Flags() int {
	n := 0
	for _, t := range b.tiles {
		if t.Flagged {
			n++
		}
	}
	return n
}

// Lost reports whether a mine was opened.
func (b *Board) Lost() bool { return b.exploded }

// Won reports whether every safe tile has been revealed.
func (b *Board) Won() bool { return !b.exploded && b.revealed == len(b.tiles)-b.Mines }

// RevealMines uncovers every mine, used once the game is over.
func (b *Board) RevealMines() {
	for i := range b.tiles {
		if b.tiles[i].Mine {
			b.tiles[i].Revealed = true
		}
	}
}
