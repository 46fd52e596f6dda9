package core

// Cell is the state of a single automaton cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// EdgePolicy selects how neighbours beyond the grid border are counted.
type EdgePolicy uint8

const (
	// Bounded treats every position outside the grid as dead.
	Bounded EdgePolicy = iota
	// Toroidal wraps coordinates around the opposite edge.
	Toroidal
)

func (p EdgePolicy) String() string {
	switch p {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return "unknown"
	}
}

// ParseEdgePolicy maps "bounded" or "toroidal" to a policy.
func ParseEdgePolicy(s string) (EdgePolicy, bool) {
	switch s {
	case "bounded", "clamp":
		return Bounded, true
	case "toroidal", "wrap", "torus":
		return Toroidal, true
	}
	return Bounded, false
}

// Grid stores a 2D grid of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a zero-filled grid. Non-positive dimensions clamp to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// At returns the cell at (x, y), or Dead when out of range.
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Dead
	}
	return g.data[g.Index(x, y)]
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.In(x, y) {
		return
	}
	g.data[g.Index(x, y)] = c
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() { g.Fill(Dead) }

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.data {
		g.data[i] = c
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// LiveNeighbors counts live cells among the eight positions around (x, y).
func (g *Grid) LiveNeighbors(x, y int, edge EdgePolicy) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if edge == Toroidal {
				nx, ny = g.Wrap(nx, ny)
			} else if !g.In(nx, ny) {
				continue
			}
			if g.data[ny*g.W+nx] == Alive {
				n++
			}
		}
	}
	return n
}

// Resized returns a new w*h grid holding the overlapping top-left region of g.
// Cells outside the old bounds start dead.
func (g *Grid) Resized(w, h int) *Grid {
	out := NewGrid(w, h)
	cw := min(g.W, out.W)
	ch := min(g.H, out.H)
	for y := 0; y < ch; y++ {
		copy(out.data[y*out.W:y*out.W+cw], g.data[y*g.W:y*g.W+cw])
	}
	return out
}
