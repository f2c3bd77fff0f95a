package core

// Grid stores a 2D grid of boolean cell states in row-major order. Coordinates
// wrap toroidally: the left edge touches the right edge, the top the bottom.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Alive reports the state at (x, y) after wrapping.
func (g *Grid) Alive(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores the state at (x, y) after wrapping.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = alive
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
