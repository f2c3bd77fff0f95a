package life

import (
	"lifebg/internal/core"
)

// Pattern lists (dx, dy) offsets stamped relative to an origin cell.
type Pattern [][2]int

// BlockPattern is the 3x3 cluster spawned on click.
var BlockPattern = Pattern{
	{0, 0}, {1, 0}, {2, 0},
	{0, 1}, {1, 1}, {2, 1},
	{0, 2}, {1, 2}, {2, 2},
}

// Life implements Conway's Game of Life on a toroidal grid sized from a
// viewport, advancing once every StepEvery frames.
type Life struct {
	cfg Config
	rng *core.RNG

	cur *core.Grid
	nxt *core.Grid

	viewW, viewH int
	frame        uint64
	generation   uint64
}

// New returns a Life simulation covering a viewW x viewH surface, seeded with
// cfg.Seed.
func New(cfg Config, viewW, viewH int) *Life {
	l := &Life{cfg: normalize(cfg)}
	l.rng = core.NewRNG(l.cfg.Seed)
	l.Resize(viewW, viewH)
	return l
}

func normalize(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Pitch <= 0 {
		cfg.Pitch = def.Pitch
	}
	if cfg.StepEvery <= 0 {
		cfg.StepEvery = def.StepEvery
	}
	if cfg.SpawnEvery < 0 {
		cfg.SpawnEvery = 0
	}
	if cfg.Density < 0 {
		cfg.Density = 0
	}
	if cfg.Density > 1 {
		cfg.Density = 1
	}
	return cfg
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Config returns the active configuration.
func (l *Life) Config() Config { return l.cfg }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Frame returns the number of frames ticked since the last reset.
func (l *Life) Frame() uint64 { return l.frame }

// Generation returns the number of rule applications since the last reset.
func (l *Life) Generation() uint64 { return l.generation }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Viewport returns the surface size the grid was derived from.
func (l *Life) Viewport() (int, int) { return l.viewW, l.viewH }

// Resize reallocates the grid for a new viewport and fills it with fresh
// random cells. Previous content is discarded even if the size is unchanged.
func (l *Life) Resize(viewW, viewH int) {
	l.viewW, l.viewH = viewW, viewH
	size := core.GridDims(viewW, viewH, l.cfg.Pitch)
	l.cur = core.NewGrid(size.W, size.H)
	l.nxt = core.NewGrid(size.W, size.H)
	core.FillDensity(l.rng, l.cur.Cells(), l.cfg.Density)
}

// Reset reseeds the RNG, re-randomizes the grid at its current size and
// rewinds the frame counter.
func (l *Life) Reset(seed int64) {
	l.cfg.Seed = seed
	l.rng = core.NewRNG(seed)
	l.frame = 0
	l.generation = 0
	l.Resize(l.viewW, l.viewH)
}

// CountNeighbors sums the eight wrapped neighbours of (x, y).
func CountNeighbors(g *core.Grid, x, y int) int {
	w, h := g.W, g.H
	cells := g.Cells()
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if cells[ny*w+nx] {
				sum++
			}
		}
	}
	return sum
}

// Next applies B3/S23 to one cell.
func Next(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = Next(cur[idx], CountNeighbors(l.cur, x, y))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Stamp sets every cell of p alive relative to (gx, gy), wrapping at edges.
func (l *Life) Stamp(p Pattern, gx, gy int) {
	for _, off := range p {
		l.cur.Set(gx+off[0], gy+off[1], true)
	}
}

// SpawnPattern stamps the 3x3 block anchored at grid cell (gx, gy).
func (l *Life) SpawnPattern(gx, gy int) {
	l.Stamp(BlockPattern, gx, gy)
}

// SpawnAt converts viewport coordinates into a grid cell and spawns the block
// there. Points outside the grid are ignored.
func (l *Life) SpawnAt(px, py int) bool {
	if px < 0 || py < 0 {
		return false
	}
	gx := px / l.cfg.Pitch
	gy := py / l.cfg.Pitch
	if gx >= l.cur.W || gy >= l.cur.H {
		return false
	}
	l.SpawnPattern(gx, gy)
	return true
}

// InjectRandomCell brings one uniformly chosen cell to life.
func (l *Life) InjectRandomCell() {
	x := l.rng.IntN(l.cur.W)
	y := l.rng.IntN(l.cur.H)
	l.cur.Set(x, y, true)
}

// Tick counts one rendered frame, stepping every StepEvery frames and
// injecting a random cell every SpawnEvery frames. It reports whether a
// generation was computed.
func (l *Life) Tick() bool {
	l.frame++
	stepped := false
	if l.frame%uint64(l.cfg.StepEvery) == 0 {
		l.Step()
		stepped = true
	}
	if l.cfg.SpawnEvery > 0 && l.frame%uint64(l.cfg.SpawnEvery) == 0 {
		l.InjectRandomCell()
	}
	return stepped
}
