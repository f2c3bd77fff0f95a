package life

import (
	"errors"
	"slices"
	"testing"

	"lifebg/internal/core"
)

// empty returns a w x h engine with one grid cell per viewport unit, no live
// cells and random injection disabled.
func empty(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Pitch = 1
	cfg.Density = 0
	cfg.SpawnEvery = 0
	return New(cfg, w, h)
}

func liveSet(g *core.Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Alive(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func expectLive(t *testing.T, g *core.Grid, expects map[[2]int]bool, when string) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Alive(x, y)
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", when, x, y, alive, !alive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := empty(5, 5)
	g := life.Grid()
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	life.Step()
	expectLive(t, life.Grid(), map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after first step")

	life.Step()
	expectLive(t, life.Grid(), map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after second step")

	if life.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", life.Generation())
	}
}

func TestCountNeighborsMatchesWrappedWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pitch = 1
	cfg.Density = 0.45
	cfg.Seed = 3
	life := New(cfg, 9, 7)
	g := life.Grid()

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && g.Alive(x+dx, y+dy) {
						want++
					}
				}
			}
			got := CountNeighbors(g, x, y)
			if got != want {
				t.Fatalf("CountNeighbors(%d,%d) = %d, expected %d", x, y, got, want)
			}
			if got < 0 || got > 8 {
				t.Fatalf("CountNeighbors(%d,%d) = %d out of range", x, y, got)
			}
		}
	}
}

func TestCountNeighborsWrapsCorners(t *testing.T) {
	life := empty(4, 4)
	g := life.Grid()
	g.Set(3, 3, true)
	g.Set(0, 3, true)
	g.Set(3, 0, true)
	if got := CountNeighbors(g, 0, 0); got != 3 {
		t.Fatalf("corner neighbours = %d, expected 3", got)
	}
	g.Set(0, 0, true)
	if got := CountNeighbors(g, 0, 0); got != 3 {
		t.Fatalf("self must not count, got %d", got)
	}
}

func TestStepKeepsDeadGridDead(t *testing.T) {
	life := empty(12, 8)
	life.Step()
	if got := life.Population(); got != 0 {
		t.Fatalf("dead grid produced %d live cells", got)
	}
}

func TestLoneCellDies(t *testing.T) {
	life := empty(6, 6)
	life.Grid().Set(3, 3, true)
	life.Step()
	if got := life.Population(); got != 0 {
		t.Fatalf("lone cell should die, population %d", got)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	life := empty(6, 6)
	g := life.Grid()
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		g.Set(p[0], p[1], true)
	}
	before := liveSet(g)
	for i := 0; i < 4; i++ {
		life.Step()
		expectLive(t, life.Grid(), before, "block")
	}
}

func TestNextRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Next(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("Next(alive, %d) = %v, expected %v", n, got, want)
		}
		if got, want := Next(false, n), n == 3; got != want {
			t.Fatalf("Next(dead, %d) = %v, expected %v", n, got, want)
		}
	}
}

func TestResizeRecomputesDimensions(t *testing.T) {
	life := New(DefaultConfig(), 800, 600)
	if got := life.Size(); got != (core.Size{W: 40, H: 30}) {
		t.Fatalf("initial size %+v, expected 40x30", got)
	}
	life.Resize(1001, 333)
	if got := life.Size(); got != (core.Size{W: 51, H: 17}) {
		t.Fatalf("resized size %+v, expected 51x17", got)
	}
	if w, h := life.Viewport(); w != 1001 || h != 333 {
		t.Fatalf("viewport = %dx%d, expected 1001x333", w, h)
	}
}

func TestResizeDiscardsContent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 1
	life := New(cfg, 100, 100)
	life.Grid().Clear()
	life.Resize(100, 100)
	if got, want := life.Population(), 25; got != want {
		t.Fatalf("resize should re-randomize at density 1, population %d expected %d", got, want)
	}
}

func TestSpawnPatternWrapsBlock(t *testing.T) {
	life := empty(5, 5)
	life.SpawnPattern(4, 4)
	want := map[[2]int]bool{}
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			want[[2]int{(4 + dx) % 5, (4 + dy) % 5}] = true
		}
	}
	expectLive(t, life.Grid(), want, "spawn at corner")
}

func TestSpawnAtConvertsViewportCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 0
	life := New(cfg, 200, 200)

	if !life.SpawnAt(45, 65) {
		t.Fatal("click inside the grid should spawn")
	}
	g := life.Grid()
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if !g.Alive(2+dx, 3+dy) {
				t.Fatalf("expected cell (%d,%d) alive", 2+dx, 3+dy)
			}
		}
	}
	if got := life.Population(); got != 9 {
		t.Fatalf("population %d, expected 9", got)
	}

	for _, p := range [][2]int{{-1, 10}, {10, -20}, {200, 0}, {0, 200}} {
		if life.SpawnAt(p[0], p[1]) {
			t.Fatalf("click at (%d,%d) outside the grid should be ignored", p[0], p[1])
		}
	}
	if got := life.Population(); got != 9 {
		t.Fatalf("ignored clicks changed population to %d", got)
	}
}

func TestInjectRandomCell(t *testing.T) {
	life := empty(10, 10)
	life.InjectRandomCell()
	if got := life.Population(); got != 1 {
		t.Fatalf("population after inject = %d, expected 1", got)
	}
}

func TestTickCadence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pitch = 1
	cfg.Density = 0
	life := New(cfg, 20, 20)

	for i := 1; i < 10; i++ {
		if life.Tick() {
			t.Fatalf("frame %d should not step", i)
		}
	}
	if !life.Tick() {
		t.Fatal("frame 10 should step")
	}
	if life.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", life.Generation())
	}

	for life.Frame() < 199 {
		life.Tick()
	}
	if got := life.Population(); got != 0 {
		t.Fatalf("no cell should appear before frame 200, population %d", got)
	}
	life.Tick()
	if got := life.Population(); got != 1 {
		t.Fatalf("frame 200 should inject one cell, population %d", got)
	}
	for life.Frame() < 210 {
		life.Tick()
	}
	if got := life.Population(); got != 0 {
		t.Fatalf("injected lone cell should die at the next step, population %d", got)
	}
	if life.Generation() != 21 {
		t.Fatalf("generation = %d, expected 21", life.Generation())
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pitch = 1
	life := New(cfg, 32, 24)
	life.Reset(777)
	first := slices.Clone(life.Grid().Cells())
	for i := 0; i < 50; i++ {
		life.Tick()
	}
	life.Reset(777)
	if !slices.Equal(first, life.Grid().Cells()) {
		t.Fatal("Reset with the same seed should reproduce the grid")
	}
	if life.Frame() != 0 || life.Generation() != 0 {
		t.Fatalf("Reset should rewind counters, frame=%d generation=%d", life.Frame(), life.Generation())
	}
	life.Reset(778)
	if slices.Equal(first, life.Grid().Cells()) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestSetParametersClamp(t *testing.T) {
	life := New(DefaultConfig(), 100, 100)
	if !life.SetIntParameter("step_every", 0) {
		t.Fatal("step_every should be adjustable")
	}
	if got := life.Config().StepEvery; got != 1 {
		t.Fatalf("step_every clamped to %d, expected 1", got)
	}
	if !life.SetIntParameter("spawn_every", 5000) {
		t.Fatal("spawn_every should be adjustable")
	}
	if got := life.Config().SpawnEvery; got != 2000 {
		t.Fatalf("spawn_every clamped to %d, expected 2000", got)
	}
	if !life.SetFloatParameter("density", 1.5) {
		t.Fatal("density should be adjustable")
	}
	if got := life.Config().Density; got != 1 {
		t.Fatalf("density clamped to %g, expected 1", got)
	}
	if life.SetIntParameter("density", 1) {
		t.Fatal("density is not an int parameter")
	}
	if life.SetFloatParameter("nope", 1) {
		t.Fatal("unknown key should be rejected")
	}

	p, ok := life.Parameters().Lookup("step_every")
	if !ok || p.Value != "1" {
		t.Fatalf("snapshot step_every = %+v (found=%v), expected 1", p, ok)
	}
}

func TestFromMapAndValidate(t *testing.T) {
	c := FromMap(map[string]string{
		"pitch":       "10",
		"step_every":  "4",
		"spawn_every": "0",
		"density":     "0.5",
		"seed":        "-9",
	})
	if c.Pitch != 10 || c.StepEvery != 4 || c.SpawnEvery != 0 || c.Density != 0.5 || c.Seed != -9 {
		t.Fatalf("unexpected config %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	ignored := FromMap(map[string]string{"pitch": "-1", "density": "2", "step_every": "x"})
	if ignored != DefaultConfig() {
		t.Fatalf("invalid entries should fall back to defaults, got %+v", ignored)
	}

	bad := []Config{
		{Pitch: 0, StepEvery: 1},
		{Pitch: 1, StepEvery: 0},
		{Pitch: 1, StepEvery: 1, SpawnEvery: -1},
		{Pitch: 1, StepEvery: 1, Density: 1.1},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("Validate(%+v) = %v, expected ErrInvalidConfig", cfg, err)
		}
	}
}
