package app

import (
	"fmt"

	"lifebg/internal/sims/life"

	"github.com/integrii/flaggy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int

	Pitch      int
	StepEvery  int
	SpawnEvery int
	Density    float64
	Seed       int64

	TPS        int
	HUDWidth   int
	Fullscreen bool
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Width:      1280,
		Height:     800,
		Pitch:      lc.Pitch,
		StepEvery:  lc.StepEvery,
		SpawnEvery: lc.SpawnEvery,
		Density:    lc.Density,
		Seed:       lc.Seed,
		TPS:        60,
		HUDWidth:   240,
	}
}

// Bind attaches the window and engine flags to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Initial viewport width")
	p.Int(&c.Height, "y", "height", "Initial viewport height")
	p.Int(&c.Pitch, "p", "pitch", "Viewport units per grid cell")
	p.Bool(&c.Fullscreen, "f", "fullscreen", "Start in fullscreen")
	c.BindEngine(p)
}

// BindEngine attaches only the cadence, seeding and logging flags, for front
// ends that size the grid themselves.
func (c *Config) BindEngine(p *flaggy.Parser) {
	p.Int(&c.StepEvery, "e", "step-every", "Rendered frames per simulation step")
	p.Int(&c.SpawnEvery, "s", "spawn-every", "Rendered frames per injected random cell (0 disables)")
	p.Float64(&c.Density, "d", "density", "Probability that a cell starts alive")
	p.Int64(&c.Seed, "r", "seed", "Seed for grid randomization")
	p.Int(&c.TPS, "t", "tps", "Frames per second")
	p.Bool(&c.Verbose, "v", "verbose", "Log debug lines")
}

// Life returns the engine configuration.
func (c *Config) Life() life.Config {
	return life.Config{
		Pitch:      c.Pitch,
		StepEvery:  c.StepEvery,
		SpawnEvery: c.SpawnEvery,
		Density:    c.Density,
		Seed:       c.Seed,
	}
}

// Validate checks the viewport and engine settings.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport %dx%d must be positive: %w", c.Width, c.Height, life.ErrInvalidConfig)
	}
	return c.ValidateEngine()
}

// ValidateEngine checks the frame rate and engine settings only.
func (c *Config) ValidateEngine() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive: %w", c.TPS, life.ErrInvalidConfig)
	}
	return c.Life().Validate()
}
