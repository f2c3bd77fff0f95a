package life

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid life config")

// Config controls grid pitch, cadence and seeding for the Life engine.
type Config struct {
	// Pitch is the viewport size of one cell. 20 for the window, 1 for terminals.
	Pitch int
	// StepEvery is how many rendered frames pass per simulation step.
	StepEvery int
	// SpawnEvery is how many rendered frames pass per injected random cell.
	// Zero disables injection.
	SpawnEvery int
	// Density is the probability that a cell starts alive.
	Density float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Pitch:      20,
		StepEvery:  10,
		SpawnEvery: 200,
		Density:    0.2,
		Seed:       42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["pitch"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Pitch = parsed
		}
	}
	if v, ok := cfg["step_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepEvery = parsed
		}
	}
	if v, ok := cfg["spawn_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SpawnEvery = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Pitch <= 0:
		return fmt.Errorf("pitch %d must be positive: %w", c.Pitch, ErrInvalidConfig)
	case c.StepEvery <= 0:
		return fmt.Errorf("step every %d must be positive: %w", c.StepEvery, ErrInvalidConfig)
	case c.SpawnEvery < 0:
		return fmt.Errorf("spawn every %d must not be negative: %w", c.SpawnEvery, ErrInvalidConfig)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %g must be within [0,1]: %w", c.Density, ErrInvalidConfig)
	}
	return nil
}
