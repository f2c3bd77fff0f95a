package app

import (
	"errors"
	"testing"

	"lifebg/internal/sims/life"

	"github.com/integrii/flaggy"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	p := flaggy.NewParser("lifebg")
	cfg.Bind(p)
	err := p.ParseArgs([]string{
		"--width", "640",
		"--pitch", "10",
		"--step-every", "5",
		"--spawn-every", "0",
		"--density", "0.35",
		"--seed", "9",
		"--verbose",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 800 {
		t.Fatalf("viewport = %dx%d, expected 640x800", cfg.Width, cfg.Height)
	}
	want := life.Config{Pitch: 10, StepEvery: 5, SpawnEvery: 0, Density: 0.35, Seed: 9}
	if got := cfg.Life(); got != want {
		t.Fatalf("Life() = %+v, expected %+v", got, want)
	}
	if !cfg.Verbose {
		t.Fatal("--verbose should be set")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigDefaultsMatchEngine(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.Life(); got != life.DefaultConfig() {
		t.Fatalf("default Life() = %+v, expected %+v", got, life.DefaultConfig())
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []func(c *Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.TPS = -1 },
		func(c *Config) { c.Pitch = 0 },
		func(c *Config) { c.Density = 2 },
	}
	for i, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, life.ErrInvalidConfig) {
			t.Fatalf("case %d: Validate = %v, expected ErrInvalidConfig", i, err)
		}
	}
}

func TestConfigBindEngineSkipsWindowFlags(t *testing.T) {
	cfg := NewConfig()
	cfg.Pitch = 1
	p := flaggy.NewParser("lifeterm")
	cfg.BindEngine(p)
	if err := p.ParseArgs([]string{"--step-every", "3", "--seed", "5"}); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.StepEvery != 3 || cfg.Seed != 5 {
		t.Fatalf("step=%d seed=%d, expected 3 and 5", cfg.StepEvery, cfg.Seed)
	}

	cfg.Width = 0
	if err := cfg.ValidateEngine(); err != nil {
		t.Fatalf("ValidateEngine should ignore the window size: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, life.ErrInvalidConfig) {
		t.Fatalf("Validate = %v, expected ErrInvalidConfig", err)
	}
	cfg.TPS = 0
	if err := cfg.ValidateEngine(); !errors.Is(err, life.ErrInvalidConfig) {
		t.Fatalf("ValidateEngine = %v, expected ErrInvalidConfig", err)
	}
}
