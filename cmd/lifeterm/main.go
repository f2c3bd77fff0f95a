package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"lifebg/internal/app"
	"lifebg/internal/console"
	"lifebg/internal/logging"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	cfg.Pitch = 1
	cfg.TPS = 30
	noColor := false
	logFile := filepath.Join(os.TempDir(), "lifeterm.log")

	p := flaggy.NewParser("lifeterm")
	p.Description = "Game of Life background with a whoami card, drawn in the terminal."
	cfg.BindEngine(p)
	p.Bool(&noColor, "", "no-color", "Disable ANSI colors")
	p.String(&logFile, "", "log-file", "Debug log destination while the terminal is in use (with --verbose)")
	if err := p.Parse(); err != nil {
		logging.New(os.Stderr, false, true).Errorf("parse flags: %v", err)
		os.Exit(2)
	}

	stderr := logging.New(os.Stderr, false, !noColor)
	if err := cfg.ValidateEngine(); err != nil {
		stderr.Errorf("%v", err)
		os.Exit(2)
	}
	if err := run(cfg, !noColor, logFile, stderr); err != nil {
		stderr.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, color bool, logFile string, stderr *logging.Logger) error {
	// gocui owns the terminal, so logs go to a file or nowhere.
	logger := logging.Discard()
	if cfg.Verbose {
		f, err := os.Create(logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logging.New(f, true, false)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := console.New(cfg.Life(), cfg.TPS, color, logger)
	if err := c.Run(ctx); err != nil {
		return err
	}
	size := c.Sim().Size()
	stderr.Infof("stopped after %d generations on a %dx%d grid", c.Sim().Generation(), size.W, size.H)
	return nil
}
