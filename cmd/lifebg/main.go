//go:build ebiten

package main

import (
	"errors"
	"os"

	"lifebg/internal/app"
	"lifebg/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	p := flaggy.NewParser("lifebg")
	p.Description = "Game of Life background with a whoami terminal card."
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		logging.New(os.Stderr, false, true).Errorf("parse flags: %v", err)
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, cfg.Verbose, true)
	if err := cfg.Validate(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	game := app.New(cfg, logger)

	ebiten.SetWindowTitle("whoami")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	// The trail effect relies on the previous frame staying on screen.
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorf("run: %v", err)
		os.Exit(1)
	}
}
