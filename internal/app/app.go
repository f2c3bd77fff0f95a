//go:build ebiten

package app

import (
	"time"

	"lifebg/internal/core"
	"lifebg/internal/logging"
	"lifebg/internal/render"
	"lifebg/internal/sims/life"
	"lifebg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/browser"
)

// Game adapts the Life background and its overlays to the ebiten.Game
// interface.
type Game struct {
	controller

	painter  *render.Painter
	termView *ui.TerminalView
	hudView  *ui.HUD
	overlay  *ui.Overlay

	frame    time.Duration
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the given configuration.
func New(cfg *Config, log *logging.Logger) *Game {
	sim := life.New(cfg.Life(), cfg.Width, cfg.Height)
	term := ui.NewTerminal(ui.DefaultProfile())
	hud := ui.NewHUD(sim, cfg.HUDWidth)
	g := &Game{
		controller: controller{
			sim:     sim,
			term:    term,
			hud:     hud,
			log:     log,
			OpenURL: browser.OpenURL,
			outW:    cfg.Width,
			outH:    cfg.Height,
		},
		painter:  render.NewPainter(cfg.Pitch),
		termView: ui.NewTerminalView(term),
		hudView:  hud,
		overlay:  ui.NewOverlay(sim),
		frame:    core.FrameDuration(cfg.TPS),
		seed:     cfg.Seed,
	}
	size := sim.Size()
	log.Infof("grid %dx%d (pitch %d, step every %d frames, spawn every %d frames)",
		size.W, size.H, cfg.Pitch, cfg.StepEvery, cfg.SpawnEvery)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Debugf("reset with seed %d", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.applyResize()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.term.Advance(g.frame)
	g.hudView.Update(g.outW)
	g.overlay.Update()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}

	switch {
	case !g.paused:
		g.sim.Tick()
	case g.tickOnce:
		g.sim.Step()
	}
	g.tickOnce = false
	return nil
}

// Draw renders the current simulation state and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sim.Grid())
	g.overlay.Draw(screen)
	g.termView.Draw(screen)
	g.hudView.Draw(screen)
}

// Layout uses the window size as the logical screen size so the grid always
// spans the full viewport. The resize itself happens in the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
