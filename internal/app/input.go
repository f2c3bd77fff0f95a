package app

import (
	"lifebg/internal/logging"
	"lifebg/internal/sims/life"
	"lifebg/internal/ui"
)

// clickTarget names the layer that consumed a left click.
type clickTarget int

const (
	clickNone clickTarget = iota
	clickHUD
	clickLink
	clickCard
	clickGrid
)

// clickHandler is implemented by panels that may swallow clicks.
type clickHandler interface {
	HandleClick(x, y int) bool
}

// controller holds the input and resize handling shared by the GUI build and
// tests. Layers are hit-tested in reverse draw order.
type controller struct {
	sim  *life.Life
	term *ui.Terminal
	hud  clickHandler
	log  *logging.Logger

	// OpenURL opens links from the terminal card.
	OpenURL func(url string) error

	outW int
	outH int
}

// applyResize resizes the engine when the outside size differs from the
// viewport the grid was built for. It reports whether a resize happened.
func (c *controller) applyResize() bool {
	if c.outW <= 0 || c.outH <= 0 {
		return false
	}
	if w, h := c.sim.Viewport(); w == c.outW && h == c.outH {
		return false
	}
	c.sim.Resize(c.outW, c.outH)
	size := c.sim.Size()
	c.log.Debugf("viewport %dx%d -> grid %dx%d", c.outW, c.outH, size.W, size.H)
	return true
}

// click routes a left click to the topmost layer under (x, y): the HUD, then
// the card's links, then the card itself, then the grid.
func (c *controller) click(x, y int) clickTarget {
	if c.hud != nil && c.hud.HandleClick(x, y) {
		return clickHUD
	}
	if link, ok := c.term.LinkAt(x, y, c.outW, c.outH); ok {
		c.log.Infof("opening %s", link.URL)
		if c.OpenURL != nil {
			if err := c.OpenURL(link.URL); err != nil {
				c.log.Warnf("open %s: %v", link.URL, err)
			}
		}
		return clickLink
	}
	if c.term.Contains(x, y, c.outW, c.outH) {
		return clickCard
	}
	if c.sim.SpawnAt(x, y) {
		c.log.Debugf("spawned block at (%d,%d)", x, y)
		return clickGrid
	}
	return clickNone
}
