package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"lifebg/internal/core"
	"lifebg/internal/logging"
	"lifebg/internal/sims/life"
	"lifebg/internal/ui"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/browser"
)

const (
	fieldView = "field"
	cardView  = "card"
	helpView  = "help"

	cardMaxWidth = 60
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console drives a Life background in a terminal. One character is one cell.
type Console struct {
	sim  *life.Life
	term *ui.Terminal
	glow *Glow
	au   aurora.Aurora
	log  *logging.Logger
	keys []keyBinding

	// OpenURL opens links clicked on the card.
	OpenURL func(url string) error

	frame     time.Duration
	seed      int64
	paused    bool
	showStats bool
	cardLinks []int
}

// New builds a console front end. The grid is sized on the first frame.
func New(cfg life.Config, tps int, color bool, log *logging.Logger) *Console {
	cfg.Pitch = 1
	sim := life.New(cfg, 1, 1)
	c := &Console{
		sim:     sim,
		term:    ui.NewTerminal(ui.DefaultProfile()),
		glow:    NewGlow(1, 1),
		au:      aurora.NewAurora(color),
		log:     log,
		OpenURL: browser.OpenURL,
		frame:   core.FrameDuration(tps),
		seed:    cfg.Seed,
	}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", c.cmdPause, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'r', "R", "Reset", c.cmdReset, ""},
		{'s', "S", "Reseed", c.cmdReseed, ""},
		{'d', "D", "Stats", c.cmdStats, ""},
		{gocui.MouseLeft, "MOUSE", "Spawn block", c.cmdSpawn, fieldView},
		{gocui.MouseLeft, "", "", c.cmdLink, cardView},
	}
	return c
}

// Sim exposes the engine.
func (c *Console) Sim() *life.Life { return c.sim }

// Run takes over the terminal until the user quits or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer g.Close()

	g.Mouse = true
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("bind %v: %w", kb.key, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.loop(ctx, g)

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (c *Console) loop(ctx context.Context, g *gocui.Gui) {
	ticker := time.NewTicker(c.frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			g.Update(c.render)
		}
	}
}

func (c *Console) render(g *gocui.Gui) error {
	v, err := g.View(fieldView)
	if err == gocui.ErrUnknownView {
		// Layout has not run yet.
		return nil
	}
	if err != nil {
		return err
	}
	w, h := v.Size()
	if vw, vh := c.sim.Viewport(); vw != w || vh != h {
		c.sim.Resize(w, h)
		size := c.sim.Size()
		c.log.Debugf("terminal %dx%d -> grid %dx%d", w, h, size.W, size.H)
	}
	if grid := c.sim.Grid(); !c.glow.Matches(grid) {
		c.glow = NewGlow(grid.W, grid.H)
	}
	if !c.paused {
		c.sim.Tick()
	}
	c.term.Advance(c.frame)
	c.glow.Update(c.sim.Grid())

	v.Clear()
	_, _ = fmt.Fprint(v, Frame(c.au, c.glow))

	if v, err := g.View(cardView); err == nil {
		v.Clear()
		lines, links := cardLines(c.au, c.term)
		c.cardLinks = links
		for _, l := range lines {
			_, _ = fmt.Fprintln(v, " "+l)
		}
	}
	if v, err := g.View(helpView); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, c.helpLine())
	}
	return nil
}

func (c *Console) helpLine() string {
	b := bytes.Buffer{}
	if c.showStats {
		b.WriteString(fmt.Sprintf("gen %d  pop %d  ", c.sim.Generation(), c.sim.Population()))
		if c.paused {
			b.WriteString(c.au.Yellow("paused  ").String())
		}
	}
	first := true
	for _, k := range c.keys {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(c.au.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(fieldView, -1, -1, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}

	p := c.term.Profile()
	width := min(cardMaxWidth, maxX*9/10)
	height := cardHeight(p) + 1
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2
	if v, err := g.SetView(cardView, x0, y0, x0+width, y0+height); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
		v.Title = " " + p.Title + " "
		v.Wrap = false
	}

	if v, err := g.SetView(helpView, -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdPause(_ *gocui.View) error {
	c.paused = !c.paused
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	if c.paused {
		c.sim.Step()
	}
	return nil
}

func (c *Console) cmdReset(_ *gocui.View) error {
	c.sim.Reset(c.seed)
	return nil
}

func (c *Console) cmdReseed(_ *gocui.View) error {
	c.seed = time.Now().UnixNano()
	c.sim.Reset(c.seed)
	c.log.Debugf("reseeded with %d", c.seed)
	return nil
}

func (c *Console) cmdStats(_ *gocui.View) error {
	c.showStats = !c.showStats
	return nil
}

func (c *Console) cmdSpawn(v *gocui.View) error {
	cx, cy := v.Cursor()
	if c.sim.SpawnAt(cx, cy) {
		c.log.Debugf("spawned block at (%d,%d)", cx, cy)
	}
	return nil
}

func (c *Console) cmdLink(v *gocui.View) error {
	_, cy := v.Cursor()
	if cy < 0 || cy >= len(c.cardLinks) || c.cardLinks[cy] < 0 || c.OpenURL == nil {
		return nil
	}
	link := c.term.Profile().Links[c.cardLinks[cy]]
	if err := c.OpenURL(link.URL); err != nil {
		c.log.Warnf("open %s: %v", link.URL, err)
	}
	return nil
}
