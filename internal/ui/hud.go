//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifebg/internal/core"
	"lifebg/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Tunable is what the HUD needs from a simulation.
type Tunable interface {
	core.ParameterProvider
	Name() string
	Grid() *core.Grid
}

var (
	hudBg       = color.RGBA{R: 16, G: 16, B: 20, A: 210}
	hudTitle    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hudLabel    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudMuted    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	minimapOn   = color.RGBA{R: 150, G: 80, B: 230, A: 255}
	minimapOff  = color.RGBA{R: 10, G: 6, B: 18, A: 255}
	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFg    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD is a toggleable parameter panel docked to the right edge of the window,
// with +/- buttons for each control and a one-pixel-per-cell minimap.
type HUD struct {
	sim     Tunable
	width   int
	visible bool

	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	minimap *render.GridPainter
	offsetX int
}

// NewHUD constructs a hidden HUD for sim with the given panel width.
func NewHUD(sim Tunable, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, minimap: render.NewGridPainter()}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.states = append(h.states, controlState{control: ctrl, value: "--"})
		}
		layoutControls(h.states, width)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update toggles the panel on H and refreshes control values.
func (h *HUD) Update(screenW int) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.offsetX = screenW - h.width
	if !h.visible {
		return
	}
	snap := h.sim.Parameters()
	for i := range h.states {
		h.states[i].refresh(snap)
	}
}

// HandleClick applies a button press at screen position (x, y) and reports
// whether the click landed on the panel.
func (h *HUD) HandleClick(x, y int) bool {
	if !h.Visible() || x < h.offsetX {
		return false
	}
	px := x - h.offsetX
	for i := range h.states {
		s := &h.states[i]
		if s.minusRect.contains(px, y) {
			s.apply(h.intSetter, h.floatSetter, -1)
			break
		}
		if s.plusRect.contains(px, y) {
			s.apply(h.intSetter, h.floatSetter, 1)
			break
		}
	}
	return true
}

// Draw paints the panel along the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() || h.width <= 0 {
		return
	}
	b := screen.Bounds()
	ox := float32(h.offsetX)
	vector.DrawFilledRect(screen, ox, 0, float32(h.width), float32(b.Dy()), hudBg, false)

	face := basicfont.Face7x13
	title := fmt.Sprintf("%s controls", h.sim.Name())
	text.Draw(screen, title, face, h.offsetX+panelPadding, panelPadding+headerBaseline, hudTitle)

	for i := range h.states {
		s := &h.states[i]
		text.Draw(screen, s.control.Label, face, h.offsetX+panelPadding, s.top+labelBaseline, hudLabel)
		valueColor := hudLabel
		if !s.hasValue {
			valueColor = hudMuted
		}
		valueW := text.BoundString(face, s.value).Dx()
		text.Draw(screen, s.value, face, h.offsetX+s.minusRect.x0-buttonGap-valueW, s.top+labelBaseline, valueColor)
		h.drawButton(screen, s.minusRect, "-", s.canAdjust(-1))
		h.drawButton(screen, s.plusRect, "+", s.canAdjust(1))
	}

	g := h.sim.Grid()
	top := controlsTop + len(h.states)*rowHeight + panelPadding
	avail := h.width - 2*panelPadding
	if g.W <= 0 || avail <= 0 {
		return
	}
	scale := float64(avail) / float64(g.W)
	h.minimap.Blit(screen, g, minimapOn, minimapOff, float64(h.offsetX+panelPadding), float64(top), scale)
	info := fmt.Sprintf("%dx%d  pop %d", g.W, g.H, g.Population())
	text.Draw(screen, info, face, h.offsetX+panelPadding, top+int(float64(g.H)*scale)+labelBaseline, hudMuted)
}

func (h *HUD) drawButton(screen *ebiten.Image, r rect, label string, enabled bool) {
	bg, fg := buttonBg, buttonFg
	if !enabled {
		bg, fg = buttonOffBg, buttonOffFg
	}
	x := float32(h.offsetX + r.x0)
	vector.DrawFilledRect(screen, x, float32(r.y0), float32(r.x1-r.x0), float32(r.y1-r.y0), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := h.offsetX + r.x0 + (r.x1-r.x0-bounds.Dx())/2
	ty := r.y0 + (r.y1-r.y0-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, tx, ty, fg)
}
