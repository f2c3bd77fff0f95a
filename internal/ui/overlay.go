//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifebg/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var maskTint = color.RGBA{R: 64, G: 164, B: 223, A: 0}

// Overlay draws optional debugging visuals on top of the background: a
// stats line (D) and a neighbour-density heat mask (M).
type Overlay struct {
	sim       *life.Life
	showStats bool
	showMask  bool

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance with everything hidden.
func NewOverlay(sim *life.Life) *Overlay {
	return &Overlay{sim: sim}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMask = !o.showMask
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showMask {
		o.drawMask(screen)
	}
	if o.showStats {
		size := o.sim.Size()
		msg := fmt.Sprintf("frame %d  gen %d  pop %d  grid %dx%d  tps %.0f",
			o.sim.Frame(), o.sim.Generation(), o.sim.Population(), size.W, size.H, ebiten.ActualTPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image) {
	g := o.sim.Grid()
	total := g.W * g.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != g.W || o.maskImg.Bounds().Dy() != g.H {
		o.maskImg = ebiten.NewImage(g.W, g.H)
		o.maskBuf = make([]byte, 4*total)
	}
	fillNeighborMask(o.maskBuf, g, maskTint)
	o.maskImg.WritePixels(o.maskBuf)

	pitch := float64(o.sim.Config().Pitch)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pitch, pitch)
	// Dots are centred on cell corners, so shift the mask to match.
	op.GeoM.Translate(-pitch/2, -pitch/2)
	screen.DrawImage(o.maskImg, op)
}
