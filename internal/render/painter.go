//go:build ebiten

package render

import (
	"lifebg/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws the Life background: a translucent trail wash followed by
// one dot per cell. The screen must not be cleared between frames for the
// trail to show.
type Painter struct {
	pitch int
}

// NewPainter returns a Painter for cells of the given pitch.
func NewPainter(pitch int) *Painter {
	if pitch <= 0 {
		pitch = 1
	}
	return &Painter{pitch: pitch}
}

// Draw paints one frame of g onto screen.
func (p *Painter) Draw(screen *ebiten.Image, g *core.Grid) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), TrailColor, false)

	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			d := CellDot(x, y, cells[g.Index(x, y)], p.pitch)
			vector.DrawFilledCircle(screen, d.CX, d.CY, d.Radius, d.Color, true)
		}
	}
}
