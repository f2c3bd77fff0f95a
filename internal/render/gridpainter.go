//go:build ebiten

package render

import (
	"image/color"

	"lifebg/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads boolean cell data into a single RGBA image, one pixel
// per cell. It reallocates when the grid size changes.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns an empty painter; the image is allocated on first Blit.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Blit uploads g and draws it scaled by scale with its top-left at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, x, y, scale float64) {
	gp.ensure(g.W, g.H)
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}
