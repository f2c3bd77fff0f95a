// Package console renders the Life background and the whoami card in a text
// terminal.
package console

import (
	"strings"

	"lifebg/internal/core"

	"github.com/logrusorgru/aurora"
)

// Glow keeps a per-cell brightness that mimics the canvas trail: every frame
// the old value fades like under a 20% black wash, then the cell's dot is
// blended in at 60% (alive) or a faint 10% (dead).
type Glow struct {
	w, h  int
	level []float32
}

const (
	fadeKeep     = 0.8
	aliveOpacity = 0.6
	deadOpacity  = 0.1
	deadCoverage = 0.25
)

// NewGlow returns a dark buffer for a w x h grid.
func NewGlow(w, h int) *Glow {
	return &Glow{w: w, h: h, level: make([]float32, w*h)}
}

// Matches reports whether the buffer fits g.
func (gl *Glow) Matches(g *core.Grid) bool { return gl.w == g.W && gl.h == g.H }

// Level returns the brightness of cell i.
func (gl *Glow) Level(i int) float32 { return gl.level[i] }

// Update fades every cell and paints the current generation on top.
func (gl *Glow) Update(g *core.Grid) {
	for i, alive := range g.Cells() {
		v := gl.level[i] * fadeKeep
		if alive {
			v = v*(1-aliveOpacity) + aliveOpacity
		} else {
			v = v*(1-deadOpacity) + deadOpacity*deadCoverage
		}
		gl.level[i] = v
	}
}

// Glyph tiers from brightest to dimmest.
const (
	glyphLive  = "●"
	glyphFresh = "•"
	glyphFade  = "∙"
	glyphDead  = "·"
)

func glyph(au aurora.Aurora, v float32) string {
	switch {
	case v >= 0.5:
		return au.Magenta(glyphLive).Bold().String()
	case v >= 0.25:
		return au.Magenta(glyphFresh).String()
	case v >= 0.12:
		return au.Magenta(glyphFade).String()
	default:
		return au.Blue(glyphDead).String()
	}
}

// Frame renders the glow buffer as newline separated rows.
func Frame(au aurora.Aurora, gl *Glow) string {
	var b strings.Builder
	for y := 0; y < gl.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := gl.level[y*gl.w : (y+1)*gl.w]
		for _, v := range row {
			b.WriteString(glyph(au, v))
		}
	}
	return b.String()
}
