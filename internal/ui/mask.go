package ui

import (
	"image/color"
	"math"

	"lifebg/internal/core"
	"lifebg/internal/sims/life"
)

// fillNeighborMask writes one RGBA pixel per cell into buf, tinted by how
// crowded the cell's neighbourhood is. Empty neighbourhoods are transparent.
func fillNeighborMask(buf []byte, g *core.Grid, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			base := g.Index(x, y) * 4
			intensity := float64(life.CountNeighbors(g, x, y)) / 8
			if intensity == 0 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			glow := glowBase + glowRange*math.Sqrt(intensity)
			buf[base+0] = scaleColorComponent(tint.R, glow)
			buf[base+1] = scaleColorComponent(tint.G, glow)
			buf[base+2] = scaleColorComponent(tint.B, glow)
			buf[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		}
	}
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
