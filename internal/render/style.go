package render

import "image/color"

// TrailColor is painted over the whole surface every frame; its low alpha
// leaves fading afterimages of previous frames.
var TrailColor = color.NRGBA{R: 0, G: 0, B: 0, A: alpha(0.2)}

// CellRGB is the base colour of every cell dot.
var CellRGB = color.NRGBA{R: 90, G: 30, B: 160, A: 255}

const (
	aliveDiameter = 0.8
	deadDiameter  = 0.2
	aliveOpacity  = 0.6
	deadOpacity   = 0.1
)

// Dot describes how one cell is drawn.
type Dot struct {
	CX, CY float32
	Radius float32
	Color  color.NRGBA
}

// CellDot returns the dot for the cell at grid position (x, y). Dots are
// centred on the cell's top-left corner.
func CellDot(x, y int, alive bool, pitch int) Dot {
	p := float32(pitch)
	d := Dot{CX: float32(x) * p, CY: float32(y) * p, Color: CellRGB}
	if alive {
		d.Radius = p * aliveDiameter / 2
		d.Color.A = alpha(aliveOpacity)
	} else {
		d.Radius = p * deadDiameter / 2
		d.Color.A = alpha(deadOpacity)
	}
	return d
}

func alpha(opacity float64) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(opacity*255 + 0.5)
}
