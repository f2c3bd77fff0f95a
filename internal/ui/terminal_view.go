//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	cardBg      = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	headerBg    = color.RGBA{R: 31, G: 41, B: 55, A: 255}
	cardBorder  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	promptColor = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	textColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	linkBg      = color.RGBA{R: 107, G: 33, B: 168, A: 255}
	linkHover   = color.RGBA{R: 147, G: 51, B: 234, A: 255}
	dotColors   = []color.RGBA{
		{R: 239, G: 68, B: 68, A: 255},
		{R: 234, G: 179, B: 8, A: 255},
		{R: 34, G: 197, B: 94, A: 255},
	}
)

const (
	dotRadius   = 6
	dotSpacing  = 20
	textInset   = 13
	cursorWidth = 7
	cursorGap   = 4
)

// TerminalView draws a Terminal as a floating card.
type TerminalView struct {
	term *Terminal
}

// NewTerminalView wraps term for drawing.
func NewTerminalView(term *Terminal) *TerminalView {
	return &TerminalView{term: term}
}

// Draw paints the card centred on screen.
func (v *TerminalView) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	p := v.term.Profile()
	l := LayoutCard(p, b.Dx(), b.Dy())
	face := basicfont.Face7x13

	drawGlow(screen, l.Card)
	fillRect(screen, l.Card, cardBg)
	fillRect(screen, l.Header, headerBg)
	vector.StrokeRect(screen, float32(l.Card.Min.X), float32(l.Card.Min.Y), float32(l.Card.Dx()), float32(l.Card.Dy()), 2, cardBorder, false)

	cy := float32(l.Header.Min.Y + headerHeight/2)
	for i, c := range dotColors {
		cx := float32(l.Header.Min.X + 16 + i*dotSpacing)
		vector.DrawFilledCircle(screen, cx, cy, dotRadius, c, true)
	}
	titleW := text.BoundString(face, p.Title).Dx()
	text.Draw(screen, p.Title, face, l.Header.Min.X+(l.Header.Dx()-titleW)/2, l.Header.Min.Y+headerHeight/2+5, textColor)

	baseline := l.Body.Min.Y + textInset
	typed := v.term.Typed()
	text.Draw(screen, typed, face, l.Body.Min.X, baseline, promptColor)
	if v.term.CursorVisible() {
		cx := l.Body.Min.X
		if n := len([]rune(typed)); n > 0 {
			cx += n*glyphWidth + cursorGap
		}
		fillRect(screen, image.Rect(cx, baseline-11, cx+cursorWidth, baseline+2), promptColor)
	}

	if !v.term.OutputVisible() {
		return
	}
	y := baseline + lineHeight + outputGap
	for _, line := range p.Lines {
		text.Draw(screen, line, face, l.Body.Min.X, y, textColor)
		y += lineHeight
	}

	mx, my := ebiten.CursorPosition()
	for i, r := range l.Links {
		bg := linkBg
		if image.Pt(mx, my).In(r) {
			bg = linkHover
		}
		fillRect(screen, r, bg)
		text.Draw(screen, p.Links[i].Label, face, r.Min.X+linkPadX, r.Min.Y+r.Dy()/2+5, textColor)
	}
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func drawGlow(dst *ebiten.Image, r image.Rectangle) {
	const layers = 6
	for i := layers; i > 0; i-- {
		a := uint8(64 / i)
		g := r.Inset(-2 * i)
		vector.StrokeRect(dst, float32(g.Min.X), float32(g.Min.Y), float32(g.Dx()), float32(g.Dy()), 2, color.RGBA{R: a, G: a, B: a, A: a}, false)
	}
}
