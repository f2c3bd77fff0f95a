package ui

import (
	"image"
	"time"

	"lifebg/internal/core"
)

const (
	// CharEvery is the delay between typed characters.
	CharEvery = 100 * time.Millisecond
	// RevealDelay is the pause between the last typed character and the output.
	RevealDelay = 500 * time.Millisecond
	// CursorBlink is the half period of the cursor blink.
	CursorBlink = 500 * time.Millisecond
)

// Terminal plays the scripted "whoami" animation. It is driven purely by
// elapsed time and never reads simulation state.
type Terminal struct {
	profile Profile
	command []rune

	typer    *core.Interval
	typed    int
	idle     time.Duration
	revealed bool
	elapsed  time.Duration
}

// NewTerminal returns a Terminal that has typed nothing yet.
func NewTerminal(p Profile) *Terminal {
	return &Terminal{
		profile: p,
		command: []rune(p.Command),
		typer:   core.NewInterval(CharEvery),
	}
}

// Profile returns the card content.
func (t *Terminal) Profile() Profile { return t.profile }

// Advance moves the script forward by dt.
func (t *Terminal) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.elapsed += dt
	if t.typed < len(t.command) {
		ticks := t.typer.Advance(dt)
		remaining := len(t.command) - t.typed
		if ticks < remaining {
			t.typed += ticks
			return
		}
		// Time past the last keystroke counts toward the reveal delay.
		t.typed = len(t.command)
		dt = time.Duration(ticks-remaining)*CharEvery + t.typer.Remainder()
		t.typer.Reset()
	}
	if t.revealed {
		return
	}
	t.idle += dt
	if t.idle >= RevealDelay {
		t.revealed = true
	}
}

// Typed returns the part of the command typed so far.
func (t *Terminal) Typed() string { return string(t.command[:t.typed]) }

// OutputVisible reports whether the info lines and links are shown.
func (t *Terminal) OutputVisible() bool { return t.revealed }

// CursorVisible reports the blink phase of the prompt cursor.
func (t *Terminal) CursorVisible() bool {
	return (t.elapsed/CursorBlink)%2 == 0
}

// LinkAt returns the link under (x, y) for a card laid out on a screen of the
// given size. Links are only clickable once revealed.
func (t *Terminal) LinkAt(x, y, screenW, screenH int) (Link, bool) {
	if !t.revealed {
		return Link{}, false
	}
	l := LayoutCard(t.profile, screenW, screenH)
	pt := image.Pt(x, y)
	for i, r := range l.Links {
		if pt.In(r) {
			return t.profile.Links[i], true
		}
	}
	return Link{}, false
}

// Contains reports whether (x, y) falls on the card, which sits above the
// simulation and swallows clicks.
func (t *Terminal) Contains(x, y, screenW, screenH int) bool {
	return image.Pt(x, y).In(LayoutCard(t.profile, screenW, screenH).Card)
}

// CardLayout holds the screen rectangles of the terminal card.
type CardLayout struct {
	Card   image.Rectangle
	Header image.Rectangle
	Body   image.Rectangle
	Links  []image.Rectangle
}

const (
	cardMaxWidth   = 600
	cardWidthRatio = 0.9
	headerHeight   = 28
	bodyPadding    = 24
	lineHeight     = 20
	outputGap      = 8
	linksGap       = 24
	linkHeight     = 32
	linkPadX       = 10
	linkSpacing    = 16
	glyphWidth     = 7
)

// LayoutCard centres the card on a screenW x screenH surface. The height is
// reserved for the full output so the card does not jump when it appears.
func LayoutCard(p Profile, screenW, screenH int) CardLayout {
	width := int(float64(screenW) * cardWidthRatio)
	if width > cardMaxWidth {
		width = cardMaxWidth
	}
	height := headerHeight + bodyPadding + lineHeight + outputGap + len(p.Lines)*lineHeight + bodyPadding
	if len(p.Links) > 0 {
		height += linksGap + linkHeight
	}

	x0 := (screenW - width) / 2
	y0 := (screenH - height) / 2
	card := image.Rect(x0, y0, x0+width, y0+height)
	l := CardLayout{
		Card:   card,
		Header: image.Rect(card.Min.X, card.Min.Y, card.Max.X, card.Min.Y+headerHeight),
		Body:   image.Rect(card.Min.X+bodyPadding, card.Min.Y+headerHeight+bodyPadding, card.Max.X-bodyPadding, card.Max.Y-bodyPadding),
	}

	linkY := l.Body.Min.Y + lineHeight + outputGap + len(p.Lines)*lineHeight + linksGap
	x := l.Body.Min.X
	for _, link := range p.Links {
		w := len(link.Label)*glyphWidth + 2*linkPadX
		l.Links = append(l.Links, image.Rect(x, linkY, x+w, linkY+linkHeight))
		x += w + linkSpacing
	}
	return l
}
