package console

import (
	"fmt"

	"lifebg/internal/ui"

	"github.com/logrusorgru/aurora"
)

// cardLines renders the whoami card body. The second return value maps each
// line index to the link it shows, or -1.
func cardLines(au aurora.Aurora, term *ui.Terminal) ([]string, []int) {
	p := term.Profile()
	cursor := " "
	if term.CursorVisible() {
		cursor = "█"
	}
	lines := []string{au.Green(term.Typed() + cursor).String()}
	links := []int{-1}
	if !term.OutputVisible() {
		return lines, links
	}
	lines = append(lines, "")
	links = append(links, -1)
	for _, l := range p.Lines {
		lines = append(lines, l)
		links = append(links, -1)
	}
	lines = append(lines, "")
	links = append(links, -1)
	for i, l := range p.Links {
		lines = append(lines, fmt.Sprintf("%s %s", au.Magenta("["+l.Label+"]").Bold(), l.URL))
		links = append(links, i)
	}
	return lines, links
}

// cardHeight is the number of body rows the card needs once fully revealed.
func cardHeight(p ui.Profile) int {
	return 1 + 1 + len(p.Lines) + 1 + len(p.Links)
}
