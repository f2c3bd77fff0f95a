package ui

import (
	"image/color"
	"testing"

	"lifebg/internal/core"
)

func TestFillNeighborMask(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(2, 2, true)
	buf := make([]byte, 4*25)
	fillNeighborMask(buf, g, color.RGBA{R: 100, G: 100, B: 100})

	centre := g.Index(2, 2) * 4
	if buf[centre+3] != 0 {
		t.Fatalf("lone live cell has no neighbours, alpha %d", buf[centre+3])
	}
	adjacent := g.Index(1, 1) * 4
	if buf[adjacent+3] == 0 {
		t.Fatal("cell next to a live cell should be tinted")
	}
	far := g.Index(4, 0) * 4
	if buf[far+3] != 0 {
		t.Fatalf("cell (4,0) has no live neighbours, alpha %d", buf[far+3])
	}

	g.Clear()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			g.Set(x, y, true)
		}
	}
	fillNeighborMask(buf, g, color.RGBA{R: 100, G: 100, B: 100})
	if buf[3] != 140 || buf[0] != 100 {
		t.Fatalf("fully crowded cell should be at full strength, got rgba %v", buf[:4])
	}
}
