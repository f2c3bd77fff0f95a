package render

import (
	"image/color"
	"testing"
)

func TestCellDotAliveIsLargerAndMoreOpaque(t *testing.T) {
	alive := CellDot(3, 2, true, 20)
	dead := CellDot(3, 2, false, 20)

	if alive.CX != 60 || alive.CY != 40 {
		t.Fatalf("alive centre = (%v,%v), expected (60,40)", alive.CX, alive.CY)
	}
	if alive.Radius != 8 {
		t.Fatalf("alive radius = %v, expected 8", alive.Radius)
	}
	if dead.Radius != 2 {
		t.Fatalf("dead radius = %v, expected 2", dead.Radius)
	}
	if alive.Color.A != 153 || dead.Color.A != 26 {
		t.Fatalf("alpha alive=%d dead=%d, expected 153 and 26", alive.Color.A, dead.Color.A)
	}
	if alive.Color.R != 90 || alive.Color.G != 30 || alive.Color.B != 160 {
		t.Fatalf("unexpected cell colour %+v", alive.Color)
	}
}

func TestTrailColorIsTranslucentBlack(t *testing.T) {
	if TrailColor.R != 0 || TrailColor.G != 0 || TrailColor.B != 0 {
		t.Fatalf("trail must be black, got %+v", TrailColor)
	}
	if TrailColor.A != 51 {
		t.Fatalf("trail alpha = %d, expected 51", TrailColor.A)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{A: 255}
	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		10, 20, 30, 255,
		0, 0, 0, 255,
		10, 20, 30, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d", i, buf[i], want[i])
		}
	}
}
