package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// GridDims returns how many cells of the given pitch cover a viewport. Partial
// cells at the right and bottom edges count, so the grid always spans the
// whole surface.
func GridDims(viewW, viewH, pitch int) Size {
	if pitch <= 0 {
		pitch = 1
	}
	w := ceilDiv(viewW, pitch)
	h := ceilDiv(viewH, pitch)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Size{W: w, H: h}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
