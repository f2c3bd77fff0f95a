//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(any, int) *HUD { return nil }

// Visible is always false in the headless build.
func (h *HUD) Visible() bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// HandleClick never consumes clicks in the headless build.
func (h *HUD) HandleClick(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
