//go:build !ebiten

package ui

// TerminalView is a no-op placeholder used when the ebiten build tag is absent.
type TerminalView struct{}

// NewTerminalView constructs a stub view.
func NewTerminalView(*Terminal) *TerminalView { return &TerminalView{} }

// Draw is a no-op placeholder.
func (v *TerminalView) Draw(any) {}
