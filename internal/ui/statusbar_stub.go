//go:build !ebiten

package ui

// StatusBar is a no-op placeholder for headless builds.
type StatusBar struct{}

// Height matches the GUI build so layout math stays consistent.
const Height = 36

// NewStatusBar constructs a stub status bar.
func NewStatusBar() *StatusBar { return &StatusBar{} }

// Refresh is a no-op in headless builds.
func (s *StatusBar) Refresh(string) {}

// Draw is a no-op placeholder.
func (s *StatusBar) Draw(any, int) {}
