//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusBar renders the status readout under the board. The formatted
// line is cached; Refresh runs only when the status dirty flag drains
// true, Draw runs every frame.
type StatusBar struct {
	line string
}

// Height is the vertical space the bar needs, in logical pixels.
const Height = 36

const (
	padding      = 6
	lineBaseline = 14
	hintBaseline = 28
)

// NewStatusBar constructs an empty status bar.
func NewStatusBar() *StatusBar { return &StatusBar{} }

// Refresh replaces the cached status line.
func (s *StatusBar) Refresh(line string) { s.line = line }

// Draw paints the cached line and the controls hint at the given top
// offset.
func (s *StatusBar) Draw(dst *ebiten.Image, top int) {
	face := basicfont.Face7x13
	text.Draw(dst, s.line, face, padding, top+lineBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(dst, ControlsHint, face, padding, top+hintBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
}
