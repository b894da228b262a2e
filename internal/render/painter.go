//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a cached RGBA image of the board. Refresh re-uploads
// pixels and is called only when the board dirty flag drains true; Draw
// blits the cached image and runs every frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h board.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Refresh rebuilds the cached image from the current board state.
func (gp *GridPainter) Refresh(board BoardView, on, off color.Color) {
	if board.Width() != gp.w || board.Height() != gp.h {
		return
	}
	fillBoardRGBA(gp.buf, board, on, off)
	gp.img.WritePixels(gp.buf)
}

// Draw blits the cached image onto dst at the given integer scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
