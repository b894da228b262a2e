package render

import "image/color"

// BoardView is the read-only grid access the renderer is allowed. All
// writes go through the simulation core's mutation surface.
type BoardView interface {
	Width() int
	Height() int
	Alive(x, y int) bool
}

// fillBoardRGBA converts cell liveness into RGBA pixels in buf, one pixel
// per cell in row-major order. buf must hold 4*w*h bytes.
func fillBoardRGBA(buf []byte, board BoardView, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w, h := board.Width(), board.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			if board.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
