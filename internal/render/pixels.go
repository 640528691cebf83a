package render

import (
	"image/color"

	"ca1d/internal/automaton"
)

// FillMatrixRGBA converts the matrix into RGBA pixels in buf, one pixel
// per cell. Rows at or past reveal are painted as background so a viewer
// can uncover a finished run generation by generation.
func FillMatrixRGBA(buf []byte, m *automaton.Matrix, reveal int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := m.CellWidth()
	base := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < w; x++ {
			if y < reveal && m.Bit(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				base += 4
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
			base += 4
		}
	}
}
